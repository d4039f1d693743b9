package request

import (
	"hotel-ops/internal/domain/housekeeping"
	"hotel-ops/internal/usecase/commands"
)

type CreateTaskRequest struct {
	RoomID     string `json:"roomId" binding:"required"`
	TaskType   string `json:"taskType" binding:"required"`
	AssignedTo string `json:"assignedTo"`
	Priority   string `json:"priority"`
	Notes      string `json:"notes"`
}

func (r CreateTaskRequest) ToParams() commands.CreateTaskParams {
	return commands.CreateTaskParams{
		RoomID:     r.RoomID,
		TaskType:   housekeeping.TaskType(r.TaskType),
		AssignedTo: r.AssignedTo,
		Priority:   housekeeping.Priority(r.Priority),
		Notes:      r.Notes,
	}
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
