package response

import (
	"time"

	"hotel-ops/internal/domain/housekeeping"
)

type TaskResponse struct {
	ID          string     `json:"id"`
	RoomID      string     `json:"roomId"`
	RoomNumber  string     `json:"roomNumber"`
	TaskType    string     `json:"taskType"`
	Status      string     `json:"status"`
	AssignedTo  string     `json:"assignedTo"`
	Priority    string     `json:"priority"`
	CreatedAt   time.Time  `json:"createdAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Notes       string     `json:"notes"`
}

func FromTask(t housekeeping.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		RoomID:      t.RoomID,
		RoomNumber:  t.RoomNumber,
		TaskType:    t.TaskType.String(),
		Status:      t.Status.String(),
		AssignedTo:  t.AssignedTo,
		Priority:    t.Priority.String(),
		CreatedAt:   t.CreatedAt,
		StartedAt:   t.StartedAt,
		CompletedAt: t.CompletedAt,
		Notes:       t.Notes,
	}
}

func FromTasks(tasks []housekeeping.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = FromTask(t)
	}
	return out
}
