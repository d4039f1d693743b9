package commands

import (
	"context"

	"hotel-ops/internal/domain/housekeeping"
	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/errs"
)

type CreateTaskParams struct {
	RoomID     string
	TaskType   housekeeping.TaskType
	AssignedTo string
	Priority   housekeeping.Priority
	Notes      string
}

type HousekeepingCommands interface {
	CreateTask(ctx context.Context, params CreateTaskParams) (housekeeping.Task, error)
	StartTask(ctx context.Context, id string) (housekeeping.Task, error)
	CompleteTask(ctx context.Context, id string) (housekeeping.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status housekeeping.Status) (housekeeping.Task, error)
	MakeRoomAvailable(ctx context.Context, roomID string) (room.Room, error)
}

type housekeepingCommandsImpl struct {
	tasks TaskStore
	rooms RoomStore
	clock clock.Clock
}

func NewHousekeepingCommands(tasks TaskStore, rooms RoomStore, clk clock.Clock) HousekeepingCommands {
	return &housekeepingCommandsImpl{tasks: tasks, rooms: rooms, clock: clk}
}

func (s *housekeepingCommandsImpl) CreateTask(_ context.Context, params CreateTaskParams) (housekeeping.Task, error) {
	if !params.TaskType.IsValid() {
		return housekeeping.Task{}, errs.ErrInvalidStatus
	}
	rm, err := s.rooms.Get(params.RoomID)
	if err != nil {
		return housekeeping.Task{}, markNotFound(err, errs.ErrRoomNotFound)
	}

	priority := params.Priority
	if !priority.IsValid() {
		priority = housekeeping.PriorityMedium
	}

	task := housekeeping.Task{
		ID:         s.tasks.NextID(),
		RoomID:     rm.ID,
		RoomNumber: rm.Number,
		TaskType:   params.TaskType,
		Status:     housekeeping.StatusPending,
		AssignedTo: params.AssignedTo,
		Priority:   priority,
		CreatedAt:  s.clock.Now(),
		Notes:      params.Notes,
	}

	created, err := s.tasks.Insert(task)
	if err != nil {
		return created, errs.Mark(err, errs.ErrPersistenceFailed)
	}
	return created, nil
}

// StartTask moves Pending → In Progress and flags the room as Cleaning.
func (s *housekeepingCommandsImpl) StartTask(_ context.Context, id string) (housekeeping.Task, error) {
	now := s.clock.Now()
	task, changed, err := s.tasks.Update(id, func(t *housekeeping.Task) bool {
		return t.Start(now)
	})
	if err != nil {
		return housekeeping.Task{}, markNotFound(err, errs.ErrTaskNotFound)
	}
	if changed {
		if _, err := s.rooms.SetStatus(task.RoomID, room.StatusCleaning); err != nil {
			return task, markNotFound(err, errs.ErrRoomNotFound)
		}
	}
	return task, nil
}

// CompleteTask moves In Progress → Completed and releases the room back to
// Available. This is the only lifecycle path that restores availability
// after a checkout sent the room to Cleaning.
func (s *housekeepingCommandsImpl) CompleteTask(_ context.Context, id string) (housekeeping.Task, error) {
	now := s.clock.Now()
	task, changed, err := s.tasks.Update(id, func(t *housekeeping.Task) bool {
		return t.Complete(now)
	})
	if err != nil {
		return housekeeping.Task{}, markNotFound(err, errs.ErrTaskNotFound)
	}
	if changed {
		if _, err := s.rooms.SetStatus(task.RoomID, room.StatusAvailable); err != nil {
			return task, markNotFound(err, errs.ErrRoomNotFound)
		}
	}
	return task, nil
}

// UpdateTaskStatus is the administrative override: it sets the status
// directly with no room side effect, backfilling timestamps.
func (s *housekeepingCommandsImpl) UpdateTaskStatus(_ context.Context, id string, status housekeeping.Status) (housekeeping.Task, error) {
	if !status.IsValid() {
		return housekeeping.Task{}, errs.ErrInvalidStatus
	}
	now := s.clock.Now()
	task, _, err := s.tasks.Update(id, func(t *housekeeping.Task) bool {
		t.SetStatus(status, now)
		return true
	})
	if err != nil {
		return housekeeping.Task{}, markNotFound(err, errs.ErrTaskNotFound)
	}
	return task, nil
}

// MakeRoomAvailable force-completes every open task on the room and sets it
// Available in one stroke. Used by the front desk to release a room without
// walking each task through its lifecycle.
func (s *housekeepingCommandsImpl) MakeRoomAvailable(_ context.Context, roomID string) (room.Room, error) {
	rm, err := s.rooms.Get(roomID)
	if err != nil {
		return room.Room{}, markNotFound(err, errs.ErrRoomNotFound)
	}

	now := s.clock.Now()
	err = s.tasks.UpdateWhere(
		func(t *housekeeping.Task) bool { return t.RoomID == roomID && t.IsOpen() },
		func(t *housekeeping.Task) { t.ForceComplete(now) },
	)
	if err != nil {
		return rm, errs.Mark(err, errs.ErrPersistenceFailed)
	}

	rm, err = s.rooms.SetStatus(roomID, room.StatusAvailable)
	if err != nil {
		return rm, markNotFound(err, errs.ErrRoomNotFound)
	}
	return rm, nil
}
