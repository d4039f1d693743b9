package housekeeping

import "time"

// Task tracks cleaning and maintenance work on a room. Completing a task is
// the only path that returns a room to Available after occupancy.
type Task struct {
	ID          string     `json:"id"`
	RoomID      string     `json:"roomId"`
	RoomNumber  string     `json:"roomNumber"`
	TaskType    TaskType   `json:"taskType"`
	Status      Status     `json:"status"`
	AssignedTo  string     `json:"assignedTo"`
	Priority    Priority   `json:"priority"`
	CreatedAt   time.Time  `json:"createdAt"`
	StartedAt   *time.Time `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt"`
	Notes       string     `json:"notes"`
}

func (t *Task) IsOpen() bool {
	return t.Status != StatusCompleted
}

// Start requires Pending. Returns false without mutating otherwise.
func (t *Task) Start(now time.Time) bool {
	if t.Status != StatusPending {
		return false
	}
	t.Status = StatusInProgress
	t.StartedAt = &now
	return true
}

// Complete requires In Progress. Returns false without mutating otherwise.
func (t *Task) Complete(now time.Time) bool {
	if t.Status != StatusInProgress {
		return false
	}
	t.Status = StatusCompleted
	t.CompletedAt = &now
	return true
}

// ForceComplete closes the task regardless of its current state, backfilling
// the started timestamp. Used when a room is administratively released.
func (t *Task) ForceComplete(now time.Time) {
	if t.Status == StatusCompleted {
		return
	}
	t.Status = StatusCompleted
	t.CompletedAt = &now
	if t.StartedAt == nil {
		t.StartedAt = &now
	}
}

// SetStatus applies an administrative status override, backfilling
// timestamps the transition would have stamped.
func (t *Task) SetStatus(status Status, now time.Time) {
	t.Status = status
	if status == StatusInProgress && t.StartedAt == nil {
		t.StartedAt = &now
	}
	if status == StatusCompleted && t.CompletedAt == nil {
		t.CompletedAt = &now
	}
}
