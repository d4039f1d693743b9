package housekeeping

type TaskType string

const (
	TaskCheckoutCleaning TaskType = "Checkout Cleaning"
	TaskDailyCleaning    TaskType = "Daily Cleaning"
	TaskDeepCleaning     TaskType = "Deep Cleaning"
	TaskMaintenance      TaskType = "Maintenance"
)

func (t TaskType) String() string {
	return string(t)
}

func (t TaskType) IsValid() bool {
	switch t {
	case TaskCheckoutCleaning, TaskDailyCleaning, TaskDeepCleaning, TaskMaintenance:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
