package repository

import (
	"log/slog"

	"hotel-ops/internal/domain/housekeeping"
	"hotel-ops/internal/infra/kvstore"
	"hotel-ops/internal/pkg/ident"
)

const taskIDPrefix = "HK"

type Tasks struct {
	c *collection[housekeeping.Task]
}

func NewTasks(store kvstore.Store, logger *slog.Logger, seed []housekeeping.Task) *Tasks {
	return &Tasks{
		c: newCollection(store, logger, kvstore.KeyHousekeeping,
			func(t *housekeeping.Task) string { return t.ID }, seed, false),
	}
}

func (t *Tasks) All() []housekeeping.Task {
	return t.c.all()
}

func (t *Tasks) Get(id string) (housekeeping.Task, error) {
	return t.c.get(id)
}

func (t *Tasks) ByRoom(roomID string) []housekeeping.Task {
	return t.c.filter(func(task *housekeeping.Task) bool { return task.RoomID == roomID })
}

func (t *Tasks) ByStatus(status housekeeping.Status) []housekeeping.Task {
	return t.c.filter(func(task *housekeeping.Task) bool { return task.Status == status })
}

func (t *Tasks) ByPriority(priority housekeeping.Priority) []housekeeping.Task {
	return t.c.filter(func(task *housekeeping.Task) bool { return task.Priority == priority })
}

func (t *Tasks) NextID() string {
	return ident.Next(taskIDPrefix, t.c.ids())
}

func (t *Tasks) Insert(task housekeeping.Task) (housekeeping.Task, error) {
	return t.c.insert(task)
}

func (t *Tasks) Update(id string, fn func(*housekeeping.Task) bool) (housekeeping.Task, bool, error) {
	return t.c.mutate(id, fn)
}

// UpdateWhere applies fn to every task matching pred, persisting once.
// Used when a room release force-completes all of its open tasks.
func (t *Tasks) UpdateWhere(pred func(*housekeeping.Task) bool, fn func(*housekeeping.Task)) error {
	items := t.c.all()
	touched := false
	for i := range items {
		if pred(&items[i]) {
			fn(&items[i])
			touched = true
		}
	}
	if !touched {
		return nil
	}
	return t.c.replaceAll(items)
}

func (t *Tasks) ResetToSeed() error {
	return t.c.resetToSeed()
}

func (t *Tasks) Clear() error {
	return t.c.clear()
}
