package queries

import (
	"context"

	"hotel-ops/internal/domain/housekeeping"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/errs"
)

type TaskQueries interface {
	GetByID(ctx context.Context, id string) (housekeeping.Task, error)
	List(ctx context.Context) []housekeeping.Task
	ListByRoom(ctx context.Context, roomID string) []housekeeping.Task
	ListByStatus(ctx context.Context, status housekeeping.Status) []housekeeping.Task
	ListHighPriority(ctx context.Context) []housekeeping.Task
}

type taskQueriesImpl struct {
	repo TaskReadStore
}

func NewTaskQueries(repo TaskReadStore) TaskQueries {
	return &taskQueriesImpl{repo: repo}
}

func (q *taskQueriesImpl) GetByID(_ context.Context, id string) (housekeeping.Task, error) {
	task, err := q.repo.Get(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return housekeeping.Task{}, errs.ErrTaskNotFound
		}
		return housekeeping.Task{}, err
	}
	return task, nil
}

func (q *taskQueriesImpl) List(_ context.Context) []housekeeping.Task {
	return q.repo.All()
}

func (q *taskQueriesImpl) ListByRoom(_ context.Context, roomID string) []housekeeping.Task {
	return q.repo.ByRoom(roomID)
}

func (q *taskQueriesImpl) ListByStatus(_ context.Context, status housekeeping.Status) []housekeeping.Task {
	return q.repo.ByStatus(status)
}

func (q *taskQueriesImpl) ListHighPriority(_ context.Context) []housekeeping.Task {
	return q.repo.ByPriority(housekeeping.PriorityHigh)
}
