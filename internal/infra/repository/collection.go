// Package repository owns the in-memory entity collections and their
// persistence to the key-value store. Every successful mutation is saved
// synchronously; a failed save is reported but never rolls back the
// in-memory change (accepted inconsistency window of the reference design).
package repository

import (
	"log/slog"
	"sync"

	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/kvstore"
)

// collection is the shared core of all entity repositories: a mutex-guarded
// slice loaded once from the store (or seeded) and written back after each
// mutation. The mutex restores the single-writer invariant the original
// single-threaded host got for free.
type collection[T any] struct {
	mu     sync.RWMutex
	store  kvstore.Store
	logger *slog.Logger
	key    string
	idOf   func(*T) string
	seed   []T
	items  []T
}

func newCollection[T any](store kvstore.Store, logger *slog.Logger, key string, idOf func(*T) string, seed []T, startEmpty bool) *collection[T] {
	def := seed
	if startEmpty {
		def = []T{}
	}
	c := &collection[T]{
		store:  store,
		logger: logger,
		key:    key,
		idOf:   idOf,
		seed:   seed,
	}
	c.items = kvstore.Load(store, logger, key, append([]T(nil), def...))
	return c
}

func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

func (c *collection[T]) filter(pred func(*T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []T
	for i := range c.items {
		if pred(&c.items[i]) {
			out = append(out, c.items[i])
		}
	}
	return out
}

func (c *collection[T]) get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.items {
		if c.idOf(&c.items[i]) == id {
			return c.items[i], nil
		}
	}
	var zero T
	return zero, infra.WrapRepoErr("no entity with id "+id, nil, infra.KindNotFound)
}

func (c *collection[T]) ids() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, len(c.items))
	for i := range c.items {
		out[i] = c.idOf(&c.items[i])
	}
	return out
}

func (c *collection[T]) count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *collection[T]) insert(item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)
	return item, c.persistLocked()
}

// mutate applies fn to the entity with the given id under the write lock.
// fn returning false means a guard declined the change: nothing is persisted
// and the untouched entity is returned. A missing id is a NOT_FOUND error.
func (c *collection[T]) mutate(id string, fn func(*T) bool) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.idOf(&c.items[i]) != id {
			continue
		}
		if !fn(&c.items[i]) {
			return c.items[i], false, nil
		}
		return c.items[i], true, c.persistLocked()
	}
	var zero T
	return zero, false, infra.WrapRepoErr("no entity with id "+id, nil, infra.KindNotFound)
}

func (c *collection[T]) replaceAll(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = items
	return c.persistLocked()
}

func (c *collection[T]) resetToSeed() error {
	return c.replaceAll(append([]T(nil), c.seed...))
}

func (c *collection[T]) clear() error {
	return c.replaceAll([]T{})
}

// persistLocked saves the snapshot. The in-memory state has already changed
// by the time this runs, so failure is logged and reported without rollback.
func (c *collection[T]) persistLocked() error {
	if err := kvstore.Save(c.store, c.key, c.items); err != nil {
		c.logger.Error("collection mutated in memory but snapshot save failed", "key", c.key, "error", err)
		return err
	}
	return nil
}
