// Package kvstore is the local persistence collaborator: a string-keyed store
// of JSON snapshots mirroring a browser profile's key-value storage.
package kvstore

import (
	"encoding/json"
	"log/slog"

	"hotel-ops/internal/infra"
)

type Store interface {
	// Get returns the raw payload at key, with found=false for a missing key.
	Get(key string) (data []byte, found bool, err error)
	Set(key string, data []byte) error
	Delete(key string) error
}

// Load reads key into a fresh value of type T. A missing key, a read failure
// or a corrupt payload all substitute def; corruption is logged and swallowed,
// never propagated, so startup always succeeds with at least the defaults.
func Load[T any](s Store, logger *slog.Logger, key string, def T) T {
	data, found, err := s.Get(key)
	if err != nil {
		logger.Warn("failed to read stored snapshot, using default", "key", key, "error", err)
		return def
	}
	if !found {
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Warn("corrupt stored snapshot, using default", "key", key, "error", err)
		return def
	}
	return v
}

// Save marshals v and durably stores it under key.
func Save[T any](s Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal snapshot", err)
	}
	if err := s.Set(key, data); err != nil {
		return infra.WrapRepoErr("failed to save snapshot", err)
	}
	return nil
}

// Clear removes the entry at key. Clearing a missing key is not an error.
func Clear(s Store, key string) error {
	if err := s.Delete(key); err != nil {
		return infra.WrapRepoErr("failed to clear snapshot", err)
	}
	return nil
}
