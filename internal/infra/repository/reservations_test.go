//go:build unit

package repository_test

import (
	"io"
	"log/slog"
	"testing"

	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/kvstore"
	"hotel-ops/internal/infra/repository"
	"hotel-ops/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservations(t *testing.T, seed []reservation.Reservation) (*repository.Reservations, kvstore.Store) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return repository.NewReservations(store, logger, seed, false), store
}

func TestReservationsSeedAndGet(t *testing.T) {
	seeded := builder.NewReservationBuilder().Build()
	repo, _ := newReservations(t, []reservation.Reservation{seeded})

	got, err := repo.Get("RES001")
	require.NoError(t, err)
	assert.Equal(t, seeded.GuestID, got.GuestID)

	_, err = repo.Get("RES999")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestReservationsStartEmptySkipsSeed(t *testing.T) {
	store := kvstore.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	seeded := builder.NewReservationBuilder().Build()

	repo := repository.NewReservations(store, logger, []reservation.Reservation{seeded}, true)

	assert.Empty(t, repo.All())
}

func TestReservationsInsertPersists(t *testing.T) {
	repo, store := newReservations(t, nil)
	res := builder.NewReservationBuilder().Build()

	created, err := repo.Insert(res)
	require.NoError(t, err)
	assert.Equal(t, "RES001", created.ID)

	// the snapshot survives a reload
	reloaded := repository.NewReservations(store, slog.New(slog.NewTextHandler(io.Discard, nil)), nil, false)
	got, err := reloaded.Get("RES001")
	require.NoError(t, err)
	assert.Equal(t, res.GuestID, got.GuestID)
}

func TestReservationsNextID(t *testing.T) {
	repo, _ := newReservations(t, nil)

	assert.Equal(t, "RES001", repo.NextID())

	_, err := repo.Insert(builder.NewReservationBuilder().Build())
	require.NoError(t, err)

	assert.Equal(t, "RES002", repo.NextID())
}

func TestReservationsUpdate(t *testing.T) {
	t.Run("applied transition persists", func(t *testing.T) {
		repo, store := newReservations(t, []reservation.Reservation{builder.NewReservationBuilder().Build()})

		updated, changed, err := repo.Update("RES001", func(r *reservation.Reservation) bool {
			r.Status = reservation.StatusCheckedIn
			return true
		})
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, reservation.StatusCheckedIn, updated.Status)

		reloaded := repository.NewReservations(store, slog.New(slog.NewTextHandler(io.Discard, nil)), nil, false)
		got, err := reloaded.Get("RES001")
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCheckedIn, got.Status)
	})

	t.Run("declined transition does not persist", func(t *testing.T) {
		repo, store := newReservations(t, []reservation.Reservation{builder.NewReservationBuilder().Build()})

		res, changed, err := repo.Update("RES001", func(r *reservation.Reservation) bool {
			return r.MarkCheckedOut(r.CreatedAt)
		})
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, reservation.StatusConfirmed, res.Status)

		// nothing was written to the store
		_, found, storeErr := store.Get(kvstore.KeyReservations)
		require.NoError(t, storeErr)
		assert.False(t, found)
	})

	t.Run("missing id", func(t *testing.T) {
		repo, _ := newReservations(t, nil)

		_, _, err := repo.Update("RES404", func(r *reservation.Reservation) bool { return true })
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationsFilters(t *testing.T) {
	first := builder.NewReservationBuilder().Build()
	second := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.ID = "RES002"
		b.GuestID = "G002"
		b.RoomID = "RM002"
		b.Status = reservation.StatusCancelled
	}).Build()
	repo, _ := newReservations(t, []reservation.Reservation{first, second})

	assert.Len(t, repo.ByGuest("G001"), 1)
	assert.Len(t, repo.ByRoom("RM002"), 1)
	assert.Len(t, repo.ByStatus(reservation.StatusCancelled), 1)
	assert.Len(t, repo.Active(), 1)
	assert.Equal(t, "RES001", repo.Active()[0].ID)
}

func TestReservationsClearAndReset(t *testing.T) {
	seeded := builder.NewReservationBuilder().Build()
	repo, _ := newReservations(t, []reservation.Reservation{seeded})

	require.NoError(t, repo.Clear())
	assert.Empty(t, repo.All())

	require.NoError(t, repo.ResetToSeed())
	assert.Len(t, repo.All(), 1)
}
