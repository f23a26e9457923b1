package store_test

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netvista-io/cellular-agent/internal/domains/store"
	"github.com/netvista-io/cellular-agent/internal/entities"
)

func newTestService(t *testing.T) *store.Service {
	t.Helper()

	options := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)

	db, err := badger.Open(options)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	return store.NewService(db)
}

func TestService_LoadEmpty(t *testing.T) {
	t.Parallel()

	service := newTestService(t)

	snap, err := service.Load()
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestService_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	service := newTestService(t)

	saved := entities.Snapshot{
		Device: entities.CellularDevice{
			MAC:        "aa:bb:cc:dd:ee:ff",
			Name:       "Cellular Backup",
			CellularIP: "10.0.0.5",
			Signal: entities.Signal{
				RSRP:       lo.ToPtr(-92.0),
				RSRPRating: entities.RatingGood,
			},
		},
		Sims: entities.SimSlots{
			{Slot: 1, ICCID: "8901", RxBytes: 1024, TxBytes: 512},
		},
		Wan: &entities.WanLink{
			Name:         "wan2",
			Availability: lo.ToPtr(99.8),
		},
		FetchedAt: time.Date(2025, 11, 3, 10, 30, 0, 0, time.UTC),
	}

	require.NoError(t, service.Save(saved))

	loaded, err := service.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved, *loaded)
}

func TestService_SaveOverwritesPrevious(t *testing.T) {
	t.Parallel()

	service := newTestService(t)

	first := entities.Snapshot{
		Device:    entities.CellularDevice{MAC: "aa:bb:cc:dd:ee:ff"},
		FetchedAt: time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC),
	}
	second := first
	second.FetchedAt = first.FetchedAt.Add(time.Minute)

	require.NoError(t, service.Save(first))
	require.NoError(t, service.Save(second))

	loaded, err := service.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, second.FetchedAt, loaded.FetchedAt)
}
