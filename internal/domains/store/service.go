package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/netvista-io/cellular-agent/internal/entities"
)

const latestSnapshotKey = "snapshot/latest"

type Service struct {
	db *badger.DB
}

func NewService(db *badger.DB) *Service {
	return &Service{
		db: db,
	}
}

// Save persists the snapshot so a restarted agent can republish
// stale-but-available data before its first successful cycle.
func (s *Service) Save(snap entities.Snapshot) (err error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(latestSnapshotKey), data)
	})
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	return nil
}

// Load returns the persisted snapshot, or nil when none has been saved yet.
func (s *Service) Load() (snap *entities.Snapshot, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(latestSnapshotKey))
		if err != nil {
			return err
		}

		return item.Value(func(data []byte) error {
			snap = &entities.Snapshot{}
			return json.Unmarshal(data, snap)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return snap, nil
}
