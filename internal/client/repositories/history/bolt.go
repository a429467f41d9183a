package history

import (
	"context"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/imalento/Arcane-Tracker/internal/client/models"
	"github.com/imalento/Arcane-Tracker/internal/client/storage"
	"github.com/imalento/Arcane-Tracker/internal/common"
)

const keyGameList = "game_list"

// BoltRepository implements Repository on a shared bbolt handle. The whole
// list lives under a single key and every mutation rewrites it, which keeps
// the on-disk order authoritative for small histories.
type BoltRepository struct {
	db *bolt.DB
}

// NewBoltRepository returns a repository bound to the given database.
func NewBoltRepository(db *bolt.DB) *BoltRepository {
	return &BoltRepository{db: db}
}

func readList(b *bolt.Bucket) ([]models.GameSummary, error) {
	raw := b.Get([]byte(keyGameList))
	if raw == nil {
		return nil, nil
	}
	var list []models.GameSummary
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func writeList(b *bolt.Bucket, list []models.GameSummary) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return b.Put([]byte(keyGameList), raw)
}

// Prepend inserts g at the head of the list and persists the full list.
func (r *BoltRepository) Prepend(ctx context.Context, g *models.GameSummary) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(storage.BucketHistory))
		list, err := readList(b)
		if err != nil {
			return err
		}
		list = append([]models.GameSummary{*g}, list...)
		return writeList(b, list)
	})
	if err != nil {
		return fmt.Errorf("%w: prepend: %v", common.ErrPersistence, err)
	}
	return nil
}

// SetRemoteURL sets the remote replay link on the row with the given id and
// persists the full list. A missing row is reported as a persistence error:
// rows are never deleted individually, so the id must be there.
func (r *BoltRepository) SetRemoteURL(ctx context.Context, id string, url string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(storage.BucketHistory))
		list, err := readList(b)
		if err != nil {
			return err
		}
		found := false
		for i := range list {
			if list[i].ID == id {
				list[i].RemoteURL = url
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no row with id %s", id)
		}
		return writeList(b, list)
	})
	if err != nil {
		return fmt.Errorf("%w: set remote url: %v", common.ErrPersistence, err)
	}
	return nil
}

// All returns a snapshot of the list, newest first.
func (r *BoltRepository) All(ctx context.Context) ([]models.GameSummary, error) {
	var out []models.GameSummary
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(storage.BucketHistory))
		list, err := readList(b)
		if err != nil {
			return err
		}
		out = list
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: read history: %v", common.ErrPersistence, err)
	}
	return out, nil
}

// Clear empties the list and persists the empty list.
func (r *BoltRepository) Clear(ctx context.Context) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(storage.BucketHistory))
		return writeList(b, []models.GameSummary{})
	})
	if err != nil {
		return fmt.Errorf("%w: clear history: %v", common.ErrPersistence, err)
	}
	return nil
}

var _ Repository = (*BoltRepository)(nil)
