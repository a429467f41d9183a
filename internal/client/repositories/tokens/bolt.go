package tokens

import (
	"context"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/imalento/Arcane-Tracker/internal/client/storage"
	"github.com/imalento/Arcane-Tracker/internal/common"
)

const keyAuthToken = "hsreplay_token"

// BoltRepository implements Repository on a shared bbolt handle.
type BoltRepository struct {
	db *bolt.DB
}

// NewBoltRepository returns a repository bound to the given database.
func NewBoltRepository(db *bolt.DB) *BoltRepository {
	return &BoltRepository{db: db}
}

// Load returns the stored token, or "" when none is set.
func (r *BoltRepository) Load(ctx context.Context) (string, error) {
	var token string
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(storage.BucketSettings))
		if raw := b.Get([]byte(keyAuthToken)); raw != nil {
			token = string(raw)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: load token: %v", common.ErrPersistence, err)
	}
	return token, nil
}

// Save stores the token, replacing any previous value.
func (r *BoltRepository) Save(ctx context.Context, token string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(storage.BucketSettings))
		return b.Put([]byte(keyAuthToken), []byte(token))
	})
	if err != nil {
		return fmt.Errorf("%w: save token: %v", common.ErrPersistence, err)
	}
	return nil
}

// Clear removes the stored token. Clearing an absent token is a no-op.
func (r *BoltRepository) Clear(ctx context.Context) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(storage.BucketSettings))
		return b.Delete([]byte(keyAuthToken))
	})
	if err != nil {
		return fmt.Errorf("%w: clear token: %v", common.ErrPersistence, err)
	}
	return nil
}

var _ Repository = (*BoltRepository)(nil)
