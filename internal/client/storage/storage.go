// Package storage opens the client's local bbolt database and creates the
// buckets the repositories expect. One handle is shared by all repositories.
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	// BucketHistory holds the serialized match-history list.
	BucketHistory = "history"
	// BucketSettings holds small single-value settings such as the auth token.
	BucketSettings = "settings"

	openTimeout = 2 * time.Second
)

// Open opens (or creates) the bbolt database at path and bootstraps buckets.
func Open(path string) (*bolt.DB, error) {
	if path == "" {
		return nil, errors.New("empty db path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(BucketHistory)); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists([]byte(BucketSettings)); err != nil {
			return err
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
