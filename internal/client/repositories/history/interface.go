// Package history persists the ordered match-history list.
package history

import (
	"context"

	"github.com/imalento/Arcane-Tracker/internal/client/models"
)

// Repository is the durable match-history list, ordered newest-first.
//
// Contract:
//   - Prepend inserts at the head and rewrites the whole persisted list.
//   - SetRemoteURL mutates the row with the given id in place, then rewrites.
//   - All returns a read-only snapshot, newest first.
//   - Clear empties the list and persists the empty list.
//
// Write failures are wrapped in common.ErrPersistence.
type Repository interface {
	Prepend(ctx context.Context, g *models.GameSummary) error
	SetRemoteURL(ctx context.Context, id string, url string) error
	All(ctx context.Context) ([]models.GameSummary, error)
	Clear(ctx context.Context) error
}
