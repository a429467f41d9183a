// Package tokens persists the single opaque auth token.
package tokens

import "context"

// Repository stores the replay-service auth token. The token is an opaque
// credential; its shape is never validated here.
//
// Load returns an empty string (and no error) when no token has been saved,
// which is the normal first-run state.
type Repository interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
