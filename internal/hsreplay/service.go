// Package hsreplay is the client for the replay-hosting REST API.
package hsreplay

import "context"

// Service is the replay-service API surface the tracker depends on. Each
// operation is a single request/response call; none of them retries.
type Service interface {
	// RequestUploadSlot asks for an upload slot. Requires an auth token;
	// returns common.ErrAuthRequired when none is set.
	RequestUploadSlot(ctx context.Context, req *UploadRequest) (*UploadResponse, error)

	// CreateToken mints a new auth token. Anonymous call.
	CreateToken(ctx context.Context, testData bool) (*Token, error)

	// CreateClaim requests a claim URL for the current token.
	CreateClaim(ctx context.Context) (*Claim, error)

	// GetTokenInfo fetches the profile of the given token.
	GetTokenInfo(ctx context.Context, token string) (*TokenInfo, error)
}
