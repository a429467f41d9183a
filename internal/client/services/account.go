// Package services contains the application services of the tracker client:
// the token lifecycle and the upload coordinator.
package services

import (
	"context"
	"fmt"

	"github.com/imalento/Arcane-Tracker/internal/client/repositories/tokens"
	"github.com/imalento/Arcane-Tracker/internal/common"
	"github.com/imalento/Arcane-Tracker/internal/hsreplay"
	"github.com/imalento/Arcane-Tracker/internal/logging"
)

// AccountService drives the auth-token lifecycle: minting, claim-URL
// retrieval, profile fetch, and unlink.
//
// The three network operations return result streams that emit Loading, then
// exactly one Data or Error element, then close. Unlink is synchronous and
// never touches the network.
type AccountService interface {
	CreateToken(ctx context.Context) <-chan Lce[string]
	ClaimURL(ctx context.Context) <-chan Lce[string]
	Profile(ctx context.Context) <-chan Lce[*hsreplay.TokenInfo]
	Unlink(ctx context.Context) error
}

type accountService struct {
	svc      hsreplay.Service
	repo     tokens.Repository
	source   *hsreplay.TokenSource
	testData bool
	log      logging.Logger
}

// NewAccountService constructs an AccountService bound to the replay service,
// the token repository, and the shared in-memory token source.
func NewAccountService(svc hsreplay.Service, repo tokens.Repository, source *hsreplay.TokenSource, testData bool, log logging.Logger) AccountService {
	return &accountService{svc: svc, repo: repo, source: source, testData: testData, log: log}
}

// CreateToken mints a new token. A response without a key is
// common.ErrInvalidToken. A good key is stored in memory and durably before
// the Data element is emitted, so a subsequent upload sees it.
func (a *accountService) CreateToken(ctx context.Context) <-chan Lce[string] {
	ch := make(chan Lce[string], 2)
	ch <- loading[string]()

	go func() {
		defer close(ch)

		token, err := a.svc.CreateToken(ctx, a.testData)
		if err != nil {
			a.log.Error(ctx, "token creation failed", "err", err)
			ch <- lceError[string](err)
			return
		}
		if token.Key == "" {
			ch <- lceError[string](common.ErrInvalidToken)
			return
		}

		a.source.Set(token.Key)
		if err := a.repo.Save(ctx, token.Key); err != nil {
			ch <- lceError[string](fmt.Errorf("storing token: %w", err))
			return
		}

		a.log.Info(ctx, "token created")
		ch <- data(token.Key)
	}()

	return ch
}

// ClaimURL requests a one-time claim link for the current token.
func (a *accountService) ClaimURL(ctx context.Context) <-chan Lce[string] {
	ch := make(chan Lce[string], 2)
	ch <- loading[string]()

	go func() {
		defer close(ch)

		claim, err := a.svc.CreateClaim(ctx)
		if err != nil {
			ch <- lceError[string](err)
			return
		}
		ch <- data(claim.FullURL)
	}()

	return ch
}

// Profile fetches the profile of the current token.
func (a *accountService) Profile(ctx context.Context) <-chan Lce[*hsreplay.TokenInfo] {
	ch := make(chan Lce[*hsreplay.TokenInfo], 2)
	ch <- loading[*hsreplay.TokenInfo]()

	go func() {
		defer close(ch)

		info, err := a.svc.GetTokenInfo(ctx, a.source.Get())
		if err != nil {
			ch <- lceError[*hsreplay.TokenInfo](err)
			return
		}
		ch <- data(info)
	}()

	return ch
}

// Unlink clears the token in memory and in durable storage. No network call.
func (a *accountService) Unlink(ctx context.Context) error {
	a.source.Clear()
	if err := a.repo.Clear(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "token unlinked")
	return nil
}
