package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imalento/Arcane-Tracker/internal/client/repositories/tokens"
	"github.com/imalento/Arcane-Tracker/internal/client/storage"
	"github.com/imalento/Arcane-Tracker/internal/common"
	"github.com/imalento/Arcane-Tracker/internal/hsreplay"
	"github.com/imalento/Arcane-Tracker/internal/logging"
)

type fakeAccountBackend struct {
	token    *hsreplay.Token
	tokenErr error

	claim    *hsreplay.Claim
	claimErr error

	info    *hsreplay.TokenInfo
	infoErr error

	gotTestData bool
	gotToken    string
}

func (f *fakeAccountBackend) RequestUploadSlot(ctx context.Context, req *hsreplay.UploadRequest) (*hsreplay.UploadResponse, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAccountBackend) CreateToken(ctx context.Context, testData bool) (*hsreplay.Token, error) {
	f.gotTestData = testData
	if f.tokenErr != nil {
		return nil, f.tokenErr
	}
	return f.token, nil
}

func (f *fakeAccountBackend) CreateClaim(ctx context.Context) (*hsreplay.Claim, error) {
	if f.claimErr != nil {
		return nil, f.claimErr
	}
	return f.claim, nil
}

func (f *fakeAccountBackend) GetTokenInfo(ctx context.Context, token string) (*hsreplay.TokenInfo, error) {
	f.gotToken = token
	if f.infoErr != nil {
		return nil, f.infoErr
	}
	return f.info, nil
}

type accountFixture struct {
	account AccountService
	backend *fakeAccountBackend
	source  *hsreplay.TokenSource
	repo    tokens.Repository
}

func newAccountFixture(t *testing.T, token string, testData bool) *accountFixture {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	backend := &fakeAccountBackend{}
	source := hsreplay.NewTokenSource(token)
	repo := tokens.NewBoltRepository(db)
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	if token != "" {
		require.NoError(t, repo.Save(context.Background(), token))
	}

	return &accountFixture{
		account: NewAccountService(backend, repo, source, testData, log),
		backend: backend,
		source:  source,
		repo:    repo,
	}
}

// collect drains a result stream into a slice.
func collect[T any](t *testing.T, ch <-chan Lce[T]) []Lce[T] {
	t.Helper()
	var out []Lce[T]
	for e := range ch {
		out = append(out, e)
	}
	return out
}

func TestCreateToken_Success(t *testing.T) {
	fx := newAccountFixture(t, "", true)
	fx.backend.token = &hsreplay.Token{Key: "abc"}
	ctx := context.Background()

	got := collect(t, fx.account.CreateToken(ctx))

	require.Len(t, got, 2)
	assert.Equal(t, LceLoading, got[0].State)
	assert.Equal(t, LceData, got[1].State)
	assert.Equal(t, "abc", got[1].Value)

	assert.True(t, fx.backend.gotTestData)
	assert.Equal(t, "abc", fx.source.Get())

	stored, err := fx.repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", stored)
}

func TestCreateToken_EmptyKey(t *testing.T) {
	fx := newAccountFixture(t, "", false)
	fx.backend.token = &hsreplay.Token{}

	got := collect(t, fx.account.CreateToken(context.Background()))

	require.Len(t, got, 2)
	assert.Equal(t, LceLoading, got[0].State)
	assert.Equal(t, LceError, got[1].State)
	require.ErrorIs(t, got[1].Err, common.ErrInvalidToken)
	assert.Equal(t, "", fx.source.Get())
}

func TestCreateToken_RemoteFailure(t *testing.T) {
	fx := newAccountFixture(t, "", false)
	fx.backend.tokenErr = common.ErrNetwork

	got := collect(t, fx.account.CreateToken(context.Background()))

	require.Len(t, got, 2)
	assert.Equal(t, LceError, got[1].State)
	require.ErrorIs(t, got[1].Err, common.ErrNetwork)
}

func TestClaimURL(t *testing.T) {
	fx := newAccountFixture(t, "t1", false)
	fx.backend.claim = &hsreplay.Claim{FullURL: "https://hsreplay.net/account/claim/xyz/"}

	got := collect(t, fx.account.ClaimURL(context.Background()))

	require.Len(t, got, 2)
	assert.Equal(t, LceData, got[1].State)
	assert.Equal(t, "https://hsreplay.net/account/claim/xyz/", got[1].Value)
}

func TestClaimURL_Error(t *testing.T) {
	fx := newAccountFixture(t, "t1", false)
	fx.backend.claimErr = common.ErrAuthRequired

	got := collect(t, fx.account.ClaimURL(context.Background()))

	require.Len(t, got, 2)
	assert.Equal(t, LceError, got[1].State)
	require.ErrorIs(t, got[1].Err, common.ErrAuthRequired)
}

func TestProfile_UsesCurrentToken(t *testing.T) {
	fx := newAccountFixture(t, "t1", false)
	fx.backend.info = &hsreplay.TokenInfo{
		Key:  "t1",
		User: &hsreplay.AccountInfo{Username: "player"},
	}

	got := collect(t, fx.account.Profile(context.Background()))

	require.Len(t, got, 2)
	assert.Equal(t, LceData, got[1].State)
	assert.Equal(t, "t1", fx.backend.gotToken)
	require.NotNil(t, got[1].Value)
	assert.Equal(t, "player", got[1].Value.User.Username)
}

func TestUnlink_ClearsMemoryAndStorage(t *testing.T) {
	fx := newAccountFixture(t, "t1", false)
	ctx := context.Background()

	require.NoError(t, fx.account.Unlink(ctx))

	assert.Equal(t, "", fx.source.Get())
	stored, err := fx.repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", stored)
}
