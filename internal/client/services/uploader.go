package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/imalento/Arcane-Tracker/internal/blobstore"
	"github.com/imalento/Arcane-Tracker/internal/client/models"
	"github.com/imalento/Arcane-Tracker/internal/client/repositories/history"
	"github.com/imalento/Arcane-Tracker/internal/common"
	"github.com/imalento/Arcane-Tracker/internal/hsreplay"
	"github.com/imalento/Arcane-Tracker/internal/logging"
)

// UploadState is the phase of one upload attempt.
type UploadState int

const (
	StateIdle UploadState = iota
	StateRequestingSlot
	StateNoSlot
	StateUploading
	StateCompleted
	StateFailed
)

func (s UploadState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequestingSlot:
		return "requesting_slot"
	case StateNoSlot:
		return "no_slot"
	case StateUploading:
		return "uploading"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Notifier receives the single terminal outcome of an upload attempt. An
// attempt made with a token produces exactly one call, success or failure;
// recording without a token produces none.
type Notifier interface {
	UploadSucceeded(summary models.GameSummary)
	UploadFailed(summary models.GameSummary, err error)
}

// Uploader records finished games locally and, when a token is present,
// drives the upload protocol: request a slot, write the replay link
// optimistically, PUT the payload to object storage.
//
// Network legs run in their own goroutines; history mutations and
// notifications are funneled through a single dispatch goroutine (Run), so
// they are serialized per process. Overlapping attempts for different games
// are allowed and target distinct history rows.
type Uploader struct {
	svc      hsreplay.Service
	blobs    blobstore.Uploader
	history  history.Repository
	source   *hsreplay.TokenSource
	notifier Notifier
	build    int
	log      logging.Logger
	jobs     chan func()
}

// NewUploader constructs the upload coordinator. Run must be started before
// any upload attempt can reach its terminal state.
func NewUploader(svc hsreplay.Service, blobs blobstore.Uploader, hist history.Repository, source *hsreplay.TokenSource, notifier Notifier, build int, log logging.Logger) *Uploader {
	return &Uploader{
		svc:      svc,
		blobs:    blobs,
		history:  hist,
		source:   source,
		notifier: notifier,
		build:    build,
		log:      log,
		jobs:     make(chan func(), 16),
	}
}

// Run drains the dispatch queue until ctx is cancelled. All history writes
// past the initial prepend and all notifications execute here.
func (u *Uploader) Run(ctx context.Context) {
	for {
		select {
		case job := <-u.jobs:
			job()
		case <-ctx.Done():
			return
		}
	}
}

func (u *Uploader) post(job func()) {
	u.jobs <- job
}

// Record appends the finished game to local history and, iff a token is
// present, starts an upload attempt. The summary is persisted before any
// network activity and is never rolled back; a persistence failure aborts
// with an error wrapping common.ErrPersistence.
func (u *Uploader) Record(ctx context.Context, matchStart string, friendlyPlayerID string, game *models.Game, payload []byte) (*models.GameSummary, error) {
	summary := &models.GameSummary{
		ID:           uuid.NewString(),
		Coin:         game.HasCoin,
		Win:          game.Victory,
		Hero:         game.PlayerClass,
		OpponentHero: game.OpponentClass,
		Date:         models.ISO8601(time.Now()),
		DeckName:     game.DeckName,
		GameType:     game.GameType,
	}

	if err := u.history.Prepend(ctx, summary); err != nil {
		return nil, err
	}

	if u.source.Get() == "" {
		u.log.Debug(ctx, "no token set, game recorded locally only", "game", summary.ID)
		return summary, nil
	}

	go u.attempt(ctx, matchStart, friendlyPlayerID, game, *summary, payload)

	return summary, nil
}

// attempt drives one upload through its states. Every path ends in exactly
// one call to finish.
func (u *Uploader) attempt(ctx context.Context, matchStart string, friendlyPlayerID string, game *models.Game, summary models.GameSummary, payload []byte) {
	log := u.log.With("attempt", uuid.NewString(), "game", summary.ID)

	state := StateRequestingSlot
	log.Debug(ctx, "state transition", "state", state)

	req := &hsreplay.UploadRequest{
		MatchStart:       matchStart,
		Build:            u.build,
		FriendlyPlayerID: friendlyPlayerID,
		GameType:         int(game.GameType),
	}
	if game.Rank > 0 {
		if friendlyPlayerID == "1" {
			req.Player1 = &hsreplay.PlayerAttrs{Rank: game.Rank}
		} else {
			req.Player2 = &hsreplay.PlayerAttrs{Rank: game.Rank}
		}
	}

	resp, err := u.svc.RequestUploadSlot(ctx, req)
	if err != nil {
		u.finish(ctx, log, summary, StateFailed, err)
		return
	}
	if resp.PutURL == "" {
		log.Debug(ctx, "state transition", "state", StateNoSlot)
		u.finish(ctx, log, summary, StateFailed, common.ErrNoPutURL)
		return
	}

	// Optimistic write: the replay link is persisted before the PUT is
	// confirmed. A later PUT failure leaves it in place.
	summary.RemoteURL = resp.URL
	errCh := make(chan error, 1)
	u.post(func() {
		errCh <- u.history.SetRemoteURL(ctx, summary.ID, resp.URL)
	})
	if err := <-errCh; err != nil {
		u.finish(ctx, log, summary, StateFailed, err)
		return
	}

	state = StateUploading
	log.Debug(ctx, "state transition", "state", state, "put_url", resp.PutURL)

	if err := u.blobs.Put(ctx, resp.PutURL, payload, "text/plain"); err != nil {
		u.finish(ctx, log, summary, StateFailed, err)
		return
	}

	u.finish(ctx, log, summary, StateCompleted, nil)
}

// finish delivers the attempt's single terminal notification on the dispatch
// goroutine.
func (u *Uploader) finish(ctx context.Context, log logging.Logger, summary models.GameSummary, state UploadState, err error) {
	u.post(func() {
		if err != nil {
			log.Error(ctx, "upload failed", "state", state, "err", err)
			u.notifier.UploadFailed(summary, err)
			return
		}
		log.Info(ctx, "upload succeeded", "state", state, "url", summary.RemoteURL)
		u.notifier.UploadSucceeded(summary)
	})
}

// History returns the recorded games, newest first.
func (u *Uploader) History(ctx context.Context) ([]models.GameSummary, error) {
	return u.history.All(ctx)
}

// EraseHistory clears the recorded games and persists the empty list.
func (u *Uploader) EraseHistory(ctx context.Context) error {
	return u.history.Clear(ctx)
}
