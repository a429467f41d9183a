package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	bolt "go.etcd.io/bbolt"

	"github.com/imalento/Arcane-Tracker/internal/blobstore"
	"github.com/imalento/Arcane-Tracker/internal/client/config"
	"github.com/imalento/Arcane-Tracker/internal/client/repositories/history"
	"github.com/imalento/Arcane-Tracker/internal/client/repositories/tokens"
	"github.com/imalento/Arcane-Tracker/internal/client/services"
	"github.com/imalento/Arcane-Tracker/internal/client/storage"
	"github.com/imalento/Arcane-Tracker/internal/hsreplay"
	"github.com/imalento/Arcane-Tracker/internal/logging"
)

// App wires the tracker's components together for the interactive CLI.
// Everything is constructed once here and passed by reference; there are no
// package-level singletons.
type App struct {
	config   *config.Config
	db       *bolt.DB
	source   *hsreplay.TokenSource
	uploader *services.Uploader
	account  services.AccountService
	reader   *bufio.Reader
	log      logging.Logger
}

// NewApp opens local storage, loads the persisted token, and builds the
// service graph.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := storage.Open(c.DatabasePath)
	if err != nil {
		return nil, err
	}

	tokenRepo := tokens.NewBoltRepository(db)
	token, err := tokenRepo.Load(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	source := hsreplay.NewTokenSource(token)

	userAgent := hsreplay.UserAgent(c.AppID, c.AppVersion)
	svc := hsreplay.NewHTTPService(hsreplay.Options{
		BaseURL:   c.APIBaseURL,
		UploadURL: c.UploadRequestURL,
		APIKey:    c.APIKey,
		UserAgent: userAgent,
		Timeout:   c.RequestTimeout,
		Tokens:    source,
		Logger:    log.With("component", "hsreplay"),
	})

	blobs := blobstore.NewHTTPUploader(userAgent, c.RequestTimeout)
	historyRepo := history.NewBoltRepository(db)
	notifier := &printNotifier{w: os.Stdout}

	uploader := services.NewUploader(svc, blobs, historyRepo, source, notifier, c.ClientBuild,
		log.With("component", "uploader"))
	account := services.NewAccountService(svc, tokenRepo, source, c.TestData,
		log.With("component", "account"))

	return &App{
		config:   c,
		db:       db,
		source:   source,
		uploader: uploader,
		account:  account,
		reader:   bufio.NewReader(os.Stdin),
		log:      log,
	}, nil
}

// Run starts the uploader's dispatch loop and the REPL, then releases
// resources when the REPL exits.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.db.Close()

	go a.uploader.Run(ctx)

	a.Root(ctx)
}
