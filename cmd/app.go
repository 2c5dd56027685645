package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inovacc/gitmsg/internal/core"
	"github.com/inovacc/gitmsg/internal/github"
	"github.com/inovacc/gitmsg/internal/security"
	"github.com/inovacc/gitmsg/internal/store"
)

// app holds the handles a command needs. The store is opened once here and
// closed by the command when it is done.
type app struct {
	logger *slog.Logger
	store  store.Store
	remote *github.Client
	syncer *core.Syncer
}

func newApp(ctx context.Context) (*app, error) {
	cfg := appConfig
	logger := slog.Default()

	db, err := store.Open(ctx, cfg.StoreDriver, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	remote, err := newGitHubClient(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	opts := []core.SyncerOption{
		core.WithLogger(logger),
		core.WithConcurrency(cfg.SyncConcurrency),
	}

	if cfg.ScanSecrets {
		scanner, err := security.NewLeakScanner()
		if err != nil {
			logger.Warn("secret scanning disabled", "error", err)
		} else {
			opts = append(opts, core.WithSecretScanner(scanner))
		}
	}

	return &app{
		logger: logger,
		store:  db,
		remote: remote,
		syncer: core.NewSyncer(db, remote, opts...),
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close store", "error", err)
	}
}

// newGitHubClient builds the GitHub client from the loaded configuration.
func newGitHubClient(ctx context.Context) (*github.Client, error) {
	cfg := appConfig

	opts := []github.Option{
		github.WithTimeout(cfg.RemoteTimeout),
		github.WithEnterpriseURL(cfg.GitHubAPIURL),
		github.WithLogger(slog.Default()),
	}

	if id := github.DefaultIdentity(); id.Valid() {
		opts = append(opts, github.WithCommitter(id.Name, id.Email))
	}

	client, err := github.New(ctx, cfg.GitHubToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return client, nil
}
