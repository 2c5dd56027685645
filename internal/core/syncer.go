package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/inovacc/gitmsg/internal/model"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Syncer mirrors stored messages into their repositories on the remote
// host and records the resulting version on each message.
type Syncer struct {
	store       MessageStore
	remote      RemoteClient
	scanner     SecretScanner
	logger      *slog.Logger
	concurrency int
	locks       *keyedMutex
}

// SyncerOption configures a Syncer.
type SyncerOption func(*Syncer)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) SyncerOption {
	return func(s *Syncer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithConcurrency sets how many messages a sweep syncs at once.
func WithConcurrency(n int) SyncerOption {
	return func(s *Syncer) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithSecretScanner refuses to publish content the scanner flags.
func WithSecretScanner(scanner SecretScanner) SyncerOption {
	return func(s *Syncer) {
		s.scanner = scanner
	}
}

// NewSyncer creates a Syncer over the given store and remote client.
func NewSyncer(store MessageStore, remote RemoteClient, opts ...SyncerOption) *Syncer {
	s := &Syncer{
		store:       store,
		remote:      remote,
		logger:      slog.Default(),
		concurrency: 1,
		locks:       newKeyedMutex(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RegisterRepository starts tracking owner/name after confirming it exists
// on the remote host. Registering the same repository twice returns the
// existing record.
func (s *Syncer) RegisterRepository(ctx context.Context, owner, name string) (*model.Repository, error) {
	in := repositoryInput{Owner: strings.TrimSpace(owner), Name: strings.TrimSpace(name)}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	remote, err := s.remote.GetRepository(ctx, in.Owner, in.Name)
	if err != nil {
		return nil, fmt.Errorf("verify repository %s/%s: %w", in.Owner, in.Name, err)
	}

	if remote == nil {
		return nil, &model.NotFoundError{Kind: "repository", Key: in.Owner + "/" + in.Name}
	}

	repo, err := s.store.AddRepository(ctx, in.Owner, in.Name)
	if err != nil {
		return nil, err
	}

	s.logger.Info("registered repository", "repo", repo.FullName(), "id", repo.ID)

	return repo, nil
}

// CreateRepository creates a repository on the remote host under the
// authenticated account and registers it.
func (s *Syncer) CreateRepository(ctx context.Context, name string, private bool) (*model.Repository, error) {
	in := createRepositoryInput{Name: strings.TrimSpace(name)}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	remote, err := s.remote.CreateRepository(ctx, in.Name, private)
	if err != nil {
		return nil, err
	}

	return s.store.AddRepository(ctx, remote.Owner, remote.Name)
}

// CreateMessage stores a new message. Content is trimmed and HTML-escaped.
// When a repository is given the message is synchronized inline; a failed
// sync leaves it pending for the next sweep.
func (s *Syncer) CreateMessage(ctx context.Context, content string, repositoryID *int64) (*model.Message, error) {
	in := messageInput{Content: html.EscapeString(strings.TrimSpace(content))}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	if repositoryID != nil {
		if _, err := s.store.GetRepository(ctx, *repositoryID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, &model.ValidationError{Field: "repository_id", Reason: fmt.Sprintf("repository %d is not tracked", *repositoryID)}
			}
			return nil, err
		}
	}

	msg, err := s.store.AddMessage(ctx, in.Content, repositoryID)
	if err != nil {
		return nil, err
	}

	if msg.RepositoryID == nil {
		return msg, nil
	}

	res, err := s.syncAndRecord(ctx, msg.ID)
	if err != nil {
		s.logger.Error("inline sync failed, message left pending", "message_id", msg.ID, "error", err)
		return msg, nil
	}

	if res.Outcome == model.SyncSynced {
		msg.GitHash = res.VersionPtr()
	}

	return msg, nil
}

// ListMessages returns all messages, newest first.
func (s *Syncer) ListMessages(ctx context.Context) ([]model.Message, error) {
	return s.store.GetMessages(ctx)
}

// ListRepositories returns all tracked repositories, newest first.
func (s *Syncer) ListRepositories(ctx context.Context) ([]model.Repository, error) {
	return s.store.GetRepositories(ctx)
}

// SyncMessage writes msg to its repository and reports the outcome. It
// does not record the version on the stored message.
func (s *Syncer) SyncMessage(ctx context.Context, msg model.Message) model.SyncResult {
	res, err := s.syncMessage(ctx, msg)
	if err != nil {
		return model.SyncResult{MessageID: msg.ID, Outcome: model.SyncFailed, Err: err}
	}

	return res
}

// SyncAllPending synchronizes every message without a version and records
// the versions. Per-message failures are counted, not returned; a store
// failure aborts the sweep.
func (s *Syncer) SyncAllPending(ctx context.Context) (model.SweepReport, error) {
	messages, err := s.store.GetMessages(ctx)
	if err != nil {
		return model.SweepReport{}, err
	}

	pending := lo.Filter(messages, func(m model.Message, _ int) bool {
		return !m.Synced()
	})

	report := model.SweepReport{Pending: len(pending)}

	if s.concurrency <= 1 {
		for _, msg := range pending {
			res, err := s.syncAndRecord(ctx, msg.ID)
			if err != nil {
				return report, err
			}
			report.Add(res)
		}
	} else {
		var mu sync.Mutex

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.concurrency)

		for _, msg := range pending {
			id := msg.ID
			g.Go(func() error {
				res, err := s.syncAndRecord(gctx, id)
				if err != nil {
					return err
				}

				mu.Lock()
				report.Add(res)
				mu.Unlock()

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return report, err
		}
	}

	report.Success = true

	s.logger.Info("sweep complete",
		"pending", report.Pending,
		"synced", report.Synced,
		"skipped", report.Skipped,
		"failed", report.Failed,
	)

	return report, nil
}

// syncAndRecord syncs one stored message under its per-ID lock and
// records the version. The message is reloaded under the lock so a
// concurrent sync of the same ID is seen.
func (s *Syncer) syncAndRecord(ctx context.Context, id int64) (model.SyncResult, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	msg, err := s.store.GetMessage(ctx, id)
	if err != nil {
		return model.SyncResult{MessageID: id}, err
	}

	if msg.Synced() {
		return model.SyncResult{MessageID: id, Outcome: model.SyncSkipped, Reason: model.SkipAlreadySynced}, nil
	}

	res, err := s.syncMessage(ctx, *msg)
	if err != nil {
		return res, err
	}

	if res.Outcome != model.SyncSynced {
		return res, nil
	}

	updated, err := s.store.UpdateMessageVersion(ctx, id, res.Version)
	if err != nil {
		return res, err
	}

	if !updated {
		s.logger.Warn("message version already recorded", "message_id", id)
	}

	return res, nil
}

// syncMessage returns an error only for store failures; remote failures
// are reported as a failed outcome.
func (s *Syncer) syncMessage(ctx context.Context, msg model.Message) (model.SyncResult, error) {
	res := model.SyncResult{MessageID: msg.ID}

	if msg.RepositoryID == nil {
		res.Reason = model.SkipNoRepository
		return res, nil
	}

	repo, err := s.store.GetRepository(ctx, *msg.RepositoryID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Warn("message references unknown repository", "message_id", msg.ID, "repository_id", *msg.RepositoryID)
			res.Reason = model.SkipDanglingReference
			return res, nil
		}
		return res, err
	}

	if s.scanner != nil && s.scanner.ContainsSecret(msg.Content) {
		s.logger.Warn("message content looks like a secret, not publishing", "message_id", msg.ID, "repo", repo.FullName())
		res.Reason = model.SkipSecretDetected
		return res, nil
	}

	body, err := messageFile(msg)
	if err != nil {
		res.Outcome = model.SyncFailed
		res.Err = err
		return res, nil
	}

	written, err := s.remote.CreateOrUpdateFile(ctx, repo.Owner, repo.Name, msg.FilePath(), body, msg.CommitMessage())
	if err != nil {
		s.logger.Error("sync failed", "message_id", msg.ID, "repo", repo.FullName(), "path", msg.FilePath(), "error", err)
		res.Outcome = model.SyncFailed
		res.Err = err
		return res, nil
	}

	if written == nil || written.SHA == "" {
		s.logger.Error("sync returned no version", "message_id", msg.ID, "repo", repo.FullName(), "path", msg.FilePath())
		res.Outcome = model.SyncFailed
		res.Err = &model.RemoteWriteError{Op: "write file", Body: "response missing content sha"}
		return res, nil
	}

	s.logger.Debug("message synced", "message_id", msg.ID, "repo", repo.FullName(), "sha", written.SHA)

	res.Outcome = model.SyncSynced
	res.Version = written.SHA

	return res, nil
}

type messageDocument struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// messageFile renders the file body written for a message.
func messageFile(msg model.Message) (string, error) {
	data, err := json.MarshalIndent(messageDocument{
		ID:        msg.ID,
		Content:   msg.Content,
		Timestamp: msg.Timestamp,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode message %d: %w", msg.ID, err)
	}

	return string(data), nil
}
