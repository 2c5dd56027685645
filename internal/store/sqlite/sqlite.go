// Package sqlite provides SQLite storage for gitmsg messages and repositories.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/inovacc/gitmsg/internal/model"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store implements store.Store using SQLite.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// New opens (or creates) the database at dbPath and applies pending migrations.
func New(ctx context.Context, dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't handle multiple writers well
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := NewMigrator(db).MigrateUp(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Store{
		db:   db,
		path: dbPath,
		now:  func() time.Time { return time.Now().UTC() },
	}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks if the database is accessible.
func (s *Store) Ping(ctx context.Context) error {
	return model.NewStoreError("ping", s.db.PingContext(ctx))
}

// ============================================================================
// Message Operations
// ============================================================================

const messageColumns = `id, content, repository_id, git_hash, timestamp`

// AddMessage inserts a new unsynchronized message.
func (s *Store) AddMessage(ctx context.Context, content string, repositoryID *int64) (*model.Message, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (content, repository_id, git_hash, timestamp)
		VALUES (?, ?, NULL, ?)
	`, content, nullInt64(repositoryID), s.now())
	if err != nil {
		return nil, model.NewStoreError("add message", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, model.NewStoreError("add message", err)
	}

	return s.GetMessage(ctx, id)
}

// GetMessage retrieves a message by ID.
func (s *Store) GetMessage(ctx context.Context, id int64) (*model.Message, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = ?`, id)

	msg, err := scanMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.NewStoreError("get message", fmt.Errorf("message %d: %w", id, model.ErrNotFound))
	}

	if err != nil {
		return nil, model.NewStoreError("get message", err)
	}

	return msg, nil
}

// GetMessages lists all messages, newest first.
func (s *Store) GetMessages(ctx context.Context) ([]model.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		ORDER BY timestamp DESC, id DESC
	`)
	if err != nil {
		return nil, model.NewStoreError("list messages", err)
	}

	defer func() { _ = rows.Close() }()

	messages := []model.Message{}

	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, model.NewStoreError("list messages", err)
		}

		messages = append(messages, *msg)
	}

	return messages, model.NewStoreError("list messages", rows.Err())
}

// UpdateMessageVersion records the version identifier of a synchronized
// message. The update only applies while the message has no version yet;
// it reports false when the message is missing or was already synchronized.
func (s *Store) UpdateMessageVersion(ctx context.Context, id int64, version string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE messages
		SET git_hash = ?
		WHERE id = ? AND git_hash IS NULL
	`, version, id)
	if err != nil {
		return false, model.NewStoreError("update message version", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, model.NewStoreError("update message version", err)
	}

	return n == 1, nil
}

// ============================================================================
// Repository Operations
// ============================================================================

const repositoryColumns = `id, owner, name, created_at`

// AddRepository inserts a repository, or returns the existing one with the same owner and name.
func (s *Store) AddRepository(ctx context.Context, owner, name string) (*model.Repository, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO repositories (owner, name, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(owner, name) DO NOTHING
	`, owner, name, s.now())
	if err != nil {
		return nil, model.NewStoreError("add repository", err)
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT `+repositoryColumns+` FROM repositories WHERE owner = ? AND name = ?
	`, owner, name)

	repo, err := scanRepository(row)
	if err != nil {
		return nil, model.NewStoreError("add repository", err)
	}

	return repo, nil
}

// GetRepository retrieves a repository by ID.
func (s *Store) GetRepository(ctx context.Context, id int64) (*model.Repository, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+repositoryColumns+` FROM repositories WHERE id = ?`, id)

	repo, err := scanRepository(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.NewStoreError("get repository", fmt.Errorf("repository %d: %w", id, model.ErrNotFound))
	}

	if err != nil {
		return nil, model.NewStoreError("get repository", err)
	}

	return repo, nil
}

// GetRepositories lists all repositories, newest first.
func (s *Store) GetRepositories(ctx context.Context) ([]model.Repository, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+repositoryColumns+`
		FROM repositories
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, model.NewStoreError("list repositories", err)
	}

	defer func() { _ = rows.Close() }()

	repos := []model.Repository{}

	for rows.Next() {
		repo, err := scanRepository(rows)
		if err != nil {
			return nil, model.NewStoreError("list repositories", err)
		}

		repos = append(repos, *repo)
	}

	return repos, model.NewStoreError("list repositories", rows.Err())
}

// ============================================================================
// Helpers
// ============================================================================

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(row scanner) (*model.Message, error) {
	var (
		msg     model.Message
		repoID  sql.NullInt64
		gitHash sql.NullString
	)

	if err := row.Scan(&msg.ID, &msg.Content, &repoID, &gitHash, &msg.Timestamp); err != nil {
		return nil, err
	}

	if repoID.Valid {
		msg.RepositoryID = &repoID.Int64
	}

	if gitHash.Valid {
		msg.GitHash = &gitHash.String
	}

	return &msg, nil
}

func scanRepository(row scanner) (*model.Repository, error) {
	var repo model.Repository
	if err := row.Scan(&repo.ID, &repo.Owner, &repo.Name, &repo.CreatedAt); err != nil {
		return nil, err
	}

	return &repo, nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: *v, Valid: true}
}
