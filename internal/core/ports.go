//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=../mocks/mock_ports.go -package=mocks

package core

import (
	"context"

	"github.com/inovacc/gitmsg/internal/model"
)

// MessageStore is the persistence contract the Syncer depends on.
type MessageStore interface {
	AddMessage(ctx context.Context, content string, repositoryID *int64) (*model.Message, error)
	GetMessage(ctx context.Context, id int64) (*model.Message, error)
	GetMessages(ctx context.Context) ([]model.Message, error)
	UpdateMessageVersion(ctx context.Context, id int64, version string) (bool, error)
	AddRepository(ctx context.Context, owner, name string) (*model.Repository, error)
	GetRepository(ctx context.Context, id int64) (*model.Repository, error)
	GetRepositories(ctx context.Context) ([]model.Repository, error)
}

// RemoteClient is the hosting-service contract the Syncer depends on.
type RemoteClient interface {
	GetRepository(ctx context.Context, owner, name string) (*model.RemoteRepository, error)
	CreateRepository(ctx context.Context, name string, private bool) (*model.RemoteRepository, error)
	CreateOrUpdateFile(ctx context.Context, owner, repo, path, content, commitMessage string) (*model.WriteResult, error)
}

// SecretScanner reports whether content must not be published.
type SecretScanner interface {
	ContainsSecret(content string) bool
}
