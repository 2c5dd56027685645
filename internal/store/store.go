package store

import (
	"context"
	"fmt"

	"github.com/inovacc/gitmsg/internal/model"
	"github.com/inovacc/gitmsg/internal/store/sqlite"
)

// Supported storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

// Store defines the persistence operations used by gitmsg.
type Store interface {
	Ping(ctx context.Context) error
	Close() error

	// Message operations
	AddMessage(ctx context.Context, content string, repositoryID *int64) (*model.Message, error)
	GetMessage(ctx context.Context, id int64) (*model.Message, error)
	GetMessages(ctx context.Context) ([]model.Message, error)
	UpdateMessageVersion(ctx context.Context, id int64, version string) (bool, error)

	// Repository operations
	AddRepository(ctx context.Context, owner, name string) (*model.Repository, error)
	GetRepository(ctx context.Context, id int64) (*model.Repository, error)
	GetRepositories(ctx context.Context) ([]model.Repository, error)
}

var (
	_ Store = (*sqlite.Store)(nil)
	_ Store = (*Bolt)(nil)
)

// Open opens the store for the given driver. The caller owns the handle and must Close it.
func Open(ctx context.Context, driver, path string) (Store, error) {
	switch driver {
	case DriverSQLite, "":
		return sqlite.New(ctx, path)
	case DriverBolt:
		return NewBolt(path)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
