package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/inovacc/gitmsg/internal/model"
	"go.etcd.io/bbolt"
)

const (
	boltBucketMessages = "messages"     // key: id (uint64 BE) -> Message JSON
	boltBucketRepos    = "repositories" // key: id (uint64 BE) -> Repository JSON
	boltBucketRepoKeys = "repo_keys"    // key: "owner/name" -> id (uint64 BE)
)

// Bolt implements Store on top of a bbolt file.
type Bolt struct {
	storage *bbolt.DB
	now     func() time.Time
}

// NewBolt creates (or opens) a Bolt database at the specified path.
func NewBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{boltBucketMessages, boltBucketRepos, boltBucketRepoKeys} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{
		storage: instance,
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

func (b *Bolt) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return model.NewStoreError("ping", err)
	}

	return model.NewStoreError("ping", b.storage.View(func(tx *bbolt.Tx) error {
		return nil
	}))
}

func (b *Bolt) AddMessage(ctx context.Context, content string, repositoryID *int64) (*model.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewStoreError("add message", err)
	}

	var msg model.Message

	err := b.storage.Update(func(tx *bbolt.Tx) error {
		if repositoryID != nil {
			if tx.Bucket([]byte(boltBucketRepos)).Get(itob(*repositoryID)) == nil {
				return fmt.Errorf("repository %d: foreign key constraint failed", *repositoryID)
			}
		}

		bucket := tx.Bucket([]byte(boltBucketMessages))

		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}

		msg = model.Message{
			ID:           int64(seq),
			Content:      content,
			RepositoryID: repositoryID,
			Timestamp:    b.now(),
		}

		return putJSON(bucket, msg.ID, &msg)
	})
	if err != nil {
		return nil, model.NewStoreError("add message", err)
	}

	return &msg, nil
}

func (b *Bolt) GetMessage(ctx context.Context, id int64) (*model.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewStoreError("get message", err)
	}

	var msg model.Message

	err := b.storage.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(boltBucketMessages)).Get(itob(id))
		if data == nil {
			return fmt.Errorf("message %d: %w", id, model.ErrNotFound)
		}

		return json.Unmarshal(data, &msg)
	})
	if err != nil {
		return nil, model.NewStoreError("get message", err)
	}

	return &msg, nil
}

func (b *Bolt) GetMessages(ctx context.Context) ([]model.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewStoreError("list messages", err)
	}

	messages := []model.Message{}

	err := b.storage.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketMessages)).ForEach(func(_, v []byte) error {
			var msg model.Message
			if err := json.Unmarshal(v, &msg); err != nil {
				return err
			}

			messages = append(messages, msg)

			return nil
		})
	})
	if err != nil {
		return nil, model.NewStoreError("list messages", err)
	}

	sort.Slice(messages, func(i, j int) bool {
		if messages[i].Timestamp.Equal(messages[j].Timestamp) {
			return messages[i].ID > messages[j].ID
		}
		return messages[i].Timestamp.After(messages[j].Timestamp)
	})

	return messages, nil
}

func (b *Bolt) UpdateMessageVersion(ctx context.Context, id int64, version string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, model.NewStoreError("update message version", err)
	}

	updated := false

	err := b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketMessages))

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		var msg model.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			return err
		}

		if msg.GitHash != nil {
			return nil
		}

		msg.GitHash = &version
		updated = true

		return putJSON(bucket, msg.ID, &msg)
	})
	if err != nil {
		return false, model.NewStoreError("update message version", err)
	}

	return updated, nil
}

func (b *Bolt) AddRepository(ctx context.Context, owner, name string) (*model.Repository, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewStoreError("add repository", err)
	}

	var repo model.Repository

	err := b.storage.Update(func(tx *bbolt.Tx) error {
		repos := tx.Bucket([]byte(boltBucketRepos))
		keys := tx.Bucket([]byte(boltBucketRepoKeys))
		key := []byte(owner + "/" + name)

		if existing := keys.Get(key); existing != nil {
			return json.Unmarshal(repos.Get(existing), &repo)
		}

		seq, err := repos.NextSequence()
		if err != nil {
			return err
		}

		repo = model.Repository{
			ID:        int64(seq),
			Owner:     owner,
			Name:      name,
			CreatedAt: b.now(),
		}

		if err := keys.Put(key, itob(repo.ID)); err != nil {
			return err
		}

		return putJSON(repos, repo.ID, &repo)
	})
	if err != nil {
		return nil, model.NewStoreError("add repository", err)
	}

	return &repo, nil
}

func (b *Bolt) GetRepository(ctx context.Context, id int64) (*model.Repository, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewStoreError("get repository", err)
	}

	var repo model.Repository

	err := b.storage.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(boltBucketRepos)).Get(itob(id))
		if data == nil {
			return fmt.Errorf("repository %d: %w", id, model.ErrNotFound)
		}

		return json.Unmarshal(data, &repo)
	})
	if err != nil {
		return nil, model.NewStoreError("get repository", err)
	}

	return &repo, nil
}

func (b *Bolt) GetRepositories(ctx context.Context) ([]model.Repository, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewStoreError("list repositories", err)
	}

	repos := []model.Repository{}

	err := b.storage.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketRepos)).ForEach(func(_, v []byte) error {
			var repo model.Repository
			if err := json.Unmarshal(v, &repo); err != nil {
				return err
			}

			repos = append(repos, repo)

			return nil
		})
	})
	if err != nil {
		return nil, model.NewStoreError("list repositories", err)
	}

	sort.Slice(repos, func(i, j int) bool {
		if repos[i].CreatedAt.Equal(repos[j].CreatedAt) {
			return repos[i].ID > repos[j].ID
		}
		return repos[i].CreatedAt.After(repos[j].CreatedAt)
	})

	return repos, nil
}

func itob(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))

	return b
}

func putJSON(bucket *bbolt.Bucket, id int64, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return bucket.Put(itob(id), data)
}
