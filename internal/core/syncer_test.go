package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/inovacc/gitmsg/internal/mocks"
	"github.com/inovacc/gitmsg/internal/model"
	"github.com/inovacc/gitmsg/internal/store/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func ptr[T any](v T) *T { return &v }

func newSQLiteStore(t *testing.T) *sqlite.Store {
	t.Helper()

	db, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "core.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestSyncer_SyncMessage(t *testing.T) {
	ctx := context.Background()
	repo := &model.Repository{ID: 3, Owner: "alice", Name: "proj"}
	stamp := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("should skip without remote call when message has no repository", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockMessageStore(ctrl)
		remote := mocks.NewMockRemoteClient(ctrl)

		res := NewSyncer(store, remote, WithLogger(quietLogger)).
			SyncMessage(ctx, model.Message{ID: 1, Content: "ping"})

		req.Equal(model.SyncSkipped, res.Outcome)
		req.Equal(model.SkipNoRepository, res.Reason)
		req.Nil(res.VersionPtr())
	})

	t.Run("should skip when repository reference is dangling", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockMessageStore(ctrl)
		remote := mocks.NewMockRemoteClient(ctrl)

		store.EXPECT().
			GetRepository(gomock.Any(), int64(9)).
			Return(nil, model.NewStoreError("get repository", fmt.Errorf("repository 9: %w", model.ErrNotFound)))

		res := NewSyncer(store, remote, WithLogger(quietLogger)).
			SyncMessage(ctx, model.Message{ID: 1, Content: "ping", RepositoryID: ptr(int64(9))})

		req.Equal(model.SyncSkipped, res.Outcome)
		req.Equal(model.SkipDanglingReference, res.Reason)
		req.NoError(res.Err)
	})

	t.Run("should write message file and return version", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockMessageStore(ctrl)
		remote := mocks.NewMockRemoteClient(ctrl)

		store.EXPECT().GetRepository(gomock.Any(), int64(3)).Return(repo, nil)
		remote.EXPECT().
			CreateOrUpdateFile(gomock.Any(), "alice", "proj", "messages/5.json", gomock.Any(), "Update message 5").
			DoAndReturn(func(_ context.Context, _, _, _, content, _ string) (*model.WriteResult, error) {
				var doc map[string]any
				req.NoError(json.Unmarshal([]byte(content), &doc))
				req.Equal(float64(5), doc["id"])
				req.Equal("ping", doc["content"])
				req.Equal(stamp.Format(time.RFC3339), doc["timestamp"])
				req.Contains(content, "\n  \"content\"")
				return &model.WriteResult{SHA: "abc123"}, nil
			})

		res := NewSyncer(store, remote, WithLogger(quietLogger)).
			SyncMessage(ctx, model.Message{ID: 5, Content: "ping", RepositoryID: ptr(int64(3)), Timestamp: stamp})

		req.Equal(model.SyncSynced, res.Outcome)
		req.Equal("abc123", res.Version)
	})

	t.Run("should report failure without escalating remote errors", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockMessageStore(ctrl)
		remote := mocks.NewMockRemoteClient(ctrl)
		remoteErr := &model.RemoteWriteError{Op: "create file", Status: 403, Body: "forbidden"}

		store.EXPECT().GetRepository(gomock.Any(), int64(3)).Return(repo, nil)
		remote.EXPECT().
			CreateOrUpdateFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, remoteErr)

		res := NewSyncer(store, remote, WithLogger(quietLogger)).
			SyncMessage(ctx, model.Message{ID: 5, Content: "ping", RepositoryID: ptr(int64(3))})

		req.Equal(model.SyncFailed, res.Outcome)
		req.Nil(res.VersionPtr())

		var writeErr *model.RemoteWriteError
		req.True(errors.As(res.Err, &writeErr))
		req.Equal(403, writeErr.Status)
	})

	t.Run("should not publish content flagged as secret", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockMessageStore(ctrl)
		remote := mocks.NewMockRemoteClient(ctrl)
		scanner := mocks.NewMockSecretScanner(ctrl)

		store.EXPECT().GetRepository(gomock.Any(), int64(3)).Return(repo, nil)
		scanner.EXPECT().ContainsSecret("AKIA...").Return(true)

		res := NewSyncer(store, remote, WithLogger(quietLogger), WithSecretScanner(scanner)).
			SyncMessage(ctx, model.Message{ID: 5, Content: "AKIA...", RepositoryID: ptr(int64(3))})

		req.Equal(model.SyncSkipped, res.Outcome)
		req.Equal(model.SkipSecretDetected, res.Reason)
	})
}

func TestSyncer_SyncAllPending(t *testing.T) {
	ctx := context.Background()

	t.Run("should sync pending messages and record versions", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockMessageStore(ctrl)
		remote := mocks.NewMockRemoteClient(ctrl)

		repo := &model.Repository{ID: 1, Owner: "alice", Name: "proj"}
		synced := model.Message{ID: 1, Content: "old", RepositoryID: ptr(int64(1)), GitHash: ptr("zzz")}
		orphan := model.Message{ID: 2, Content: "ping"}
		pending := model.Message{ID: 3, Content: "pong", RepositoryID: ptr(int64(1))}

		store.EXPECT().GetMessages(gomock.Any()).Return([]model.Message{pending, orphan, synced}, nil)
		store.EXPECT().GetMessage(gomock.Any(), int64(3)).Return(&pending, nil)
		store.EXPECT().GetMessage(gomock.Any(), int64(2)).Return(&orphan, nil)
		store.EXPECT().GetRepository(gomock.Any(), int64(1)).Return(repo, nil)
		remote.EXPECT().
			CreateOrUpdateFile(gomock.Any(), "alice", "proj", "messages/3.json", gomock.Any(), "Update message 3").
			Return(&model.WriteResult{SHA: "abc123"}, nil)
		store.EXPECT().UpdateMessageVersion(gomock.Any(), int64(3), "abc123").Return(true, nil)

		report, err := NewSyncer(store, remote, WithLogger(quietLogger)).SyncAllPending(ctx)

		req.NoError(err)
		req.True(report.Success)
		req.Equal(2, report.Pending)
		req.Equal(1, report.Synced)
		req.Equal(1, report.Skipped)
		req.Zero(report.Failed)
	})

	t.Run("should continue past failed messages", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockMessageStore(ctrl)
		remote := mocks.NewMockRemoteClient(ctrl)

		repo := &model.Repository{ID: 1, Owner: "alice", Name: "proj"}
		first := model.Message{ID: 2, Content: "a", RepositoryID: ptr(int64(1))}
		second := model.Message{ID: 1, Content: "b", RepositoryID: ptr(int64(1))}

		store.EXPECT().GetMessages(gomock.Any()).Return([]model.Message{first, second}, nil)
		store.EXPECT().GetMessage(gomock.Any(), int64(2)).Return(&first, nil)
		store.EXPECT().GetMessage(gomock.Any(), int64(1)).Return(&second, nil)
		store.EXPECT().GetRepository(gomock.Any(), int64(1)).Return(repo, nil).Times(2)
		remote.EXPECT().
			CreateOrUpdateFile(gomock.Any(), gomock.Any(), gomock.Any(), "messages/2.json", gomock.Any(), gomock.Any()).
			Return(nil, context.DeadlineExceeded)
		remote.EXPECT().
			CreateOrUpdateFile(gomock.Any(), gomock.Any(), gomock.Any(), "messages/1.json", gomock.Any(), gomock.Any()).
			Return(&model.WriteResult{SHA: "def456"}, nil)
		store.EXPECT().UpdateMessageVersion(gomock.Any(), int64(1), "def456").Return(true, nil)

		report, err := NewSyncer(store, remote, WithLogger(quietLogger)).SyncAllPending(ctx)

		req.NoError(err)
		req.True(report.Success)
		req.Equal(1, report.Synced)
		req.Equal(1, report.Failed)
	})

	t.Run("should abort when the store is unavailable", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockMessageStore(ctrl)
		remote := mocks.NewMockRemoteClient(ctrl)

		store.EXPECT().GetMessages(gomock.Any()).Return(nil, model.NewStoreError("list messages", errors.New("database is locked")))

		report, err := NewSyncer(store, remote, WithLogger(quietLogger)).SyncAllPending(ctx)

		req.Error(err)
		req.False(report.Success)

		var storeErr *model.StoreError
		req.True(errors.As(err, &storeErr))
	})

	t.Run("should abort when recording a version fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockMessageStore(ctrl)
		remote := mocks.NewMockRemoteClient(ctrl)

		repo := &model.Repository{ID: 1, Owner: "alice", Name: "proj"}
		msg := model.Message{ID: 1, Content: "a", RepositoryID: ptr(int64(1))}

		store.EXPECT().GetMessages(gomock.Any()).Return([]model.Message{msg}, nil)
		store.EXPECT().GetMessage(gomock.Any(), int64(1)).Return(&msg, nil)
		store.EXPECT().GetRepository(gomock.Any(), int64(1)).Return(repo, nil)
		remote.EXPECT().
			CreateOrUpdateFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&model.WriteResult{SHA: "abc"}, nil)
		store.EXPECT().UpdateMessageVersion(gomock.Any(), int64(1), "abc").
			Return(false, model.NewStoreError("update message version", errors.New("disk I/O error")))

		report, err := NewSyncer(store, remote, WithLogger(quietLogger)).SyncAllPending(ctx)

		req.Error(err)
		req.False(report.Success)
	})
}

func TestSyncer_SyncAllPending_Idempotent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	db := newSQLiteStore(t)
	remote := mocks.NewMockRemoteClient(ctrl)

	repo, err := db.AddRepository(ctx, "alice", "proj")
	req.NoError(err)

	noRepo, err := db.AddMessage(ctx, "ping", nil)
	req.NoError(err)
	withRepo, err := db.AddMessage(ctx, "ping", &repo.ID)
	req.NoError(err)

	remote.EXPECT().
		CreateOrUpdateFile(gomock.Any(), "alice", "proj", withRepo.FilePath(), gomock.Any(), withRepo.CommitMessage()).
		Return(&model.WriteResult{SHA: "abc123"}, nil).
		Times(1)

	syncer := NewSyncer(db, remote, WithLogger(quietLogger))

	first, err := syncer.SyncAllPending(ctx)
	req.NoError(err)
	req.True(first.Success)
	req.Equal(1, first.Synced)

	second, err := syncer.SyncAllPending(ctx)
	req.NoError(err)
	req.True(second.Success)
	req.Zero(second.Synced)

	got, err := db.GetMessage(ctx, withRepo.ID)
	req.NoError(err)
	req.NotNil(got.GitHash)
	req.Equal("abc123", *got.GitHash)

	got, err = db.GetMessage(ctx, noRepo.ID)
	req.NoError(err)
	req.Nil(got.GitHash)
}

func TestSyncer_SyncAllPending_EmptyVersion(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	db := newSQLiteStore(t)
	remote := mocks.NewMockRemoteClient(ctrl)

	repo, err := db.AddRepository(ctx, "alice", "proj")
	req.NoError(err)
	msg, err := db.AddMessage(ctx, "ping", &repo.ID)
	req.NoError(err)

	remote.EXPECT().
		CreateOrUpdateFile(gomock.Any(), "alice", "proj", msg.FilePath(), gomock.Any(), gomock.Any()).
		Return(&model.WriteResult{SHA: ""}, nil).
		Times(1)

	syncer := NewSyncer(db, remote, WithLogger(quietLogger))

	report, err := syncer.SyncAllPending(ctx)
	req.NoError(err)
	req.True(report.Success)
	req.Zero(report.Synced)
	req.Equal(1, report.Failed)

	got, err := db.GetMessage(ctx, msg.ID)
	req.NoError(err)
	req.Nil(got.GitHash)

	res := syncer.SyncMessage(ctx, *got)
	req.Equal(model.SyncFailed, res.Outcome)
	req.Empty(res.Version)
	req.Nil(res.VersionPtr())
}

func TestSyncer_SyncAllPending_Concurrent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	db := newSQLiteStore(t)
	remote := mocks.NewMockRemoteClient(ctrl)

	repo, err := db.AddRepository(ctx, "alice", "proj")
	req.NoError(err)

	const total = 12
	for i := 0; i < total; i++ {
		_, err := db.AddMessage(ctx, fmt.Sprintf("message %d", i), &repo.ID)
		req.NoError(err)
	}

	var writes atomic.Int32
	remote.EXPECT().
		CreateOrUpdateFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, path, _, _ string) (*model.WriteResult, error) {
			writes.Add(1)
			return &model.WriteResult{SHA: "sha-" + path}, nil
		}).
		AnyTimes()

	syncer := NewSyncer(db, remote, WithLogger(quietLogger), WithConcurrency(4))

	// Two overlapping sweeps must not write any message twice
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := syncer.SyncAllPending(ctx)
			errs <- err
		}()
	}
	req.NoError(<-errs)
	req.NoError(<-errs)

	req.Equal(int32(total), writes.Load())

	messages, err := db.GetMessages(ctx)
	req.NoError(err)
	for _, m := range messages {
		req.NotNil(m.GitHash)
		req.Equal("sha-"+m.FilePath(), *m.GitHash)
	}

	req.Zero(syncer.locks.size())
}

func TestSyncer_RegisterRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("should reject empty input before any call", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		syncer := NewSyncer(mocks.NewMockMessageStore(ctrl), mocks.NewMockRemoteClient(ctrl), WithLogger(quietLogger))

		_, err := syncer.RegisterRepository(ctx, "  ", "proj")

		var validationErr *model.ValidationError
		req.True(errors.As(err, &validationErr))
		req.Equal("owner", validationErr.Field)

		_, err = syncer.RegisterRepository(ctx, "alice", "")
		req.True(errors.As(err, &validationErr))
		req.Equal("name", validationErr.Field)
	})

	t.Run("should fail with NotFoundError and persist nothing", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		db := newSQLiteStore(t)
		remote := mocks.NewMockRemoteClient(ctrl)

		remote.EXPECT().GetRepository(gomock.Any(), "ghost", "none").Return(nil, nil)

		_, err := NewSyncer(db, remote, WithLogger(quietLogger)).RegisterRepository(ctx, "ghost", "none")

		var notFound *model.NotFoundError
		req.True(errors.As(err, &notFound))
		req.Equal("ghost/none", notFound.Key)

		repos, err := db.GetRepositories(ctx)
		req.NoError(err)
		req.Empty(repos)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		db := newSQLiteStore(t)
		remote := mocks.NewMockRemoteClient(ctrl)

		remote.EXPECT().
			GetRepository(gomock.Any(), "alice", "proj").
			Return(&model.RemoteRepository{Owner: "alice", Name: "proj"}, nil).
			Times(2)

		syncer := NewSyncer(db, remote, WithLogger(quietLogger))

		first, err := syncer.RegisterRepository(ctx, "alice", "proj")
		req.NoError(err)
		second, err := syncer.RegisterRepository(ctx, "alice", "proj")
		req.NoError(err)
		req.Equal(first.ID, second.ID)

		repos, err := db.GetRepositories(ctx)
		req.NoError(err)
		req.Len(repos, 1)
	})

	t.Run("should surface remote lookup errors", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockMessageStore(ctrl)
		remote := mocks.NewMockRemoteClient(ctrl)

		remote.EXPECT().GetRepository(gomock.Any(), "alice", "proj").Return(nil, errors.New("connection refused"))

		_, err := NewSyncer(store, remote, WithLogger(quietLogger)).RegisterRepository(ctx, "alice", "proj")
		req.ErrorContains(err, "connection refused")
	})
}

func TestSyncer_CreateRepository(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	db := newSQLiteStore(t)
	remote := mocks.NewMockRemoteClient(ctrl)

	remote.EXPECT().
		CreateRepository(gomock.Any(), "notes", true).
		Return(&model.RemoteRepository{Owner: "alice", Name: "notes", Private: true}, nil)

	repo, err := NewSyncer(db, remote, WithLogger(quietLogger)).CreateRepository(ctx, " notes ", true)
	req.NoError(err)
	req.Equal("alice/notes", repo.FullName())

	_, err = NewSyncer(db, remote, WithLogger(quietLogger)).CreateRepository(ctx, "", false)
	var validationErr *model.ValidationError
	req.True(errors.As(err, &validationErr))
}

func TestSyncer_CreateMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("should round trip plain content", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		db := newSQLiteStore(t)
		syncer := NewSyncer(db, mocks.NewMockRemoteClient(ctrl), WithLogger(quietLogger))

		created, err := syncer.CreateMessage(ctx, "hello", nil)
		req.NoError(err)
		req.Nil(created.GitHash)

		messages, err := syncer.ListMessages(ctx)
		req.NoError(err)
		req.Len(messages, 1)
		req.Equal("hello", messages[0].Content)
		req.Nil(messages[0].GitHash)
	})

	t.Run("should trim and escape content", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		db := newSQLiteStore(t)
		syncer := NewSyncer(db, mocks.NewMockRemoteClient(ctrl), WithLogger(quietLogger))

		created, err := syncer.CreateMessage(ctx, "  <b>hi</b> & bye \n", nil)
		req.NoError(err)
		req.Equal("&lt;b&gt;hi&lt;/b&gt; &amp; bye", created.Content)
	})

	t.Run("should reject blank content", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		syncer := NewSyncer(mocks.NewMockMessageStore(ctrl), mocks.NewMockRemoteClient(ctrl), WithLogger(quietLogger))

		_, err := syncer.CreateMessage(ctx, "   ", nil)

		var validationErr *model.ValidationError
		req.True(errors.As(err, &validationErr))
		req.Equal("content", validationErr.Field)
	})

	t.Run("should reject unknown repository", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		db := newSQLiteStore(t)
		syncer := NewSyncer(db, mocks.NewMockRemoteClient(ctrl), WithLogger(quietLogger))

		_, err := syncer.CreateMessage(ctx, "ping", ptr(int64(404)))

		var validationErr *model.ValidationError
		req.True(errors.As(err, &validationErr))
		req.Equal("repository_id", validationErr.Field)

		messages, err := db.GetMessages(ctx)
		req.NoError(err)
		req.Empty(messages)
	})

	t.Run("should sync inline when repository is set", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		db := newSQLiteStore(t)
		remote := mocks.NewMockRemoteClient(ctrl)

		repo, err := db.AddRepository(ctx, "alice", "proj")
		req.NoError(err)

		remote.EXPECT().
			CreateOrUpdateFile(gomock.Any(), "alice", "proj", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&model.WriteResult{SHA: "abc123"}, nil)

		created, err := NewSyncer(db, remote, WithLogger(quietLogger)).CreateMessage(ctx, "ping", &repo.ID)
		req.NoError(err)
		req.NotNil(created.GitHash)
		req.Equal("abc123", *created.GitHash)

		stored, err := db.GetMessage(ctx, created.ID)
		req.NoError(err)
		req.Equal("abc123", *stored.GitHash)
	})

	t.Run("should keep message pending when inline sync fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		db := newSQLiteStore(t)
		remote := mocks.NewMockRemoteClient(ctrl)

		repo, err := db.AddRepository(ctx, "alice", "proj")
		req.NoError(err)

		remote.EXPECT().
			CreateOrUpdateFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &model.RemoteWriteError{Op: "create file", Status: 500, Body: "boom"})

		created, err := NewSyncer(db, remote, WithLogger(quietLogger)).CreateMessage(ctx, "ping", &repo.ID)
		req.NoError(err)
		req.Nil(created.GitHash)
	})

	t.Run("should return stored message when inline sync hits a store error", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockMessageStore(ctrl)
		remote := mocks.NewMockRemoteClient(ctrl)

		repoID := int64(7)
		stored := &model.Message{ID: 1, Content: "ping", RepositoryID: &repoID, Timestamp: time.Now()}

		store.EXPECT().GetRepository(gomock.Any(), repoID).
			Return(&model.Repository{ID: repoID, Owner: "alice", Name: "proj"}, nil)
		store.EXPECT().AddMessage(gomock.Any(), "ping", &repoID).Return(stored, nil).Times(1)
		store.EXPECT().GetMessage(gomock.Any(), int64(1)).
			Return(nil, model.NewStoreError("get message", errors.New("database is locked")))

		created, err := NewSyncer(store, remote, WithLogger(quietLogger)).CreateMessage(ctx, "ping", &repoID)
		req.NoError(err)
		req.Equal(int64(1), created.ID)
		req.Nil(created.GitHash)
	})
}

func TestKeyedMutex(t *testing.T) {
	req := require.New(t)
	k := newKeyedMutex()

	unlock := k.Lock(1)
	req.Equal(1, k.size())

	acquired := make(chan struct{})
	go func() {
		release := k.Lock(1)
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("second Lock acquired while first was held")
	case <-time.After(20 * time.Millisecond):
	}

	unlock()
	<-acquired

	req.Eventually(func() bool { return k.size() == 0 }, time.Second, 5*time.Millisecond)

	other := k.Lock(2)
	other()
	req.Zero(k.size())
}
