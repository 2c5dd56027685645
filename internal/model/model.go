package model

import (
	"fmt"
	"time"
)

// Message is a stored chat message.
type Message struct {
	// ID is assigned by the store on creation
	ID int64 `json:"id"`

	// Content is the sanitized message text
	Content string `json:"content"`

	// RepositoryID references the repository the message is mirrored to
	RepositoryID *int64 `json:"repository_id"`

	// GitHash is the blob SHA reported by GitHub after a successful write
	GitHash *string `json:"git_hash"`

	// Timestamp is assigned by the store on creation
	Timestamp time.Time `json:"timestamp"`
}

// Synced reports whether the message already carries a version identifier.
func (m *Message) Synced() bool {
	return m.GitHash != nil && *m.GitHash != ""
}

// FilePath returns the repository path the message is mirrored to.
func (m *Message) FilePath() string {
	return fmt.Sprintf("messages/%d.json", m.ID)
}

// CommitMessage returns the commit message used when mirroring.
func (m *Message) CommitMessage() string {
	return fmt.Sprintf("Update message %d", m.ID)
}

// Repository is a GitHub repository tracked locally.
type Repository struct {
	// ID is assigned by the store
	ID int64 `json:"id"`

	// Owner is the user or organization login
	Owner string `json:"owner"`

	// Name is the repository name
	Name string `json:"name"`

	// CreatedAt is when the repository was registered
	CreatedAt time.Time `json:"created_at"`
}

// FullName returns "owner/name".
func (r *Repository) FullName() string {
	return r.Owner + "/" + r.Name
}
