package model

// RemoteRepository is the subset of GitHub repository metadata gitmsg uses.
type RemoteRepository struct {
	ID            int64  `json:"id"`
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Private       bool   `json:"private"`
	DefaultBranch string `json:"default_branch"`
	HTMLURL       string `json:"html_url"`
}

// FileMetadata describes a file stored in a GitHub repository.
type FileMetadata struct {
	Path string `json:"path"`

	// SHA is the blob SHA required to update the file in place
	SHA string `json:"sha"`

	Size int `json:"size"`

	// Content is the decoded file body
	Content string `json:"content,omitempty"`
}

// WriteResult is the outcome of a successful file create or update.
type WriteResult struct {
	// SHA is the blob SHA of the written file (the message version identifier)
	SHA string `json:"sha"`

	// CommitSHA is the SHA of the commit that carried the write
	CommitSHA string `json:"commit_sha"`

	Path    string `json:"path"`
	Created bool   `json:"created"`
}
