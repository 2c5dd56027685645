// Package github translates gitmsg intents (create a repository, read a
// file, write a file) into authenticated GitHub REST calls.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/inovacc/gitmsg/internal/model"
	"golang.org/x/oauth2"
)

// DefaultTimeout bounds every remote call when no timeout is configured.
const DefaultTimeout = 15 * time.Second

// Client is a stateless wrapper around the GitHub API.
type Client struct {
	api       *gh.Client
	timeout   time.Duration
	committer *gh.CommitAuthor
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*Client) error

// WithTimeout bounds each remote call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d > 0 {
			c.timeout = d
		}
		return nil
	}
}

// WithEnterpriseURL points the client at a GitHub Enterprise Server.
func WithEnterpriseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return nil
		}

		api, err := c.api.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return fmt.Errorf("enterprise url: %w", err)
		}

		c.api = api

		return nil
	}
}

// WithBaseURL sets the API root verbatim, without the enterprise /api/v3 suffix.
func WithBaseURL(rawURL string) Option {
	return func(c *Client) error {
		if !strings.HasSuffix(rawURL, "/") {
			rawURL += "/"
		}

		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("base url: %w", err)
		}

		c.api.BaseURL = u

		return nil
	}
}

// WithCommitter sets the author and committer used for file writes.
func WithCommitter(name, email string) Option {
	return func(c *Client) error {
		if name != "" && email != "" {
			c.committer = &gh.CommitAuthor{Name: gh.Ptr(name), Email: gh.Ptr(email)}
		}
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// New creates a GitHub client authenticated with token. An empty token
// yields an anonymous client.
func New(ctx context.Context, token string, opts ...Option) (*Client, error) {
	httpClient := http.DefaultClient
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	c := &Client{
		api:     gh.NewClient(httpClient),
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Authenticate verifies the token and returns the login it belongs to.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	user, _, err := c.api.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("authenticate: %w", err)
	}

	return user.GetLogin(), nil
}

// GetRepository returns repository metadata, or nil when it does not exist.
func (c *Client) GetRepository(ctx context.Context, owner, name string) (*model.RemoteRepository, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	repo, resp, err := c.api.Repositories.Get(ctx, owner, name)
	if err != nil {
		if isNotFound(resp) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repository %s/%s: %w", owner, name, err)
	}

	return toRemoteRepository(repo), nil
}

// CreateRepository creates a repository for the authenticated user,
// initialized with a README so the default branch exists.
func (c *Client) CreateRepository(ctx context.Context, name string, private bool) (*model.RemoteRepository, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	repo, _, err := c.api.Repositories.Create(ctx, "", &gh.Repository{
		Name:     gh.Ptr(name),
		Private:  gh.Ptr(private),
		AutoInit: gh.Ptr(true),
	})
	if err != nil {
		return nil, remoteError("create repository", err)
	}

	c.logger.Info("created repository", "repo", repo.GetFullName(), "private", private)

	return toRemoteRepository(repo), nil
}

// GetFile returns file metadata and decoded content, or nil when the file
// does not exist.
func (c *Client) GetFile(ctx context.Context, owner, repo, path string) (*model.FileMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	file, _, resp, err := c.api.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		if isNotFound(resp) {
			return nil, nil
		}
		return nil, fmt.Errorf("get file %s: %w", path, err)
	}

	if file == nil {
		return nil, fmt.Errorf("get file %s: path is a directory", path)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decode file %s: %w", path, err)
	}

	return &model.FileMetadata{
		Path:    file.GetPath(),
		SHA:     file.GetSHA(),
		Size:    file.GetSize(),
		Content: content,
	}, nil
}

// CreateOrUpdateFile writes content to path. An existing file is
// overwritten using its current SHA; an absent one is created.
func (c *Client) CreateOrUpdateFile(ctx context.Context, owner, repo, path, content, commitMessage string) (*model.WriteResult, error) {
	current, err := c.GetFile(ctx, owner, repo, path)
	if err != nil {
		return nil, remoteError("read file", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts := &gh.RepositoryContentFileOptions{
		Message:   gh.Ptr(commitMessage),
		Content:   []byte(content),
		Author:    c.committer,
		Committer: c.committer,
	}

	var (
		res  *gh.RepositoryContentResponse
		resp *gh.Response
		op   string
	)

	if current != nil {
		op = "update file"
		opts.SHA = gh.Ptr(current.SHA)
		res, resp, err = c.api.Repositories.UpdateFile(ctx, owner, repo, path, opts)
	} else {
		op = "create file"
		res, resp, err = c.api.Repositories.CreateFile(ctx, owner, repo, path, opts)
	}

	if err != nil {
		return nil, remoteError(op, err)
	}

	// A write is only usable with the new blob SHA
	if res == nil || res.Content == nil || res.Content.GetSHA() == "" {
		c.logger.Warn("write response missing content sha", "repo", owner+"/"+repo, "path", path)

		status := 0
		if resp != nil {
			status = resp.StatusCode
		}

		return nil, &model.RemoteWriteError{Op: op, Status: status, Body: "response missing content sha"}
	}

	result := &model.WriteResult{
		SHA:       res.Content.GetSHA(),
		CommitSHA: res.Commit.GetSHA(),
		Path:      path,
		Created:   current == nil,
	}

	if p := res.Content.GetPath(); p != "" {
		result.Path = p
	}

	c.logger.Debug(op, "repo", owner+"/"+repo, "path", path, "sha", result.SHA)

	return result, nil
}

func isNotFound(resp *gh.Response) bool {
	return resp != nil && resp.StatusCode == http.StatusNotFound
}

// remoteError converts a GitHub API error into a RemoteWriteError when a
// response status is available.
func remoteError(op string, err error) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return &model.RemoteWriteError{Op: op, Status: rateErr.Response.StatusCode, Body: rateErr.Message}
	}

	var apiErr *gh.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		return &model.RemoteWriteError{Op: op, Status: apiErr.Response.StatusCode, Body: errorBody(apiErr)}
	}

	return fmt.Errorf("%s: %w", op, err)
}

// errorBody re-encodes the API error payload (message, errors,
// documentation_url) as the response body.
func errorBody(apiErr *gh.ErrorResponse) string {
	body, err := json.Marshal(apiErr)
	if err != nil {
		return apiErr.Message
	}

	return string(body)
}

func toRemoteRepository(repo *gh.Repository) *model.RemoteRepository {
	return &model.RemoteRepository{
		ID:            repo.GetID(),
		Owner:         repo.GetOwner().GetLogin(),
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		Private:       repo.GetPrivate(),
		DefaultBranch: repo.GetDefaultBranch(),
		HTMLURL:       repo.GetHTMLURL(),
	}
}
