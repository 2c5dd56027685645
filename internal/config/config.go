// Package config loads gitmsg settings from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/go-playground/validator/v10"
	"github.com/inovacc/gitmsg/internal/application"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable, e.g. GITMSG_PORT. Variables with an
// explicit name also fall back to the bare name (PORT, GITHUB_TOKEN); Host
// has no fallback.
const Prefix = "GITMSG"

// Token sources reported by Config.TokenSource.
const (
	TokenSourceEnvGitHub = "GITHUB_TOKEN"
	TokenSourceEnvGH     = "GH_TOKEN"
	TokenSourceGHCLI     = "gh-cli"
	TokenSourceNone      = "none"
)

type Config struct {
	// Host is read from GITMSG_HOST only; shells export a bare HOST
	Host string `default:"localhost" validate:"required"`
	Port int    `envconfig:"PORT" default:"8004" validate:"min=1,max=65535"`

	GitHubToken    string `envconfig:"GITHUB_TOKEN"`
	GitHubUsername string `envconfig:"GITHUB_USERNAME"`
	// GitHubAPIURL is a GitHub Enterprise Server base URL; empty means github.com
	GitHubAPIURL string `envconfig:"GITHUB_API_URL" validate:"omitempty,url"`

	StoreDriver string `envconfig:"STORE_DRIVER" default:"sqlite" validate:"oneof=sqlite bolt"`
	DBPath      string `envconfig:"DB_PATH"`

	// APIToken, when set, is required as a bearer credential on the HTTP API
	APIToken string `envconfig:"API_TOKEN"`

	RemoteTimeout   time.Duration `envconfig:"REMOTE_TIMEOUT" default:"15s" validate:"gt=0"`
	SyncConcurrency int           `envconfig:"SYNC_CONCURRENCY" default:"1" validate:"min=1,max=32"`
	ScanSecrets     bool          `envconfig:"SCAN_SECRETS" default:"true"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`

	TokenSource string `ignored:"true"`
}

var validate = validator.New()

// Load reads an optional .env file and the saved credentials file, then the
// environment. Variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	if path, err := application.EnvFilePath(); err == nil {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = application.DefaultDBPath()
	}

	cfg.resolveToken(auth.TokenForHost)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config: invalid %s: failed %q constraint", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GitHubHost is the host the token belongs to.
func (c *Config) GitHubHost() string {
	if c.GitHubAPIURL == "" {
		return "github.com"
	}

	u, err := url.Parse(c.GitHubAPIURL)
	if err != nil || u.Host == "" {
		return "github.com"
	}

	return u.Host
}

// resolveToken fills the token from GH_TOKEN or the gh CLI when GITHUB_TOKEN is unset.
func (c *Config) resolveToken(ghCLI func(host string) (string, string)) {
	if c.GitHubToken != "" {
		c.TokenSource = TokenSourceEnvGitHub
		return
	}

	if token := os.Getenv("GH_TOKEN"); token != "" {
		c.GitHubToken = token
		c.TokenSource = TokenSourceEnvGH
		return
	}

	if ghCLI != nil {
		if token, _ := ghCLI(c.GitHubHost()); token != "" {
			c.GitHubToken = token
			c.TokenSource = TokenSourceGHCLI
			return
		}
	}

	c.TokenSource = TokenSourceNone
}
