package github

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Identity is the git user identity used as commit author.
type Identity struct {
	Name  string `ini:"name"`
	Email string `ini:"email"`
}

// Valid reports whether both name and email are set.
func (i Identity) Valid() bool {
	return i.Name != "" && i.Email != ""
}

// LoadIdentity reads the [user] section of a git config file.
func LoadIdentity(path string) (Identity, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return Identity{}, err
	}

	var id Identity
	if err := cfg.Section("user").MapTo(&id); err != nil {
		return Identity{}, err
	}

	return id, nil
}

// DefaultIdentity reads ~/.gitconfig. A missing or unreadable file yields
// an empty identity.
func DefaultIdentity() Identity {
	home, err := os.UserHomeDir()
	if err != nil {
		return Identity{}
	}

	id, err := LoadIdentity(filepath.Join(home, ".gitconfig"))
	if err != nil {
		return Identity{}
	}

	return id
}
