// Package config handles XDG data directory paths and runtime settings.
package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// AppName is the application directory name.
	AppName = "todostate"

	// FavoritesDBFile is the favorites database filename.
	FavoritesDBFile = "favorites.db"

	// DefaultAPIURL is the record service base URL used when none is configured.
	DefaultAPIURL = "https://jsonplaceholder.typicode.com"

	// APIURLEnv overrides the record service base URL.
	APIURLEnv = "TODOSTATE_API_URL"

	// DefaultErrorTTL is how long a login error stays visible before it clears itself.
	DefaultErrorTTL = 5000 * time.Millisecond
)

// Config holds data paths and settings.
type Config struct {
	// Dir is the data directory path.
	Dir string

	// APIURL is the record service base URL.
	APIURL string

	// ErrorTTL is the auto-expiry duration for login errors.
	ErrorTTL time.Duration
}

// New creates a Config with the default or specified data directory.
// If dataDir is empty, uses XDG_DATA_HOME/todostate or $HOME/.local/share/todostate.
func New(dataDir string) *Config {
	dir := dataDir
	if dir == "" {
		dir = DefaultDataDir()
	}
	return &Config{
		Dir:      dir,
		APIURL:   apiURL(),
		ErrorTTL: DefaultErrorTTL,
	}
}

// DefaultDataDir returns the default data directory.
// Uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// FavoritesDBPath returns the path to the favorites database file.
func (c *Config) FavoritesDBPath() string {
	return filepath.Join(c.Dir, FavoritesDBFile)
}

// EnsureDir creates the data directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

func apiURL() string {
	if url := os.Getenv(APIURLEnv); url != "" {
		return url
	}
	return DefaultAPIURL
}
