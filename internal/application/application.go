package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "gitmsg"

	// DBFileName is the default database file inside the application directory
	DBFileName = "messages.db"

	// PIDFileName records the PID of a running server
	PIDFileName = "gitmsg.pid"

	// EnvFileName holds credentials saved by `gitmsg auth login`
	EnvFileName = "gitmsg.env"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the gitmsg configuration directory path.
// Linux: ~/.config/gitmsg (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\gitmsg (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, errDir
}

// DefaultDBPath returns the database path used when none is configured.
func DefaultDBPath() string {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return DBFileName
	}

	return filepath.Join(dir, DBFileName)
}

// PIDFilePath returns where a running server records its PID.
func PIDFilePath() (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, PIDFileName), nil
}

// EnvFilePath returns the path of the saved credentials file.
func EnvFilePath() (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, EnvFileName), nil
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		// Windows: use AppData\Local (via UserCacheDir)
		baseDir, err = os.UserCacheDir()
	default:
		// Linux/others: use ~/.config (via UserConfigDir)
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
		return
	}

	appDir = filepath.Join(baseDir, AppName)
}
