package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DataDir returns the path to the tutorgate data directory.
// - Windows: %APPDATA%\tutorgate
// - Other OS: ~/.tutorgate
func DataDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "tutorgate")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".tutorgate"
	}
	return filepath.Join(home, ".tutorgate")
}

// DBPath returns the path to the SQLite database file.
func DBPath() string {
	return filepath.Join(DataDir(), "tutorgate.db")
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	return os.MkdirAll(DataDir(), 0700)
}
