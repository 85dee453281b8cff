package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// storageDirName is created in the user's home directory.
const storageDirName = ".whoops"

// DefaultStoragePath returns ~/.whoops (%USERPROFILE%\.whoops on Windows).
// Reports live in its reports/ subdirectory.
func DefaultStoragePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, storageDirName), nil
}
