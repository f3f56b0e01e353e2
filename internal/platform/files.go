package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// DefaultStorePath is where the command line tool keeps its task store
const DefaultStorePath = "~/.todo.db"

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// ResolveStorePath expands a leading ~ and makes the path absolute.
// An empty path resolves DefaultStorePath.
func ResolveStorePath(path string) (string, error) {
	if path == "" {
		path = DefaultStorePath
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand store path %s: %w", path, err)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to resolve store path %s: %w", expanded, err)
	}
	return abs, nil
}

// PrepareStoreDir resolves path and ensures the directory exists
func PrepareStoreDir(path string) (string, error) {
	dir, err := ResolveStorePath(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(dir)
	if err == nil && !info.IsDir() {
		return "", fmt.Errorf("store path %s is not a directory", dir)
	}

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return dir, nil
}
