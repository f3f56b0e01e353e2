package storage

import (
	"errors"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"github.com/peterbourgon/diskv/v3"
)

// ErrNotFound is returned by a Backend when the key holds no value
var ErrNotFound = errors.New("key not found")

// Backend is a string key-value store
type Backend interface {
	Load(key string) (string, error)
	Store(key, value string) error
}

// PreferencesBackend keeps values in the fyne app preferences
type PreferencesBackend struct {
	prefs fyne.Preferences
}

// NewPreferencesBackend creates a backend on top of the app preferences
func NewPreferencesBackend(app fyne.App) *PreferencesBackend {
	return &PreferencesBackend{prefs: app.Preferences()}
}

// Load returns the stored value, or ErrNotFound when it is empty
func (b *PreferencesBackend) Load(key string) (string, error) {
	value := b.prefs.String(key)
	if value == "" {
		return "", ErrNotFound
	}
	return value, nil
}

// Store overwrites the value for key
func (b *PreferencesBackend) Store(key, value string) error {
	b.prefs.SetString(key, value)
	return nil
}

// Disk cache limit for diskv
const DiskCacheSizeMax = 1024 * 1024 // 1MB

// DiskBackend keeps one file per key under a base directory
type DiskBackend struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskBackend creates a diskv backed store rooted at basePath
func NewDiskBackend(basePath string) *DiskBackend {
	return &DiskBackend{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    flatTransform,
			CacheSizeMax: DiskCacheSizeMax,
		}),
		basePath: basePath,
	}
}

// BasePath returns the directory holding the stored keys
func (b *DiskBackend) BasePath() string {
	return b.basePath
}

// Load reads the value for key
func (b *DiskBackend) Load(key string) (string, error) {
	val, err := b.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return string(val), nil
}

// Store writes the value for key, replacing the previous file
func (b *DiskBackend) Store(key, value string) error {
	if err := b.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// flatTransform stores every key directly under the base path
func flatTransform(string) []string {
	return []string{}
}
