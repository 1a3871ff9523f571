package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// File is a Store persisted to a YAML settings file via Viper. Every
// write is flushed to disk immediately; a failed flush is logged and the
// in-memory value kept, so readers stay consistent within the process.
type File struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// DefaultPath returns the standard settings file location,
// ~/.config/snaprect/settings.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "snaprect", "settings.yaml"), nil
}

// Open reads the settings file at path, creating parent directories as
// needed. A missing file is not an error; it appears on first write.
func Open(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}
	}

	return &File{v: v, path: path}, nil
}

func (f *File) GetString(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.v.IsSet(key) {
		return "", false
	}
	return f.v.GetString(key), true
}

func (f *File) SetString(key, value string) {
	f.set(key, value)
}

func (f *File) GetBool(key string) (bool, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.v.IsSet(key) {
		return false, false
	}
	return f.v.GetBool(key), true
}

func (f *File) SetBool(key string, value bool) {
	f.set(key, value)
}

func (f *File) GetInt(key string) (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.v.IsSet(key) {
		return 0, false
	}
	return f.v.GetInt(key), true
}

func (f *File) SetInt(key string, value int) {
	f.set(key, value)
}

func (f *File) set(key string, value any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.v.Set(key, value)
	if err := f.v.WriteConfigAs(f.path); err != nil {
		log.Printf("Warning: failed to persist setting %q: %v", key, err)
	}
}
