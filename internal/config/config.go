package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/treykane/skrib/internal/logging"
)

const (
	configDirName  = ".skrib"
	configFileName = "config.yaml"

	keyStorageDirectory = "storage_directory_path"
	keyAutosave         = "autosave"
	keyKeybindings      = "keybindings"

	configDirPermission  = 0o700
	configFilePermission = 0o600
)

var (
	ErrNotConfigured  = errors.New("skrib storage directory is not configured")
	ErrStaleDirectory = errors.New("stored storage directory is no longer available")
)

var log = logging.New("config")

// Store is the preference store. It remembers the storage directory and the
// autosave toggle between runs. Values can be overridden with SKRIB_*
// environment variables.
type Store struct {
	v    *viper.Viper
	path string
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Open loads the store from ConfigPath. A missing file is not an error.
func Open() (*Store, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return OpenAt(path)
}

// OpenAt loads the store from path.
func OpenAt(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetConfigPermissions(configFilePermission)
	v.SetEnvPrefix("SKRIB")
	v.AutomaticEnv()
	v.SetDefault(keyStorageDirectory, "")
	v.SetDefault(keyAutosave, false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var parseErr viper.ConfigParseError
		switch {
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
		case errors.As(err, &parseErr):
			return nil, fmt.Errorf("parse config: %w", err)
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return &Store{v: v, path: path}, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// StorageDirectory returns the stored root. It fails with ErrNotConfigured
// when nothing was stored and ErrStaleDirectory when the stored path is
// gone or is not a directory.
func (s *Store) StorageDirectory() (string, error) {
	raw := strings.TrimSpace(s.v.GetString(keyStorageDirectory))
	if raw == "" {
		return "", ErrNotConfigured
	}
	dir, err := NormalizeDir(raw)
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", keyStorageDirectory, err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		log.Warn("stored storage directory unavailable", "path", dir, "error", err)
		return "", fmt.Errorf("%w: %s", ErrStaleDirectory, dir)
	}
	return dir, nil
}

// SetStorageDirectory normalizes dir and writes it to disk.
func (s *Store) SetStorageDirectory(dir string) error {
	normalized, err := NormalizeDir(dir)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", keyStorageDirectory, err)
	}
	s.v.Set(keyStorageDirectory, normalized)
	return s.write()
}

func (s *Store) Autosave() bool {
	return s.v.GetBool(keyAutosave)
}

// SetAutosave stores the autosave toggle.
func (s *Store) SetAutosave(on bool) error {
	s.v.Set(keyAutosave, on)
	return s.write()
}

// Keybindings returns user key overrides, mapping action names such as
// "note.save" to keys such as "ctrl+w".
func (s *Store) Keybindings() map[string]string {
	return s.v.GetStringMapString(keyKeybindings)
}

// ChooserStartDir is where a directory chooser should open: the stored root
// when it is still usable, otherwise the home directory.
func (s *Store) ChooserStartDir() string {
	if dir, err := s.StorageDirectory(); err == nil {
		return dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

func (s *Store) write() error {
	if err := os.MkdirAll(filepath.Dir(s.path), configDirPermission); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Info("saved config", "path", s.path)
	return nil
}

// NormalizeDir expands a leading ~ and returns a clean absolute path.
func NormalizeDir(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is required")
	}

	expanded, err := expandHome(trimmed)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	return filepath.Clean(abs), nil
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}
