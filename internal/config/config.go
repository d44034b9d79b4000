// Package config resolves Parley's settings. Sources, lowest priority first:
// built-in defaults, preferences saved from the UI, environment variables
// (optionally from a .env file), then command-line flags.
package config

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/saravenpi/parley/internal/chat"
	"github.com/saravenpi/parley/internal/errors"
	"github.com/saravenpi/parley/internal/i18n"
	"github.com/saravenpi/parley/internal/logger"
	"github.com/saravenpi/parley/internal/theme"
)

// Environment variables read by Load.
const (
	EnvDataDir  = "PARLEY_DATA_DIR"
	EnvLanguage = "PARLEY_LANG"
	EnvTheme    = "PARLEY_THEME"
	EnvLogPath  = "PARLEY_LOG"
	EnvPageSize = "PARLEY_PAGE_SIZE"
)

// Storage keys for preferences changed from the UI.
const (
	KeyLanguage = "settings.language"
	KeyTheme    = "settings.theme"
)

// Config holds startup settings. Language and Theme are empty unless set by
// the environment or a flag, so saved preferences can fill them in.
type Config struct {
	DataDir   string
	Language  string
	Theme     string
	LogPath   string
	PageSize  int
	Ephemeral bool
	Debug     bool
}

// DefaultDataDir returns ~/.parley.
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".parley"
	}
	return filepath.Join(homeDir, ".parley")
}

// Load reads envFiles (default ".env") into the environment and builds a
// Config from it. Missing env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.E(errors.Op("config.Load"), errors.KindConfig, "failed to read env file", err)
		}
		logger.Debug("No .env file found, using environment variables")
	}

	cfg := &Config{
		DataDir:  envOrDefault(EnvDataDir, DefaultDataDir()),
		Language: os.Getenv(EnvLanguage),
		Theme:    os.Getenv(EnvTheme),
		LogPath:  os.Getenv(EnvLogPath),
		PageSize: chat.PageSize,
	}

	if raw := os.Getenv(EnvPageSize); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.ConfigInvalid(EnvPageSize + " must be a number")
		}
		cfg.PageSize = n
	}
	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

// Validate checks values that came from outside.
func (c *Config) Validate() error {
	if c.PageSize <= 0 {
		return errors.ConfigInvalid("page size must be positive")
	}
	if c.Language != "" {
		if _, ok := i18n.ParseLanguage(c.Language); !ok {
			return errors.ConfigInvalid("unsupported language " + strconv.Quote(c.Language))
		}
	}
	if c.Theme != "" {
		if _, ok := theme.ParsePreference(c.Theme); !ok {
			return errors.ConfigInvalid("unknown theme " + strconv.Quote(c.Theme) + " (want light, dark or system)")
		}
	}
	if !c.Ephemeral && c.DataDir == "" {
		return errors.ConfigInvalid("data directory is empty")
	}
	return nil
}

// ResolvedLogPath is LogPath, or parley.log inside the data directory.
func (c *Config) ResolvedLogPath() string {
	if c.LogPath != "" {
		return c.LogPath
	}
	if c.Ephemeral || c.DataDir == "" {
		return logger.DefaultLogPath
	}
	return filepath.Join(c.DataDir, "parley.log")
}

// Preferences are the user-facing settings the UI can change.
type Preferences struct {
	Language i18n.Language
	Theme    theme.Preference
}

// DefaultPreferences is English with the terminal's own background.
func DefaultPreferences() Preferences {
	return Preferences{Language: i18n.DefaultLanguage, Theme: theme.PreferenceSystem}
}

// PreferenceStore is the part of storage.Store preferences use.
type PreferenceStore interface {
	Put(ctx context.Context, key string, value any) error
	GetString(ctx context.Context, key string) (string, bool, error)
}

// Preferences merges defaults, saved values, and explicit settings in c.
// Unreadable or unrecognised saved values are skipped.
func (c *Config) Preferences(ctx context.Context, store PreferenceStore) Preferences {
	prefs := DefaultPreferences()

	if store != nil {
		if raw, found, err := store.GetString(ctx, KeyLanguage); err != nil {
			logger.Warn("Could not read saved language: %v", err)
		} else if found {
			if lang, ok := i18n.ParseLanguage(raw); ok {
				prefs.Language = lang
			}
		}
		if raw, found, err := store.GetString(ctx, KeyTheme); err != nil {
			logger.Warn("Could not read saved theme: %v", err)
		} else if found {
			if p, ok := theme.ParsePreference(raw); ok {
				prefs.Theme = p
			}
		}
	}

	if lang, ok := i18n.ParseLanguage(c.Language); ok {
		prefs.Language = lang
	}
	if p, ok := theme.ParsePreference(c.Theme); ok {
		prefs.Theme = p
	}
	return prefs
}

// SaveLanguage persists the UI language.
func SaveLanguage(ctx context.Context, store PreferenceStore, lang i18n.Language) error {
	return store.Put(ctx, KeyLanguage, string(lang))
}

// SaveTheme persists the theme preference.
func SaveTheme(ctx context.Context, store PreferenceStore, p theme.Preference) error {
	return store.Put(ctx, KeyTheme, string(p))
}
