// Package config loads chartwheel settings from a TOML file.
//
// Every field has a working default, so a missing config file is not an
// error: Load falls back to [Default] when the path does not exist. CLI
// flags override whatever the file provides.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	cwerrors "github.com/lunaterra/chartwheel/pkg/errors"
)

// Config holds all user-tunable settings.
type Config struct {
	Wheel  WheelConfig  `toml:"wheel"`
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
}

// WheelConfig tunes the layout engine defaults.
type WheelConfig struct {
	// Size is the square viewport edge in user units.
	Size float64 `toml:"size"`

	// MinSeparation is the minimum angular distance between body glyphs,
	// in degrees.
	MinSeparation float64 `toml:"min_separation"`

	// Style is the default render palette name.
	Style string `toml:"style"`
}

// ServerConfig tunes the HTTP server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`
}

// CacheConfig selects and tunes the cache backend.
type CacheConfig struct {
	// Backend is "file", "redis" or "none".
	Backend string `toml:"backend"`

	// Dir is the file backend's directory. Empty means the platform
	// cache directory.
	Dir string `toml:"dir"`

	// RedisAddr is the redis backend's address, e.g. "localhost:6379".
	RedisAddr string `toml:"redis_addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Wheel: WheelConfig{
			Size:          600,
			MinSeparation: 7,
			Style:         "simple",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Cache: CacheConfig{
			Backend:   "file",
			RedisAddr: "localhost:6379",
		},
	}
}

// DefaultPath returns the conventional config file location,
// e.g. ~/.config/chartwheel/config.toml on Linux.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "chartwheel", "config.toml"), nil
}

// Load reads a TOML config file, applying defaults for absent fields.
// A missing file yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, cwerrors.Wrap(cwerrors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), cwerrors.Wrap(cwerrors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return cfg, nil
}

// CacheDir returns the directory the file cache backend should use.
func (c CacheConfig) CacheDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "chartwheel"), nil
}
