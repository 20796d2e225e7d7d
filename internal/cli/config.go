package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the grove configuration file, read from
// ~/.config/grove/config.toml (or $XDG_CONFIG_HOME/grove/config.toml).
// Command-line flags override file values; a missing file means
// defaults throughout.
type Config struct {
	// Locale is the BCP 47 tag used for alphabetic sorting, e.g. "da"
	// or "de-DE". Empty means the Unicode default collation.
	Locale string `toml:"locale"`

	Server ServerConfig `toml:"server"`
	Store  StoreConfig  `toml:"store"`
	Cache  CacheConfig  `toml:"cache"`
}

// ServerConfig configures the grove HTTP server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`
}

// StoreConfig selects the persistence backend for saved forests.
type StoreConfig struct {
	// Backend is "memory" or "mongo".
	Backend string `toml:"backend"`
	// MongoURI is the MongoDB connection string for the mongo backend.
	MongoURI string `toml:"mongo_uri"`
	// MongoDatabase is the database name for the mongo backend.
	MongoDatabase string `toml:"mongo_database"`
}

// CacheConfig selects the artifact cache backend for the server.
type CacheConfig struct {
	// Backend is "file", "redis" or "none".
	Backend string `toml:"backend"`
	// RedisAddr is the host:port for the redis backend.
	RedisAddr string `toml:"redis_addr"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Store:  StoreConfig{Backend: "memory", MongoDatabase: appName},
		Cache:  CacheConfig{Backend: "file", RedisAddr: "localhost:6379"},
	}
}

// LoadConfig reads the TOML config at path on top of the defaults.
// Unknown keys are rejected so typos surface instead of being ignored.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// LoadDefaultConfig loads the config file from its default location.
// A missing file is not an error and yields the defaults.
func LoadDefaultConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// configPath returns the config file location, honoring XDG_CONFIG_HOME.
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
