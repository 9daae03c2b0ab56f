package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/misterclayt0n/vigor/internal/utils"
)

type Config struct {
	DB        DBConfig        `toml:"database"`
	Dashboard DashboardConfig `toml:"dashboard"`
	Log       LogConfig       `toml:"log"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // libsql URL, file: URL or path.
}

type DashboardConfig struct {
	Timezone string `toml:"timezone"`
	TopTypes int    `toml:"top_types"` // Popular workout types shown by admin.
}

type LogConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// Returns the directory holding the config file and the local database.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vigor"), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{
		Dashboard: DashboardConfig{Timezone: utils.DefaultLocation, TopTypes: 5},
		Log:       LogConfig{Level: "warn"},
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.DB.ConnectionString = "file:" + filepath.Join(dir, "vigor.db")
	}
	return cfg
}

// Reads the configuration from path (the default location when empty).
// A missing file is not an error. Environment variables, optionally loaded
// from a .env file, override the file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	// .env is optional.
	_ = godotenv.Load()

	if url := os.Getenv("TURSO_DATABASE_URL"); url != "" {
		cfg.DB.ConnectionString = url
	}
	if tz := os.Getenv("VIGOR_TIMEZONE"); tz != "" {
		cfg.Dashboard.Timezone = tz
	}
	if lvl := os.Getenv("VIGOR_LOG_LEVEL"); lvl != "" {
		cfg.Log.Level = lvl
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "file:./local.db"
	}

	if cfg.Dashboard.TopTypes <= 0 {
		cfg.Dashboard.TopTypes = 5
	}

	return cfg, nil
}

// Location resolves the dashboard timezone.
func (c *Config) Location() (*time.Location, error) {
	return utils.LoadLocation(c.Dashboard.Timezone)
}
