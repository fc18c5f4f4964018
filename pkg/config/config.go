package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the environment driven options of the datepick CLI
type Config struct {
	// Dir is the directory where history, logs and settings are stored
	Dir string

	// Locale overrides the locale of the settings file when set
	Locale string

	// LogLevel is one of debug, info, warn or error
	LogLevel string

	// Default values
	DefaultDirName  string
	DefaultLogLevel string
}

// New creates a new configuration instance with values from environment variables.
// A .env file in the working directory or in the datepick directory is read
// first; variables already set in the environment win.
func New() *Config {
	cfg := &Config{
		DefaultDirName:  ".datepick",
		DefaultLogLevel: "info",
	}

	loadDotEnv(".env")
	cfg.Dir = cfg.getDir()
	loadDotEnv(filepath.Join(cfg.Dir, ".env"))

	cfg.loadFromEnvironment()
	return cfg
}

func loadDotEnv(path string) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return
	}
	// A malformed .env is ignored rather than blocking the picker.
	_ = godotenv.Load(path)
}

// loadFromEnvironment loads configuration from environment variables
func (c *Config) loadFromEnvironment() {
	c.Dir = c.getDir()
	c.Locale = os.Getenv("DATEPICK_LOCALE")
	c.LogLevel = c.getLogLevel()
}

// getDir returns the datepick directory path
func (c *Config) getDir() string {
	if dir := os.Getenv("DATEPICK_DIR"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, c.DefaultDirName)
}

// getLogLevel returns the log level
func (c *Config) getLogLevel() string {
	switch level := os.Getenv("DATEPICK_LOG_LEVEL"); level {
	case "debug", "info", "warn", "error":
		return level
	}
	return c.DefaultLogLevel
}

// SetDir updates the datepick directory path
func (c *Config) SetDir(dir string) {
	c.Dir = dir
}

// ToEnvironmentVars returns a map of environment variables that can be set
func (c *Config) ToEnvironmentVars() map[string]string {
	vars := make(map[string]string)

	if c.Dir != "" {
		vars["DATEPICK_DIR"] = c.Dir
	}
	if c.Locale != "" {
		vars["DATEPICK_LOCALE"] = c.Locale
	}
	if c.LogLevel != c.DefaultLogLevel {
		vars["DATEPICK_LOG_LEVEL"] = c.LogLevel
	}

	return vars
}

// GetBashrcExports returns bash export statements for non-default configurations
func (c *Config) GetBashrcExports() []string {
	var exports []string

	if c.Dir != "" {
		home, _ := os.UserHomeDir()
		defaultDir := filepath.Join(home, c.DefaultDirName)
		if c.Dir != defaultDir {
			exports = append(exports, "export DATEPICK_DIR=\""+c.Dir+"\"")
		}
	}

	if c.Locale != "" {
		exports = append(exports, "export DATEPICK_LOCALE=\""+c.Locale+"\"")
	}

	if c.LogLevel != c.DefaultLogLevel {
		exports = append(exports, "export DATEPICK_LOG_LEVEL=\""+c.LogLevel+"\"")
	}

	return exports
}

// DBPath returns the full path to the history database file
func (c *Config) DBPath() string {
	return filepath.Join(c.Dir, "datepick.db")
}

// LogPath returns the full path to the log file
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, "datepick.log")
}

// SettingsPath returns the full path to the YAML settings file
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, "config.yaml")
}

// EnsureDir creates the datepick directory if it doesn't exist
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0755)
}
