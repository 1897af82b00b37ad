package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the recipe console.
type Config struct {
	ServerURL       string
	RequestTimeout  time.Duration
	StateDB         string
	LogLevel        string
	LogFormat       string
	MaxPictureBytes int64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000/admin"
	c.RequestTimeout = 15 * time.Second
	c.StateDB = defaultStateDB()
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.MaxPictureBytes = 20 << 20
}

func defaultStateDB() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "recipeadmin.db"
	}
	return filepath.Join(home, ".recipeadmin", "state.db")
}

// LoadConfig builds a Config from defaults, then the config file (if any),
// then command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
