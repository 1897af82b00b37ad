package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dmitrijs2005/recipeadmin/internal/flagx"
	"github.com/dmitrijs2005/recipeadmin/internal/timex"
)

// FileConfig is the on-disk shape of the configuration. Zero values leave
// the corresponding Config field untouched.
type FileConfig struct {
	ServerURL       string         `json:"server_url" toml:"server_url"`
	RequestTimeout  timex.Duration `json:"request_timeout" toml:"request_timeout"`
	StateDB         string         `json:"state_db" toml:"state_db"`
	LogLevel        string         `json:"log_level" toml:"log_level"`
	LogFormat       string         `json:"log_format" toml:"log_format"`
	MaxPictureBytes int64          `json:"max_picture_bytes" toml:"max_picture_bytes"`
}

// parseFile overlays cfg with the file named by flagx.ConfigFile.
// Panics on read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &fc)
	} else {
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.ServerURL != "" {
		cfg.ServerURL = fc.ServerURL
	}
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.StateDB != "" {
		cfg.StateDB = expandHome(fc.StateDB)
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
	if fc.MaxPictureBytes > 0 {
		cfg.MaxPictureBytes = fc.MaxPictureBytes
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
