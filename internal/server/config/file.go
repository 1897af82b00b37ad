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

// FileConfig is the on-disk shape of the server configuration. Durations
// accept strings such as "48h" or integer nanoseconds.
type FileConfig struct {
	ListenAddr            string         `json:"listen_addr" toml:"listen_addr"`
	DatabaseDSN           string         `json:"database_dsn" toml:"database_dsn"`
	SecretKey             string         `json:"secret_key" toml:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration" toml:"token_validity_duration"`
	S3RootUser            string         `json:"s3_root_user" toml:"s3_root_user"`
	S3RootPassword        string         `json:"s3_root_password" toml:"s3_root_password"`
	S3Bucket              string         `json:"s3_bucket" toml:"s3_bucket"`
	S3Region              string         `json:"s3_region" toml:"s3_region"`
	S3BaseEndpoint        string         `json:"s3_base_endpoint" toml:"s3_base_endpoint"`
	PictureURLValidity    timex.Duration `json:"picture_url_validity" toml:"picture_url_validity"`
	AllowedOrigins        []string       `json:"allowed_origins" toml:"allowed_origins"`
	MaxUploadBytes        int64          `json:"max_upload_bytes" toml:"max_upload_bytes"`
	LogLevel              string         `json:"log_level" toml:"log_level"`
	LogFormat             string         `json:"log_format" toml:"log_format"`
}

// parseFile loads the file named by -c/-config (or the environment) into
// config. Nothing is loaded when no file is named; read or decode errors panic.
func parseFile(config *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc := &FileConfig{}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, fc)
	} else {
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(config)
}

func (fc *FileConfig) apply(config *Config) {
	setString(&config.ListenAddr, fc.ListenAddr)
	setString(&config.DatabaseDSN, fc.DatabaseDSN)
	setString(&config.SecretKey, fc.SecretKey)
	setString(&config.S3RootUser, fc.S3RootUser)
	setString(&config.S3RootPassword, fc.S3RootPassword)
	setString(&config.S3Bucket, fc.S3Bucket)
	setString(&config.S3Region, fc.S3Region)
	setString(&config.S3BaseEndpoint, fc.S3BaseEndpoint)
	setString(&config.LogLevel, fc.LogLevel)
	setString(&config.LogFormat, fc.LogFormat)

	if fc.TokenValidityDuration.Duration > 0 {
		config.TokenValidityDuration = fc.TokenValidityDuration.Duration
	}
	if fc.PictureURLValidity.Duration > 0 {
		config.PictureURLValidity = fc.PictureURLValidity.Duration
	}
	if len(fc.AllowedOrigins) > 0 {
		config.AllowedOrigins = fc.AllowedOrigins
	}
	if fc.MaxUploadBytes > 0 {
		config.MaxUploadBytes = fc.MaxUploadBytes
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
