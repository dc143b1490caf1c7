package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors [StructuredConfig] for JSON and TOML config files.
type fileConfig struct {
	Adapter struct {
		HTTPAddress string `json:"http_address" toml:"http_address"`
	} `json:"adapter" toml:"adapter"`

	Server struct {
		HTTPAddress   string `json:"http_address" toml:"http_address"`
		MaxUploadSize int64  `json:"max_upload_size" toml:"max_upload_size"`
	} `json:"server" toml:"server"`

	Log struct {
		Level string `json:"level" toml:"level"`
		File  string `json:"file" toml:"file"`
	} `json:"log" toml:"log"`
}

// parseFile reads a config file. Files ending in ".toml" are decoded as TOML,
// everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err = toml.Unmarshal(raw, &fc); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	} else {
		if err = json.Unmarshal(raw, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress: fc.Adapter.HTTPAddress,
		},
		Server: Server{
			HTTPAddress:   fc.Server.HTTPAddress,
			MaxUploadSize: fc.Server.MaxUploadSize,
		},
		Log: Log{
			Level: fc.Log.Level,
			File:  fc.Log.File,
		},
	}, nil
}
