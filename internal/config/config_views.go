// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ConsoleConfig is the configuration view of the terminal console.
type ConsoleConfig struct {
	// Adapter contains the frontends service address.
	Adapter Adapter
	// Log contains the log level and destination file.
	Log Log
}

// WebConfig is the configuration view of the browser console.
type WebConfig struct {
	// Adapter contains the frontends service address.
	Adapter Adapter
	// Server contains the listen address and upload limit.
	Server Server
	// Log contains the log level.
	Log Log
}

// GetConsoleConfig builds and validates the terminal console config view
// from the merged structured configuration.
func GetConsoleConfig() (*ConsoleConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	consoleCfg := &ConsoleConfig{
		Adapter: cfg.Adapter,
		Log:     cfg.Log,
	}

	return consoleCfg, consoleCfg.validate()
}

// GetWebConfig builds and validates the browser console config view from the
// merged structured configuration.
func GetWebConfig() (*WebConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	webCfg := &WebConfig{
		Adapter: cfg.Adapter,
		Server:  cfg.Server,
		Log:     cfg.Log,
	}

	return webCfg, webCfg.validate()
}
