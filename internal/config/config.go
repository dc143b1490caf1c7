// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Defaults applied before any other source is merged.
const (
	// DefaultAPIURL is the base URL of the frontends service.
	DefaultAPIURL = "http://localhost:3000"

	// DefaultServerAddress is where the browser console listens.
	DefaultServerAddress = "localhost:8080"

	// DefaultMaxUploadSize limits the multipart body accepted by the
	// browser console (32 MiB).
	DefaultMaxUploadSize int64 = 32 << 20

	// DefaultLogLevel is the zerolog level name used when none is configured.
	DefaultLogLevel = "debug"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from defaults,
// an optional config file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds settings of the outbound connection to the frontends
	// service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds settings of the browser console HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or TOML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// Adapter holds settings of the frontends service client.
type Adapter struct {
	// HTTPAddress is the base URL of the frontends service
	// (e.g. "http://localhost:3000"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Server holds network settings of the browser console.
type Server struct {
	// HTTPAddress is the TCP address on which the console listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// MaxUploadSize is the largest multipart body, in bytes, accepted when
	// files are uploaded through the browser console.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name: trace, debug, info, warn or error.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log destination of the terminal console, which cannot
	// write to stdout while the UI owns the screen.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{HTTPAddress: DefaultAPIURL},
		Server: Server{
			HTTPAddress:   DefaultServerAddress,
			MaxUploadSize: DefaultMaxUploadSize,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources using the process arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(commandLineArgs())
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
