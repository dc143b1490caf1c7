// Package config provides configuration loading, merging, and validation
// facilities for both consoles.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Config file (JSON or TOML, chosen by extension)
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetConsoleConfig] for the terminal console and
// [GetWebConfig] for the browser console.
package config
