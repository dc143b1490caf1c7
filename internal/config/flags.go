package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

func commandLineArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-api-url base URL of the frontends service
//	-a console listen address in format [host]:[port]
//	-max-upload-size largest accepted upload body in bytes
//	-log-level zerolog level name
//	-log-file log file of the terminal console
//	-c/-config config file path (.json or .toml)
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var apiURL string
	var maxUploadSize int64
	var logLevel string
	var logFile string
	var configPath string

	fs := flag.NewFlagSet("frontend-console", flag.ContinueOnError)
	fs.StringVar(&apiURL, "api-url", "", "Frontends service base URL")
	fs.Var(&serverAddress, "a", "Console net address host:port")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Max upload body size in bytes")
	fs.StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress: apiURL,
		},
		Server: Server{
			HTTPAddress:   serverAddress.String(),
			MaxUploadSize: maxUploadSize,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		FilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces; any other host must be "localhost" or
// a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
