// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

// Storage drivers accepted in Storage.Driver.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// StructuredConfig is the top-level configuration container for the
// users API server. It is populated by merging values from command-line
// flags, environment variables, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings.
	App App `envPrefix:"APP_"`

	// Storage selects the users collection backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen address, shutdown and CORS settings of the HTTP
	// server.
	Server Server `envPrefix:"API_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage selects where users are kept. Every driver keeps them in memory
// only; nothing survives a restart.
type Storage struct {
	// Driver is DriverMemory or DriverSQLite.
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// SeedFile is an optional JSON file with users created at startup.
	// Env: STORAGE_SEED_FILE
	SeedFile string `env:"SEED_FILE"`
}

// Server holds network and lifecycle settings for the HTTP server.
type Server struct {
	// Host is the interface to bind. Empty means all interfaces.
	// Env: API_HOST
	Host string `env:"HOST"`

	// Port is the TCP port to listen on.
	// Env: API_PORT
	Port int `env:"PORT"`

	// ShutdownTimeout bounds the graceful shutdown (e.g. "5s").
	// Env: API_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins lists the CORS origins of the web UI; "*" allows any.
	// Env: API_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`
}

// Address returns the host:port string to listen on.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// BaseURL is the URL announced in the startup logs. An empty or wildcard
// host is reported as localhost.
func (s Server) BaseURL() string {
	host := s.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(s.Port))
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources. For every field the first non-zero value wins,
// in this order:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
