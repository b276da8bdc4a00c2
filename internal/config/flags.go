package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-host interface to bind
//	-p/-port port to listen on
//	-shutdown-timeout graceful shutdown bound (e.g., "5s")
//	-allowed-origins comma separated CORS origins
//	-storage storage driver (memory|sqlite)
//	-seed JSON file with users created at startup
//	-log-level log level (debug, info, warn, error)
//	-c/-config json file path with configs
//
// -host and -port take precedence over -a.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var address NetAddress
	var host string
	var port int
	var shutdownTimeout time.Duration
	var allowedOrigins string
	var driver string
	var seedFile string
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("users-api", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&address, "a", "Net address host:port")
	fs.StringVar(&host, "host", "", "Interface to bind")
	fs.IntVar(&port, "p", 0, "Port to listen on")
	fs.IntVar(&port, "port", 0, "Port to listen on (alias)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 5s)")
	fs.StringVar(&allowedOrigins, "allowed-origins", "", "Comma separated CORS origins")
	fs.StringVar(&driver, "storage", "", "Storage driver: memory or sqlite")
	fs.StringVar(&seedFile, "seed", "", "JSON file with seed users")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if host == "" {
		host = address.Host
	}
	if port == 0 {
		port = address.Port
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			Driver:   driver,
			SeedFile: seedFile,
		},
		Server: Server{
			Host:            host,
			Port:            port,
			ShutdownTimeout: shutdownTimeout,
			AllowedOrigins:  splitList(allowedOrigins),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
