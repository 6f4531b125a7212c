package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-container-config container-specific json file path
//	-health-path liveness probe URL path
//	-static-dir directory served by the static-content stage
//	-static-prefix URL prefix for static content
//	-log-level minimum log level (debug, info, warn, error)
//	-metrics-path metrics endpoint URL path
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-read-header-timeout request-header read timeout (e.g., "30s")
//	-keep-alive-timeout idle keep-alive connection timeout (e.g., "2m")
//	-drain-timeout graceful-shutdown drain timeout (e.g., "30s")
//
// A malformed argument list is reported as an error so startup fails fast
// instead of running with silently ignored flags.
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-web-skeleton", flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var containerConfigPath string
	var healthPath string
	var staticDir string
	var staticPrefix string
	var logLevel string
	var metricsPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var readHeaderTimeout time.Duration
	var keepAliveTimeout time.Duration
	var drainTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&containerConfigPath, "container-config", "", "Container JSON config file path")
	fs.StringVar(&healthPath, "health-path", "", "Liveness probe URL path")
	fs.StringVar(&staticDir, "static-dir", "", "Static content directory")
	fs.StringVar(&staticPrefix, "static-prefix", "", "Static content URL prefix")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&metricsPath, "metrics-path", "", "Metrics endpoint URL path")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&readHeaderTimeout, "read-header-timeout", 0, "Request-header read timeout (e.g., 30s)")
	fs.DurationVar(&keepAliveTimeout, "keep-alive-timeout", 0, "Idle keep-alive timeout (e.g., 2m)")
	fs.DurationVar(&drainTimeout, "drain-timeout", 0, "Graceful-shutdown drain timeout (e.g., 30s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse command-line flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:       serverAddress.String(),
			HealthPath:        healthPath,
			ReadHeaderTimeout: readHeaderTimeout,
			KeepAliveTimeout:  keepAliveTimeout,
			DrainTimeout:      drainTimeout,
		},
		Log: Log{
			Level: logLevel,
		},
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Static: Static{
			Dir:    staticDir,
			Prefix: staticPrefix,
		},
		Metrics: Metrics{
			Path: metricsPath,
		},
		JSONFilePath:          jsonConfigPath,
		ContainerJSONFilePath: containerConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the merge
// falls through to lower-priority layers.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("invalid host: " + host)
		}
	}

	a.Host = host
	a.Port = port

	return nil
}
