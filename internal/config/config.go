package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/nhdewitt/tiny-httpd/internal/response"
	"github.com/sirupsen/logrus"
)

const (
	DefaultAddr             = "127.0.0.1:8080"
	DefaultPublicPath       = "./public"
	DefaultBadRequestStatus = "404"
	DefaultLogLevel         = "info"
)

type Config struct {
	Addr             string
	PublicPath       string
	BadRequestStatus response.StatusCode
	LogLevel         logrus.Level
}

// Load reads flags from args. Environment variables, looked up through
// getenv, replace the built-in defaults; flags win over both.
func Load(name string, args []string, getenv func(string) string) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	addr := fs.String("addr", envOr(getenv, "HTTPD_ADDR", DefaultAddr), "listen address as host:port")
	public := fs.String("public", envOr(getenv, "HTTPD_PUBLIC_PATH", DefaultPublicPath), "directory served as the site root")
	badStatus := fs.String("bad-request-status", envOr(getenv, "HTTPD_BAD_REQUEST_STATUS", DefaultBadRequestStatus), "status sent for unparseable requests")
	level := fs.String("log-level", envOr(getenv, "HTTPD_LOG_LEVEL", DefaultLogLevel), "logrus level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	status, err := response.ParseStatusCode(*badStatus)
	if err != nil {
		return nil, fmt.Errorf("invalid bad-request-status %q: %w", *badStatus, err)
	}

	lvl, err := logrus.ParseLevel(*level)
	if err != nil {
		return nil, fmt.Errorf("invalid log-level: %w", err)
	}

	return &Config{
		Addr:             *addr,
		PublicPath:       *public,
		BadRequestStatus: status,
		LogLevel:         lvl,
	}, nil
}

func envOr(getenv func(string) string, key, fallback string) string {
	if getenv == nil {
		return fallback
	}
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}
