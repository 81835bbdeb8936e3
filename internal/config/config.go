package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Server holds the calcd configuration, loaded from the environment.
type Server struct {
	Port        string
	HistoryPath string
	CorsOrigins []string
	LogLevel    slog.Level
}

// LoadDotEnv loads environment variables from a .env file when one exists.
// CALC_ENV_PATH overrides the default ./.env lookup. Variables already set in
// the environment take precedence, and a missing file is not an error.
func LoadDotEnv() {
	path := os.Getenv("CALC_ENV_PATH")
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		slog.Debug("skipping .env", "path", path, "error", err)
	}
}

// LoadServer reads the server configuration from the environment, applying
// defaults for unset variables.
func LoadServer() (*Server, error) {
	port := os.Getenv("CALC_PORT")
	if port == "" {
		port = "8080"
	}
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	var origins []string
	if corsEnv := os.Getenv("CALC_CORS_ORIGINS"); corsEnv != "" {
		for _, origin := range strings.Split(corsEnv, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	level, err := parseLogLevel(os.Getenv("CALC_LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	return &Server{
		Port:        port,
		HistoryPath: os.Getenv("CALC_HISTORY_PATH"),
		CorsOrigins: origins,
		LogLevel:    level,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}
	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
