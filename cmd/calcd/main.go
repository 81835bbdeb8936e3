// Command calcd serves the evaluator over HTTP.
//
// Configuration comes from the environment, with an optional .env file:
// CALC_PORT, CALC_HISTORY_PATH, CALC_CORS_ORIGINS and CALC_LOG_LEVEL. See
// the config package for defaults.
package main

import (
	"log/slog"
	"os"

	"github.com/aw-devel/Tacton-Code-Test-A/internal/config"
	"github.com/aw-devel/Tacton-Code-Test-A/internal/history"
	"github.com/aw-devel/Tacton-Code-Test-A/internal/server"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.LoadServer()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	var store server.History
	var checker server.HealthChecker = server.OkHealthChecker{}
	if cfg.HistoryPath != "" {
		s, err := history.Open(cfg.HistoryPath)
		if err != nil {
			slog.Error("failed to open history store", "path", cfg.HistoryPath, "error", err)
			os.Exit(1)
		}
		defer s.Close()
		store = s
		checker = server.PingHealthChecker{P: s}
		slog.Info("history store open", "path", cfg.HistoryPath)
	}

	srv := server.New(&server.Config{
		Port:        cfg.Port,
		CorsOrigins: cfg.CorsOrigins,
	}, store, checker)

	if err := srv.Start(); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
