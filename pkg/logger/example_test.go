package logger_test

import (
	"errors"

	"github.com/wonny/scout/backend/pkg/config"
	"github.com/wonny/scout/backend/pkg/logger"
)

// Example_basic demonstrates basic logger usage
func Example_basic() {
	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "info",
		LogFormat: "console",
	}

	log := logger.New(cfg)

	log.Debug("This won't appear (level is info)")
	log.Info("Dataset loaded")
	log.Infof("Eligible players: %d", 17660)
}

// Example_withFields demonstrates structured logging with fields
func Example_withFields() {
	log := logger.New(&config.Config{Env: "production", LogLevel: "info", LogFormat: "json"})

	log.Component("s3_ranking").WithFields(map[string]interface{}{
		"metric": "market_value",
		"limit":  10,
		"view":   412,
	}).Info("Top players ranked")

	log.WithError(errors.New("open datasets/players.csv: no such file")).
		Error("Dataset unavailable")
}
