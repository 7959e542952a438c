// Package main is the entry point for ruinwalk.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/ruinwalk/internal/game"
	"github.com/samdwyer/ruinwalk/internal/logging"
	"github.com/samdwyer/ruinwalk/internal/telemetry"
)

func main() {
	// Load .env file for local development; env vars may also be set directly
	envErr := godotenv.Load()

	closer, err := logging.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup failed: %v\n", err)
		os.Exit(1)
	}

	if envErr != nil {
		logging.Log.Debugf(".env file not loaded: %v", envErr)
	}

	err = run()
	if err != nil {
		logging.Log.Errorf("ruinwalk: %v", err)
	}
	closer.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "ruinwalk: %v\n", err)
		os.Exit(1)
	}
}

// run plays one session. Every deferred cleanup has finished by the
// time it returns.
func run() error {
	log := logging.Log

	cfg, err := game.LoadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	sessionID := uuid.NewString()
	log.WithFields(logrus.Fields{
		"session": sessionID,
		"stage":   cfg.Stage,
		"fps":     cfg.FPSLimit,
	}).Info("starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			Endpoint:   cfg.OTLPEndpoint,
			APIKey:     cfg.OTLPAPIKey,
			InstanceID: sessionID,
		})
		if err != nil {
			log.Warnf("Telemetry setup failed, running without observability: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Errorf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	err = g.Run(ctx)
	log.WithField("session", sessionID).Info("stopped")
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}
