// Package main is the entry point for Wayfarer.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wayfarer/internal/entity"
	"github.com/samdwyer/wayfarer/internal/game"
	"github.com/samdwyer/wayfarer/internal/gamedata"
	"github.com/samdwyer/wayfarer/internal/telemetry"
	"github.com/samdwyer/wayfarer/internal/ui"
	"github.com/samdwyer/wayfarer/internal/world"
)

func main() {
	// Load .env file for local development.
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()
	logger := setupLogger()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	// Content loading is the one fatal failure: the session never starts on
	// malformed data.
	session, err := boot(ctx)
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	loop, err := ui.NewLoop(session, logger)
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	if err := loop.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// boot loads the embedded content, builds the world, and opens a session.
func boot(ctx context.Context) (*game.Session, error) {
	tracer := telemetry.Tracer("boot")
	_, span := tracer.Start(ctx, "game.init")
	defer span.End()

	locs, err := gamedata.LoadLocations()
	if err != nil {
		return nil, err
	}
	chars, err := gamedata.LoadCharacters()
	if err != nil {
		return nil, err
	}
	playerDef, err := gamedata.LoadPlayer()
	if err != nil {
		return nil, err
	}

	w, err := world.Build(locs, chars)
	if err != nil {
		return nil, err
	}

	session, err := game.New(w, entity.NewPlayer(playerDef))
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("world.locations", w.LocationCount()),
		attribute.Int("world.characters", w.CharacterCount()),
		attribute.String("session.id", session.ID()),
		attribute.String("session.start", session.Location().ID),
	)
	return session, nil
}

// setupLogger configures slog for the session event log. The terminal owns
// stdout, so logs go to a file when WAYFARER_LOG is set and are discarded
// otherwise.
func setupLogger() *slog.Logger {
	path := os.Getenv("WAYFARER_LOG")
	if path == "" {
		return slog.New(slog.DiscardHandler)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Note: log file not opened: %v", err)
		return slog.New(slog.DiscardHandler)
	}

	level := slog.LevelInfo
	if os.Getenv("WAYFARER_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_WAYFARER_API_KEY")
	dataset := os.Getenv("HONEYCOMB_WAYFARER_DATASET")
	if dataset == "" {
		dataset = "wayfarer" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
