// Package main is the entry point for Valeris.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/samdwyer/valeris/internal/config"
	"github.com/samdwyer/valeris/internal/game"
	"github.com/samdwyer/valeris/internal/telemetry"
)

func main() {
	cfg, loaded, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if !loaded {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded")
	}

	ctx := context.Background()
	cfg.Seed = cfg.EffectiveSeed()

	if cfg.PrintLayout {
		if err := printLayout(ctx, cfg); err != nil {
			log.Fatalf("Layout failed: %v", err)
		}
		return
	}

	telemetry.ConfigureHoneycomb(cfg.HoneycombAPIKey, cfg.HoneycombDataset)

	setup := func(ctx context.Context) (func(context.Context) error, error) {
		return telemetry.Setup(ctx, cfg.Seed)
	}
	err = withTelemetry(ctx, setup, func(ctx context.Context) error {
		g, err := game.New(cfg)
		if err != nil {
			return fmt.Errorf("initialize game: %w", err)
		}
		return g.Run(ctx)
	})
	if err != nil {
		log.Printf("Game error: %v", err)
		os.Exit(1)
	}
	fmt.Println("Exiting dungeon exploration.")
}

// withTelemetry runs fn between telemetry setup and shutdown. Shutdown runs
// whether or not fn fails so pending spans reach the exporter. A failed setup
// only costs observability.
func withTelemetry(ctx context.Context, setup func(context.Context) (func(context.Context) error, error), fn func(context.Context) error) error {
	shutdown, err := setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		return fn(ctx)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()
	return fn(ctx)
}

// printLayout generates the floor and prints every room breadth-first from
// the entry room, without starting the terminal UI.
func printLayout(ctx context.Context, cfg config.Config) error {
	floor, explorer, err := game.NewFloor(ctx, cfg.Seed, cfg.Rooms)
	if err != nil {
		return err
	}
	defer floor.Teardown()

	layout, err := game.Layout(floor, explorer.Party().Room)
	if err != nil {
		return err
	}

	fmt.Printf("Dungeon generated with %d rooms (seed %d).\n\n", floor.RoomCount(), cfg.Seed)
	fmt.Print(layout)
	return nil
}
