package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithTelemetryShutsDownOnError(t *testing.T) {
	ctx := context.Background()
	gameErr := errors.New("terminal gone")

	var shutdowns int
	setup := func(context.Context) (func(context.Context) error, error) {
		return func(context.Context) error {
			shutdowns++
			return nil
		}, nil
	}

	err := withTelemetry(ctx, setup, func(context.Context) error { return gameErr })
	assert.ErrorIs(t, err, gameErr)
	assert.Equal(t, 1, shutdowns, "spans must be flushed before exiting")

	err = withTelemetry(ctx, setup, func(context.Context) error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, 2, shutdowns)
}

func TestWithTelemetrySetupFailure(t *testing.T) {
	ctx := context.Background()
	setup := func(context.Context) (func(context.Context) error, error) {
		return nil, errors.New("no exporter")
	}

	ran := false
	err := withTelemetry(ctx, setup, func(context.Context) error {
		ran = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, ran, "the game still runs without telemetry")
}
