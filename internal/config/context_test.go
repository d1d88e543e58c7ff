package config_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/streamtype-labs/typetree/internal/config"
)

func TestConfigContext(t *testing.T) {
	cfg := &config.Config{Output: "json", MaxDepth: 8}
	ctx := config.WithConfig(context.Background(), cfg)

	assert.Same(t, cfg, config.FromContext(ctx))
}

func TestConfigContextFallback(t *testing.T) {
	cfg := config.FromContext(context.Background())

	assert.Equal(t, config.DefaultOutput, cfg.Output)
	assert.Equal(t, config.DefaultMaxDepth, cfg.MaxDepth)
}

func TestLoggerContext(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	ctx := config.WithLogger(context.Background(), logger)

	assert.Same(t, logger, config.LoggerFromContext(ctx))
}

func TestLoggerContextFallback(t *testing.T) {
	assert.NotNil(t, config.LoggerFromContext(context.Background()))
}
