package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GAME_TEXT_WIDTH", "")

	cfg := LoadConfig()
	assert.Equal(t, 10, cfg.NumNodes)
	assert.Equal(t, 20, cfg.NumEdges)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, DefaultTextWidth, cfg.TextWidth)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GAME_TEXT_WIDTH", "60")

	cfg := LoadConfig()
	assert.Equal(t, "secret", cfg.GeminiAPIKey)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 60, cfg.TextWidth)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"too few nodes", func(c *Config) { c.NumNodes = 1 }, "nodes"},
		{"negative edges", func(c *Config) { c.NumEdges = -3 }, "edges"},
		{"ai without key", func(c *Config) { c.AI, c.GeminiAPIKey = true, "" }, "GEMINI_API_KEY"},
		{"ai with key", func(c *Config) { c.AI, c.GeminiAPIKey = true, "k" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{NumNodes: DefaultNumNodes, NumEdges: DefaultNumEdges}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
