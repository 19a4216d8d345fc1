package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultNumNodes  = 10
	DefaultNumEdges  = 20
	DefaultTextWidth = 80
)

// Config holds the application configuration.
type Config struct {
	// Game parameters, set from command-line flags.
	NumNodes int
	NumEdges int
	Seed     uint64 // 0 means seed from the clock
	Fast     bool   // skip typewriter pacing
	TUI      bool
	AI       bool

	// Ambient settings, read from the environment.
	GeminiAPIKey string
	Environment  string
	LogLevel     slog.Level
	TextWidth    int
}

// LoadConfig returns the defaults overlaid with environment settings.
func LoadConfig() *Config {
	return &Config{
		NumNodes:     DefaultNumNodes,
		NumEdges:     DefaultNumEdges,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     parseLogLevel(getEnv("LOG_LEVEL", "warn")),
		TextWidth:    getEnvInt("GAME_TEXT_WIDTH", DefaultTextWidth),
	}
}

// Validate checks the game parameters.
func (c *Config) Validate() error {
	if c.NumNodes < 2 {
		return fmt.Errorf("nodes must be at least 2, got %d", c.NumNodes)
	}
	if c.NumEdges < 0 {
		return fmt.Errorf("edges must not be negative, got %d", c.NumEdges)
	}
	if c.AI && c.GeminiAPIKey == "" {
		return errors.New("GEMINI_API_KEY environment variable is not set")
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}
