package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tatianab/artifact-quest/internal/config"
	"github.com/tatianab/artifact-quest/internal/console"
	"github.com/tatianab/artifact-quest/internal/engine"
	"github.com/tatianab/artifact-quest/internal/logger"
	"github.com/tatianab/artifact-quest/internal/narration"
	"github.com/tatianab/artifact-quest/internal/tui"
	"github.com/tatianab/artifact-quest/internal/world"
)

// play runs one game. Every way the game can end is a normal exit; only
// setup failures are returned.
func play(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	log := logger.Setup(cfg)

	src, seed := newSource(cfg)
	g, err := world.Generate(src, cfg.NumNodes, cfg.NumEdges)
	if err != nil {
		return fmt.Errorf("generating world: %w", err)
	}
	log.Debug("world generated", "seed", seed, "nodes", g.Size(), "edges", g.EdgeCount())

	catalog, err := narration.LoadCatalog()
	if err != nil {
		return fmt.Errorf("loading flavor text: %w", err)
	}

	var out narration.Narrator
	rec := &narration.Recorder{}
	tw := narration.NewTypewriter(os.Stdout, cfg.Fast, cfg.TextWidth)
	if cfg.TUI {
		out = rec
	} else {
		out = tw
	}

	eng := engine.NewEngine(g, src, out, catalog).WithLogger(log)
	if cfg.AI {
		d, err := narration.NewGeminiDescriber(ctx, cfg.GeminiAPIKey, catalog, log)
		if err != nil {
			return fmt.Errorf("creating describer: %w", err)
		}
		defer d.Close()
		eng.WithDescriber(d)
	}

	if err := eng.Intro(); err != nil {
		return err
	}

	if cfg.TUI {
		if err := tui.Run(eng, rec); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	}

	status := console.New(os.Stdin, out).Run(ctx, eng)
	if err := tw.Err(); err != nil {
		log.Warn("narration output failed", "error", err)
	}
	log.Debug("session finished", "status", string(status))
	return nil
}
