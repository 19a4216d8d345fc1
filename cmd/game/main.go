package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tatianab/artifact-quest/internal/config"
	"github.com/tatianab/artifact-quest/internal/dice"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.LoadConfig()

	root := &cobra.Command{
		Use:          "artifact-quest",
		Short:        "Carry the sacred artifact back to the Temple of Eternity",
		Long:         `A terminal adventure on a randomly generated map. Every path costs health; reach the last node before yours runs out.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd.Context(), cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&cfg.NumNodes, "nodes", cfg.NumNodes, "number of locations in the world")
	flags.IntVar(&cfg.NumEdges, "edges", cfg.NumEdges, "number of random path attempts when building the world")
	flags.Uint64Var(&cfg.Seed, "seed", 0, "world seed (0 picks one from the clock)")

	root.Flags().BoolVar(&cfg.Fast, "fast", false, "print text immediately instead of typing it out")
	root.Flags().BoolVar(&cfg.TUI, "tui", false, "play in a full-screen terminal UI")
	root.Flags().BoolVar(&cfg.AI, "ai", false, "let Gemini describe locations (needs GEMINI_API_KEY)")

	root.AddCommand(newMapCmd(cfg))
	return root
}

func newSource(cfg *config.Config) (dice.Source, uint64) {
	if cfg.Seed != 0 {
		return dice.NewSource(cfg.Seed), cfg.Seed
	}
	return dice.NewTimeSource()
}
