package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tatianab/artifact-quest/internal/config"
	"github.com/tatianab/artifact-quest/internal/models"
	"github.com/tatianab/artifact-quest/internal/narration"
	"github.com/tatianab/artifact-quest/internal/world"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	nodeStyle   = lipgloss.NewStyle().Bold(true)
	deadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	routeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

func newMapCmd(cfg *config.Config) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Print a generated world without playing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			src, seed := newSource(cfg)
			g, err := world.Generate(src, cfg.NumNodes, cfg.NumEdges)
			if err != nil {
				return fmt.Errorf("generating world: %w", err)
			}

			if asYAML {
				data, err := g.YAML()
				if err != nil {
					return fmt.Errorf("encoding world: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			catalog, err := narration.LoadCatalog()
			if err != nil {
				return fmt.Errorf("loading flavor text: %w", err)
			}
			return printMap(cmd.OutOrStdout(), g, catalog, seed)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the world as YAML")
	return cmd
}

func printMap(w io.Writer, g *world.Graph, catalog *narration.Catalog, seed uint64) error {
	goal := g.Size()
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("World %d: %d locations, %d paths", seed, g.Size(), g.EdgeCount())))
	b.WriteString("\n\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "%s %s\n", nodeStyle.Render(fmt.Sprintf("%2d", n.ID)), catalog.Name(n.ID, goal))
		if len(n.Edges) == 0 && n.ID != goal {
			b.WriteString("    " + deadStyle.Render("dead end") + "\n")
		}
		for _, e := range n.Edges {
			fmt.Fprintf(&b, "    -> %d (cost %d)\n", e.To, e.Weight)
		}
	}
	b.WriteString("\n")

	if !g.Reachable(models.StartNode, goal) {
		b.WriteString(deadStyle.Render("The temple cannot be reached from the start.") + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	path, cost, _ := g.CheapestRoute(models.StartNode, goal)
	steps := make([]string, len(path))
	for i, id := range path {
		steps[i] = fmt.Sprint(id)
	}
	b.WriteString(routeStyle.Render(fmt.Sprintf("Cheapest route: %s (cost %d)", strings.Join(steps, " -> "), cost)) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}
