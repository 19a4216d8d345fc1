package main

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/tatianab/artifact-quest/internal/config"
	"github.com/tatianab/artifact-quest/internal/dice"
	"github.com/tatianab/artifact-quest/internal/engine"
	"github.com/tatianab/artifact-quest/internal/logger"
	"github.com/tatianab/artifact-quest/internal/models"
	"github.com/tatianab/artifact-quest/internal/narration"
	"github.com/tatianab/artifact-quest/internal/world"
)

const (
	numGames = 1000
	maxTurns = 200
	// The bot drinks a potion when health falls below this.
	potionThreshold = 40
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	logger.Setup(cfg)

	catalog, err := narration.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load flavor text: %v", err)
	}

	src, seed := dice.NewTimeSource()
	fmt.Printf("--- Simulating %d games (seed %d, %d nodes, %d edge attempts) ---\n", numGames, seed, cfg.NumNodes, cfg.NumEdges)

	outcomes := map[models.Status]int{}
	totalMoves := 0
	for i := 0; i < numGames; i++ {
		g, err := world.Generate(src, cfg.NumNodes, cfg.NumEdges)
		if err != nil {
			log.Fatalf("Failed to generate world: %v", err)
		}
		eng := engine.NewEngine(g, src, &narration.Recorder{}, catalog)
		status := playGame(ctx, eng, src)
		outcomes[status]++
		totalMoves += eng.State().Moves
	}

	statuses := make([]string, 0, len(outcomes))
	for s := range outcomes {
		statuses = append(statuses, string(s))
	}
	sort.Strings(statuses)
	for _, s := range statuses {
		n := outcomes[models.Status(s)]
		fmt.Printf("%-13s %5d (%.1f%%)\n", s, n, 100*float64(n)/numGames)
	}
	fmt.Printf("Average moves: %.2f\n", float64(totalMoves)/numGames)
}

// playGame plays with a random policy, drinking potions when low.
func playGame(ctx context.Context, eng *engine.Engine, src dice.Source) models.Status {
	status := eng.Start()
	for turn := 0; turn < maxTurns && !status.Terminal(); turn++ {
		state := eng.State()
		if state.Health < potionThreshold && state.Inventory[models.HealthPotion] > 0 {
			eng.Input(ctx, fmt.Sprint(engine.ChoiceUseItem))
			status = eng.Input(ctx, "1")
			continue
		}
		edges := eng.World().Edges(state.Node)
		status = eng.Input(ctx, fmt.Sprint(src.Intn(len(edges))+1))
	}
	if !status.Terminal() {
		status = eng.Quit()
	}
	return status
}
