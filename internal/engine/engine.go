package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tatianab/artifact-quest/internal/dice"
	"github.com/tatianab/artifact-quest/internal/logger"
	"github.com/tatianab/artifact-quest/internal/models"
	"github.com/tatianab/artifact-quest/internal/narration"
	"github.com/tatianab/artifact-quest/internal/world"
)

const (
	ChoiceQuit    = 0
	ChoiceUseItem = -1

	BadInputPenalty = 5
	TrapDamage      = 15
	PotionHealing   = 20
)

// Phase says what kind of answer the engine is waiting for.
type Phase int

const (
	PhaseChoosePath Phase = iota
	PhaseChooseItem
)

// Event is the outcome rolled after every move.
type Event int

const (
	EventPotion Event = iota
	EventTrap
	EventSage
	numEvents
)

// Engine runs one game: it owns the state and applies the player's answers.
// It is not safe for concurrent use.
type Engine struct {
	world     *world.Graph
	state     *models.GameState
	rng       dice.Source
	out       narration.Narrator
	catalog   *narration.Catalog
	describer narration.Describer
	logger    *slog.Logger
	phase     Phase
}

// NewEngine starts a fresh game on g. Location text comes from the catalog
// unless a describer is set with WithDescriber.
func NewEngine(g *world.Graph, rng dice.Source, out narration.Narrator, catalog *narration.Catalog) *Engine {
	state := models.NewGameState()
	return &Engine{
		world:     g,
		state:     state,
		rng:       rng,
		out:       out,
		catalog:   catalog,
		describer: catalog,
		logger:    logger.WithSessionID(slog.Default(), state.SessionID),
	}
}

// WithDescriber swaps the source of location descriptions.
func (e *Engine) WithDescriber(d narration.Describer) *Engine {
	e.describer = d
	return e
}

// WithLogger sets the logger; the session id is attached automatically.
func (e *Engine) WithLogger(l *slog.Logger) *Engine {
	e.logger = logger.WithSessionID(l, e.state.SessionID)
	return e
}

func (e *Engine) State() *models.GameState { return e.state }

func (e *Engine) World() *world.Graph { return e.world }

func (e *Engine) Catalog() *narration.Catalog { return e.catalog }

func (e *Engine) Phase() Phase { return e.phase }

func (e *Engine) Status() models.Status { return e.state.Status }

func (e *Engine) goal() int { return e.world.Size() }

// Intro narrates the title, story, goal and mechanics.
func (e *Engine) Intro() error {
	lines, err := e.catalog.Intro(narration.IntroData{
		Start:  models.StartNode,
		Goal:   e.goal(),
		Health: models.MaxHealth,
	})
	if err != nil {
		return fmt.Errorf("failed to render intro: %w", err)
	}
	for _, l := range lines {
		e.out.Narrate(narration.KindStory, l)
	}
	return nil
}

// Start shows the first menu. The game may already be over if the start
// node has no way out.
func (e *Engine) Start() models.Status {
	e.logger.Debug("game started", "nodes", e.world.Size(), "edges", e.world.EdgeCount())
	e.present()
	return e.state.Status
}

// Input feeds one line typed by the player.
func (e *Engine) Input(ctx context.Context, line string) models.Status {
	if e.state.Status.Terminal() {
		return e.state.Status
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	switch {
	case e.phase == PhaseChooseItem && err != nil:
		e.out.Narrate(narration.KindWarning, e.catalog.Events.BadChoice)
		e.phase = PhaseChoosePath
	case e.phase == PhaseChooseItem:
		e.SelectItem(n)
	case err != nil:
		e.BadInput()
	default:
		e.Choose(ctx, n)
	}

	if !e.state.Status.Terminal() && e.phase == PhaseChoosePath {
		e.present()
	}
	return e.state.Status
}

// Choose applies a numeric menu answer: 0 quits, -1 opens the inventory,
// 1..len(edges) travels, anything else is rejected.
func (e *Engine) Choose(ctx context.Context, choice int) models.Status {
	edges := e.world.Edges(e.state.Node)

	switch {
	case choice == ChoiceQuit:
		e.finish(models.StatusQuit)
	case choice == ChoiceUseItem:
		e.OpenInventory()
	case choice < 1 || choice > len(edges):
		e.logger.Debug("choice out of range", "choice", choice, "options", len(edges))
		e.out.Narrate(narration.KindWarning, e.catalog.Events.BadChoice)
	default:
		e.move(ctx, edges[choice-1])
	}
	return e.state.Status
}

// BadInput handles a non-numeric answer: half the time it costs health.
func (e *Engine) BadInput() models.Status {
	e.out.Narrate(narration.KindWarning, e.catalog.Events.BadInput)
	if e.rng.Intn(2) == 0 {
		e.state.Hurt(BadInputPenalty)
		e.out.Narrate(narration.KindEvent, e.catalog.Events.Drain)
		e.logger.Debug("bad input penalty", "health", e.state.Health)
	}
	if e.state.Dead() {
		e.finish(models.StatusLostHealth)
	}
	return e.state.Status
}

// Quit ends the game at the player's request, e.g. when input runs out.
func (e *Engine) Quit() models.Status {
	if !e.state.Status.Terminal() {
		e.finish(models.StatusQuit)
	}
	return e.state.Status
}

func (e *Engine) move(ctx context.Context, edge world.Edge) {
	from := e.state.Node
	e.state.Node = edge.To
	e.state.Hurt(edge.Weight)
	e.state.Moves++
	e.logger.Debug("moved", "from", from, "to", edge.To, "cost", edge.Weight, "health", e.state.Health)

	e.out.Narrate(narration.KindStory, e.catalog.Arrival)
	desc, err := e.describer.Describe(ctx, edge.To, e.goal())
	if err != nil {
		logger.WithError(e.logger, err).Warn("describe failed", "node", edge.To)
		desc = e.catalog.Location(edge.To, e.goal())
	}
	e.out.Narrate(narration.KindStory, desc)

	e.RandomEvent()

	switch {
	case e.state.Dead():
		e.finish(models.StatusLostHealth)
	case e.state.Node == e.goal():
		e.finish(models.StatusWon)
	}
}

// RandomEvent rolls and applies one of the post-move events.
func (e *Engine) RandomEvent() Event {
	ev := Event(e.rng.Intn(int(numEvents)))
	switch ev {
	case EventPotion:
		e.state.Inventory.Add(models.HealthPotion)
		e.out.Narrate(narration.KindEvent, e.catalog.Events.Potion)
	case EventTrap:
		e.state.Hurt(TrapDamage)
		e.out.Narrate(narration.KindEvent, e.catalog.Events.Trap)
	case EventSage:
		e.out.Narrate(narration.KindEvent, e.catalog.Events.Sage)
	}
	e.logger.Debug("random event", "event", int(ev), "health", e.state.Health)
	return ev
}

// OpenInventory lists the items and waits for a selection. With nothing to
// use it only says so.
func (e *Engine) OpenInventory() {
	names := e.state.Inventory.Names()
	if len(names) == 0 {
		e.out.Narrate(narration.KindWarning, e.catalog.Events.EmptyInventory)
		return
	}

	e.out.Narrate(narration.KindMenu, "Inventory:")
	for i, name := range names {
		e.out.Narrate(narration.KindMenu, fmt.Sprintf("%d. %s (x%d)", i+1, name, e.state.Inventory[name]))
	}
	e.out.Narrate(narration.KindPrompt, "Enter the number of the item to use (or 0 to cancel):")
	e.phase = PhaseChooseItem
}

// SelectItem uses the item at 1-based position sel in the inventory listing.
func (e *Engine) SelectItem(sel int) {
	e.phase = PhaseChoosePath
	names := e.state.Inventory.Names()

	switch {
	case sel == 0:
		e.out.Narrate(narration.KindStory, e.catalog.Events.CancelItem)
		return
	case sel < 1 || sel > len(names):
		e.out.Narrate(narration.KindWarning, e.catalog.Events.BadChoice)
		return
	}

	name := names[sel-1]
	if name == models.HealthPotion {
		e.state.Heal(PotionHealing)
		e.out.Narrate(narration.KindEvent, e.catalog.Events.UsedPotion)
	}
	e.state.Inventory.Take(name)
	e.logger.Debug("used item", "item", name, "health", e.state.Health)
}

// present shows where the player is and the paths out, or ends the game
// when there are none.
func (e *Engine) present() {
	e.out.Narrate(narration.KindStatus, fmt.Sprintf("You are at node %d. Your health: %d", e.state.Node, e.state.Health))

	edges := e.world.Edges(e.state.Node)
	if len(edges) == 0 {
		e.finish(models.StatusLostTrapped)
		return
	}

	e.out.Narrate(narration.KindMenu, "Connections from here:")
	for i, edge := range edges {
		e.out.Narrate(narration.KindMenu, fmt.Sprintf("%d. Node %d (Cost: %d)", i+1, edge.To, edge.Weight))
	}
	e.out.Narrate(narration.KindPrompt, "Choose a path by entering the number (or 0 to quit, -1 to use an item):")
}

func (e *Engine) finish(status models.Status) {
	e.state.Status = status
	e.phase = PhaseChoosePath

	kind, text := narration.KindDefeat, ""
	switch status {
	case models.StatusWon:
		kind, text = narration.KindVictory, e.catalog.Endings.Won
	case models.StatusLostHealth:
		text = e.catalog.Endings.LostHealth
	case models.StatusLostTrapped:
		text = e.catalog.Endings.LostTrapped
	case models.StatusQuit:
		text = e.catalog.Endings.Quit
	}
	e.out.Narrate(kind, text)
	e.logger.Info("game over", "status", string(status), "node", e.state.Node, "health", e.state.Health, "moves", e.state.Moves)
}
