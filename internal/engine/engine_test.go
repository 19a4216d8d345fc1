package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/artifact-quest/internal/dice"
	"github.com/tatianab/artifact-quest/internal/models"
	"github.com/tatianab/artifact-quest/internal/narration"
	"github.com/tatianab/artifact-quest/internal/world"
)

const sage = 2 // draw for the no-effect event

// lineGraph is 1 -(30)-> 2 -(5)-> 4, with node 3 a dead end reachable from 2.
func lineGraph(t *testing.T) *world.Graph {
	t.Helper()
	g := world.NewGraph(4)
	require.NoError(t, g.AddEdge(1, 2, 30))
	require.NoError(t, g.AddEdge(2, 4, 5))
	require.NoError(t, g.AddEdge(2, 3, 1))
	return g
}

func newTestEngine(t *testing.T, g *world.Graph, draws ...int) (*Engine, *narration.Recorder) {
	t.Helper()
	catalog, err := narration.LoadCatalog()
	require.NoError(t, err)
	rec := &narration.Recorder{}
	e := NewEngine(g, dice.NewScripted(draws...), rec, catalog)
	require.Equal(t, models.StatusPlaying, e.Start())
	return e, rec
}

func TestMoveWithNoEffectEvent(t *testing.T) {
	e, _ := newTestEngine(t, lineGraph(t), sage)

	status := e.Input(context.Background(), "1")
	assert.Equal(t, models.StatusPlaying, status)
	assert.Equal(t, 70, e.State().Health)
	assert.Equal(t, 2, e.State().Node)
	assert.Equal(t, 1, e.State().Moves)
}

func TestMoveLosesHealth(t *testing.T) {
	g := world.NewGraph(3)
	require.NoError(t, g.AddEdge(1, 2, 15))
	e, rec := newTestEngine(t, g, sage)
	e.State().Health = 10

	assert.Equal(t, models.StatusLostHealth, e.Input(context.Background(), "1"))
	assert.Equal(t, -5, e.State().Health)
	assert.True(t, rec.Contains("ran out of health"))
}

func TestReachGoalWins(t *testing.T) {
	e, rec := newTestEngine(t, lineGraph(t), sage, sage)

	e.Input(context.Background(), "1")
	assert.Equal(t, models.StatusWon, e.Input(context.Background(), "1"))
	assert.Equal(t, 4, e.State().Node)
	assert.Equal(t, 65, e.State().Health)
	assert.True(t, rec.Contains("Temple of Eternity"))
}

func TestDyingOnTheGoalIsALoss(t *testing.T) {
	e, _ := newTestEngine(t, lineGraph(t), sage, int(EventTrap))
	e.Input(context.Background(), "1")
	e.State().Health = 20

	assert.Equal(t, models.StatusLostHealth, e.Input(context.Background(), "1"))
	assert.Equal(t, 0, e.State().Health)
}

func TestQuit(t *testing.T) {
	e, rec := newTestEngine(t, lineGraph(t))
	before := *e.State()

	assert.Equal(t, models.StatusQuit, e.Input(context.Background(), "0"))
	assert.Equal(t, before.Node, e.State().Node)
	assert.Equal(t, before.Health, e.State().Health)
	assert.True(t, rec.Contains("quit"))

	assert.Equal(t, models.StatusQuit, e.Input(context.Background(), "1"), "no moves after the game ends")
	assert.Equal(t, models.StartNode, e.State().Node)
}

func TestBadInputTwiceThenValid(t *testing.T) {
	// First bad token is penalised, second is not, then the move rolls a sage.
	e, rec := newTestEngine(t, lineGraph(t), 0, 1, sage)

	e.Input(context.Background(), "north")
	assert.Equal(t, 95, e.State().Health)
	e.Input(context.Background(), "!!")
	assert.Equal(t, 95, e.State().Health)
	assert.True(t, rec.Contains("Invalid input"))

	assert.Equal(t, models.StatusPlaying, e.Input(context.Background(), " 1 "))
	assert.Equal(t, 2, e.State().Node)
	assert.Equal(t, 65, e.State().Health)
}

func TestBadInputCanKill(t *testing.T) {
	e, _ := newTestEngine(t, lineGraph(t), 0)
	e.State().Health = 5
	assert.Equal(t, models.StatusLostHealth, e.Input(context.Background(), "x"))
}

func TestOutOfRangeChoices(t *testing.T) {
	e, rec := newTestEngine(t, lineGraph(t))

	for _, in := range []string{"2", "-2", "99"} {
		rec.Drain()
		assert.Equal(t, models.StatusPlaying, e.Input(context.Background(), in))
		assert.True(t, rec.Contains("Invalid choice"), in)
	}
	assert.Equal(t, models.MaxHealth, e.State().Health)
	assert.Equal(t, models.StartNode, e.State().Node)
}

func TestUseItemOnEmptyInventory(t *testing.T) {
	e, rec := newTestEngine(t, lineGraph(t))
	rec.Drain()

	e.Input(context.Background(), "-1")
	assert.True(t, rec.Contains("inventory is empty"))
	assert.Equal(t, PhaseChoosePath, e.Phase())
	assert.Equal(t, models.MaxHealth, e.State().Health)
	assert.Empty(t, e.State().Inventory)
}

func TestUsePotion(t *testing.T) {
	e, rec := newTestEngine(t, lineGraph(t))
	e.State().Health = 50
	e.State().Inventory[models.HealthPotion] = 2

	e.Input(context.Background(), "-1")
	assert.Equal(t, PhaseChooseItem, e.Phase())
	assert.True(t, rec.Contains("1. Health Potion (x2)"))

	e.Input(context.Background(), "1")
	assert.Equal(t, PhaseChoosePath, e.Phase())
	assert.Equal(t, 70, e.State().Health)
	assert.Equal(t, 1, e.State().Inventory[models.HealthPotion])

	e.State().Health = 90
	e.Input(context.Background(), "-1")
	e.Input(context.Background(), "1")
	assert.Equal(t, models.MaxHealth, e.State().Health)
	_, ok := e.State().Inventory[models.HealthPotion]
	assert.False(t, ok)
}

func TestItemSelectionErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"cancel", "0", "chose not to use"},
		{"out of range", "3", "Invalid choice"},
		{"negative", "-1", "Invalid choice"},
		{"not a number", "potion", "Invalid choice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newTestEngine(t, lineGraph(t))
			e.State().Health = 40
			e.State().Inventory[models.HealthPotion] = 1

			e.Input(context.Background(), "-1")
			rec.Drain()
			e.Input(context.Background(), tt.input)

			assert.True(t, rec.Contains(tt.want))
			assert.Equal(t, 40, e.State().Health)
			assert.Equal(t, 1, e.State().Inventory[models.HealthPotion])
			assert.Equal(t, PhaseChoosePath, e.Phase())
		})
	}
}

func TestRandomEvents(t *testing.T) {
	e, _ := newTestEngine(t, lineGraph(t), int(EventPotion), int(EventTrap), int(EventSage))

	assert.Equal(t, EventPotion, e.RandomEvent())
	assert.Equal(t, 1, e.State().Inventory[models.HealthPotion])
	assert.Equal(t, models.MaxHealth, e.State().Health)

	assert.Equal(t, EventTrap, e.RandomEvent())
	assert.Equal(t, 85, e.State().Health)

	assert.Equal(t, EventSage, e.RandomEvent())
	assert.Equal(t, 85, e.State().Health)
}

func TestTrappedAfterMove(t *testing.T) {
	e, rec := newTestEngine(t, lineGraph(t), sage, sage)
	e.Input(context.Background(), "1")
	assert.Equal(t, models.StatusLostTrapped, e.Input(context.Background(), "2"))
	assert.Equal(t, 3, e.State().Node)
	assert.True(t, rec.Contains("trapped"))
}

func TestTrappedAtStart(t *testing.T) {
	catalog, err := narration.LoadCatalog()
	require.NoError(t, err)
	g := world.NewGraph(3)
	require.NoError(t, g.AddEdge(2, 3, 1))

	e := NewEngine(g, dice.NewScripted(), &narration.Recorder{}, catalog)
	assert.Equal(t, models.StatusLostTrapped, e.Start())
}

func TestMenuMatchesEdgeOrder(t *testing.T) {
	g := world.NewGraph(4)
	require.NoError(t, g.AddEdge(1, 3, 9))
	require.NoError(t, g.AddEdge(1, 2, 4))
	require.NoError(t, g.AddEdge(1, 3, 2))
	e, rec := newTestEngine(t, g, sage)

	var menu []string
	for _, l := range rec.Lines {
		if l.Kind == narration.KindMenu {
			menu = append(menu, l.Text)
		}
	}
	assert.Equal(t, []string{
		"Connections from here:",
		"1. Node 3 (Cost: 9)",
		"2. Node 2 (Cost: 4)",
		"3. Node 3 (Cost: 2)",
	}, menu)

	e.Input(context.Background(), "3")
	assert.Equal(t, 98, e.State().Health, "duplicate edges keep their own weights")
}

type failingDescriber struct{}

func (failingDescriber) Describe(context.Context, int, int) (string, error) {
	return "", errors.New("offline")
}

func TestDescriberFailureFallsBackToCatalog(t *testing.T) {
	e, rec := newTestEngine(t, lineGraph(t), sage)
	e.WithDescriber(failingDescriber{})

	e.Input(context.Background(), "1")
	assert.True(t, rec.Contains("dense jungle"))
}

func TestHealthNeverAboveMax(t *testing.T) {
	src := dice.NewSource(3)
	catalog, err := narration.LoadCatalog()
	require.NoError(t, err)

	for game := 0; game < 50; game++ {
		g, err := world.Generate(src, 10, 20)
		require.NoError(t, err)
		e := NewEngine(g, src, &narration.Recorder{}, catalog)
		e.Start()
		for turn := 0; turn < 200 && !e.Status().Terminal(); turn++ {
			var in string
			switch src.Intn(4) {
			case 0:
				in = "-1"
			case 1:
				in = "1"
			default:
				in = fmt.Sprint(src.Intn(len(e.World().Edges(e.State().Node))+1) + 1)
			}
			e.Input(context.Background(), in)
			if e.Phase() == PhaseChooseItem {
				e.Input(context.Background(), "1")
			}
			require.LessOrEqual(t, e.State().Health, models.MaxHealth)
		}
	}
}
