package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tatianab/artifact-quest/internal/engine"
	"github.com/tatianab/artifact-quest/internal/models"
	"github.com/tatianab/artifact-quest/internal/narration"
)

type sessionState int

const (
	stateIntro sessionState = iota
	statePlaying
	stateLoading
	stateOver
)

type model struct {
	state     sessionState
	engine    *engine.Engine
	rec       *narration.Recorder
	panel     panel
	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	width     int
	height    int
}

// panel is what the side panel shows. It is copied out of the engine by
// whoever is driving the engine at the time; View only ever reads the copy.
type panel struct {
	state    models.GameState
	phase    engine.Phase
	location string
	goal     int
}

func capture(eng *engine.Engine) panel {
	state := eng.State().Snapshot()
	goal := eng.World().Size()
	return panel{
		state:    state,
		phase:    eng.Phase(),
		location: eng.Catalog().Name(state.Node, goal),
		goal:     goal,
	}
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	menuStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAFF"))

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	victoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

// NewModel wraps an engine whose narrator is rec. The intro is already
// expected to be in rec.
func NewModel(eng *engine.Engine, rec *narration.Recorder) model {
	ti := textinput.New()
	ti.Placeholder = "Press enter to begin..."
	ti.Focus()
	ti.CharLimit = 16
	ti.Width = 40

	m := model{
		state:     stateIntro,
		engine:    eng,
		rec:       rec,
		panel:     capture(eng),
		textInput: ti,
		viewport:  viewport.New(60, 20),
		width:     80,
		height:    26,
	}
	m.appendLines(rec.Drain())
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type turnProcessedMsg struct {
	lines  []narration.Line
	status models.Status
	panel  panel
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			switch m.state {
			case stateIntro:
				m.gameLog = ""
				status := m.engine.Start()
				m.panel = capture(m.engine)
				m.appendLines(m.rec.Drain())
				m.textInput.Placeholder = "Path number, 0 to quit, -1 for items"
				m.textInput.Reset()
				m.setStatus(status)
				return m, nil

			case statePlaying:
				action := m.textInput.Value()
				m.textInput.Reset()
				m.gameLog += "\n" + userStyle.Width(m.logWidth()).Render("> "+action) + "\n\n"
				m.refresh()
				m.state = stateLoading
				return m, m.processTurn(action)

			case stateOver:
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.logWidth()
		m.viewport.Height = msg.Height - 6
		m.refresh()

	case turnProcessedMsg:
		m.panel = msg.panel
		m.appendLines(msg.lines)
		m.setStatus(msg.status)
		if m.panel.phase == engine.PhaseChooseItem {
			m.textInput.Placeholder = "Item number, 0 to cancel"
		} else {
			m.textInput.Placeholder = "Path number, 0 to quit, -1 for items"
		}
		return m, nil
	}

	if m.state == stateIntro || m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *model) setStatus(status models.Status) {
	if status.Terminal() {
		m.state = stateOver
		m.textInput.Placeholder = "Press enter to leave"
		return
	}
	m.state = statePlaying
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.75)
}

func (m *model) appendLines(lines []narration.Line) {
	width := m.logWidth()
	for _, l := range lines {
		text := wordwrap.String(l.Text, width)
		var styled string
		switch l.Kind {
		case narration.KindMenu, narration.KindPrompt, narration.KindStatus:
			styled = menuStyle.Render(text)
		case narration.KindEvent:
			styled = eventStyle.Render(text)
		case narration.KindWarning, narration.KindDefeat:
			styled = warningStyle.Render(text)
		case narration.KindVictory:
			styled = victoryStyle.Render(text)
		default:
			styled = gameStyle.Render(text)
		}
		m.gameLog += styled + "\n"
	}
	m.refresh()
}

func (m *model) refresh() {
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateIntro:
		s = lipgloss.JoinVertical(lipgloss.Left,
			m.viewport.View(),
			"\n"+m.textInput.View(),
		)

	default:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderState(),
		)

		help := helpStyle.Render("Enter a path number, -1 to use an item, 0 to quit. Esc leaves at any time.")
		if m.state == stateLoading {
			help = helpStyle.Render("Travelling...")
		}

		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)
	}

	return "\n" + s + "\n"
}

func (m model) renderState() string {
	state := m.panel.state

	location := titleStyle.Render("LOCATION") + "\n" +
		m.panel.location + "\n" +
		fmt.Sprintf("Node %d of %d", state.Node, m.panel.goal) + "\n\n"

	statsTitle := titleStyle.Render("STATS") + "\n"
	stats := fmt.Sprintf("Health: %d/%d\nMoves: %d\n\n", state.Health, models.MaxHealth, state.Moves)

	invTitle := titleStyle.Render("INVENTORY") + "\n"
	var inventory strings.Builder
	names := state.Inventory.Names()
	if len(names) == 0 {
		inventory.WriteString("(empty)")
	}
	for _, name := range names {
		fmt.Fprintf(&inventory, "- %s x%d\n", name, state.Inventory[name])
	}

	content := location + statsTitle + stats + invTitle + inventory.String()

	stateWidth := int(float64(m.width) * 0.23) // Leave some room for padding
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

// processTurn runs the engine off the update loop. The model stays in
// stateLoading until the result arrives, so Update never drives the engine
// meanwhile, and View keeps drawing the panel captured before the turn.
func (m model) processTurn(action string) tea.Cmd {
	eng, rec := m.engine, m.rec
	return func() tea.Msg {
		status := eng.Input(context.Background(), action)
		return turnProcessedMsg{lines: rec.Drain(), status: status, panel: capture(eng)}
	}
}

// Run plays the game full screen.
func Run(eng *engine.Engine, rec *narration.Recorder) error {
	p := tea.NewProgram(NewModel(eng, rec), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
