package narration

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed flavor.yaml
var flavorYAML []byte

// Events holds the one-line messages the engine narrates.
type Events struct {
	Potion         string `yaml:"potion"`
	Trap           string `yaml:"trap"`
	Sage           string `yaml:"sage"`
	Drain          string `yaml:"drain"`
	BadInput       string `yaml:"bad_input"`
	BadChoice      string `yaml:"bad_choice"`
	EmptyInventory string `yaml:"empty_inventory"`
	CancelItem     string `yaml:"cancel_item"`
	UsedPotion     string `yaml:"used_potion"`
}

// Endings holds the message for each terminal state.
type Endings struct {
	Won         string `yaml:"won"`
	LostHealth  string `yaml:"lost_health"`
	LostTrapped string `yaml:"lost_trapped"`
	Quit        string `yaml:"quit"`
}

// Catalog is the game's flavor text.
type Catalog struct {
	Title           string         `yaml:"title"`
	Story           []string       `yaml:"story"`
	Goal            string         `yaml:"goal"`
	Mechanics       []string       `yaml:"mechanics"`
	Arrival         string         `yaml:"arrival"`
	Locations       map[int]string `yaml:"locations"`
	Names           map[int]string `yaml:"names"`
	GoalName        string         `yaml:"goal_name"`
	UnknownName     string         `yaml:"unknown_name"`
	GoalLocation    string         `yaml:"goal_location"`
	UnknownLocation string         `yaml:"unknown_location"`
	Events          Events         `yaml:"events"`
	Endings         Endings        `yaml:"endings"`
}

// IntroData fills the placeholders in Goal and Mechanics.
type IntroData struct {
	Start  int
	Goal   int
	Health int
}

// LoadCatalog parses the embedded flavor text.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(flavorYAML)
}

// ParseCatalog parses flavor text in the flavor.yaml layout.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse flavor YAML: %w", err)
	}
	return &c, nil
}

// Location returns the description of node id in a world whose goal is goal.
func (c *Catalog) Location(id, goal int) string {
	if id == goal {
		return c.GoalLocation
	}
	if text, ok := c.Locations[id]; ok {
		return text
	}
	return c.UnknownLocation
}

// Name returns the short, title-cased name of node id.
func (c *Catalog) Name(id, goal int) string {
	name, ok := c.Names[id]
	switch {
	case id == goal:
		name = c.GoalName
	case !ok:
		name = c.UnknownName
	}
	return cases.Title(language.English).String(name)
}

// Describe satisfies Describer using the static location table.
func (c *Catalog) Describe(_ context.Context, id, goal int) (string, error) {
	return c.Location(id, goal), nil
}

// Intro renders the title, story, goal and mechanics screens as lines.
func (c *Catalog) Intro(data IntroData) ([]string, error) {
	lines := []string{c.Title, "", "STORY:"}
	lines = append(lines, c.Story...)

	goal, err := render("goal", c.Goal, data)
	if err != nil {
		return nil, err
	}
	lines = append(lines, "", "GOAL:", goal, "", "MECHANICS:")

	for i, m := range c.Mechanics {
		text, err := render("mechanics", m, data)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, text))
	}
	return lines, nil
}

func render(name, text string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
