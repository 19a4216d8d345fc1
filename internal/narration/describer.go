package narration

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

//go:embed prompts/describe_location.txt
var describeLocationPrompt string

const geminiModel = "gemini-2.5-flash"

// Describer supplies the text shown when the player arrives at a node.
type Describer interface {
	Describe(ctx context.Context, id, goal int) (string, error)
}

// contentGenerator is the part of *genai.GenerativeModel the describer uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiDescriber asks Gemini for a fresh description of each location,
// using the catalog text as a hint. Descriptions are cached per node so a
// revisited place reads the same. When Gemini fails the catalog text is used.
type GeminiDescriber struct {
	client  *genai.Client
	model   contentGenerator
	tmpl    *template.Template
	catalog *Catalog
	cache   map[int]string
	logger  *slog.Logger
}

// NewGeminiDescriber connects to Gemini with apiKey.
func NewGeminiDescriber(ctx context.Context, apiKey string, catalog *Catalog, logger *slog.Logger) (*GeminiDescriber, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	d, err := newGeminiDescriber(client.GenerativeModel(geminiModel), catalog, logger)
	if err != nil {
		client.Close()
		return nil, err
	}
	d.client = client
	return d, nil
}

func newGeminiDescriber(model contentGenerator, catalog *Catalog, logger *slog.Logger) (*GeminiDescriber, error) {
	tmpl, err := template.New("describe_location").Parse(describeLocationPrompt)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GeminiDescriber{
		model:   model,
		tmpl:    tmpl,
		catalog: catalog,
		cache:   make(map[int]string),
		logger:  logger,
	}, nil
}

func (d *GeminiDescriber) Close() {
	if d.client != nil {
		d.client.Close()
	}
}

func (d *GeminiDescriber) Describe(ctx context.Context, id, goal int) (string, error) {
	if text, ok := d.cache[id]; ok {
		return text, nil
	}

	hint := d.catalog.Location(id, goal)
	text, err := d.generate(ctx, id, goal, hint)
	if err != nil {
		d.logger.Warn("gemini describe failed, using catalog text", "node", id, "error", err.Error())
		return hint, nil
	}
	d.cache[id] = text
	return text, nil
}

func (d *GeminiDescriber) generate(ctx context.Context, id, goal int, hint string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Node   int
		Goal   int
		IsGoal bool
		Hint   string
	}{
		Node:   id,
		Goal:   goal,
		IsGoal: id == goal,
		Hint:   hint,
	}
	if err := d.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	resp, err := d.model.GenerateContent(ctx, genai.Text(buf.String()))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	part := resp.Candidates[0].Content.Parts[0]
	text, ok := part.(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}

	out := strings.TrimSpace(string(text))
	out = strings.Trim(out, "\"`")
	if out == "" {
		return "", fmt.Errorf("empty description from Gemini")
	}
	return out, nil
}
