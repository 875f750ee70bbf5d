package workflow_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/formatio/formatio/internal/schema"
	"github.com/formatio/formatio/internal/workflow"
)

func agentConfig(baseURL, model string) gaconfig.AgentConfig {
	return gaconfig.AgentConfig{
		Name: "test-agent",
		Provider: &gaconfig.ProviderConfig{
			Name:    "ollama",
			BaseURL: baseURL,
		},
		Model: &gaconfig.ModelConfig{Name: model},
	}
}

// scriptedGenerator returns its responses in order, recording each prompt.
type scriptedGenerator struct {
	responses []string
	prompts   []string
	err       error
}

func (g *scriptedGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	if len(g.responses) == 0 {
		return "", nil
	}
	next := g.responses[0]
	g.responses = g.responses[1:]
	return next, nil
}

// testDocument requires a non-empty title to validate.
type testDocument struct {
	Title string `json:"title"`
}

type testContract struct{}

func (testContract) Kind() string          { return "test" }
func (testContract) WrapperKeys() []string { return []string{"data"} }
func (testContract) Prompt() string        { return "generate the document" }

func (testContract) RepairPrompt(issues, raw string) string {
	return "repair: " + issues + "\n" + raw
}

func (testContract) Decode(raw json.RawMessage) (any, schema.Issues, error) {
	var doc testDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, err
	}

	var is schema.Issues
	schema.Required(&is, "title", doc.Title)
	if len(is) > 0 {
		return nil, is, nil
	}
	return &doc, nil, nil
}

func runtime(g workflow.Generator) *workflow.Runtime {
	return &workflow.Runtime{
		Generator: g,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestExecuteFirstPassSuccess(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{`{"title": "Valid"}`}}

	result, err := workflow.Execute(context.Background(), runtime(gen), testContract{})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	doc, ok := result.Document.(*testDocument)
	if !ok {
		t.Fatalf("document type = %T", result.Document)
	}
	if doc.Title != "Valid" {
		t.Errorf("title = %q", doc.Title)
	}
	if result.Repaired {
		t.Error("first-pass success must not be marked repaired")
	}
	if len(gen.prompts) != 1 {
		t.Errorf("generator called %d times, want 1", len(gen.prompts))
	}
}

func TestExecuteUnwrapsWrapperKey(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{`{"data": {"title": "Nested"}}`}}

	result, err := workflow.Execute(context.Background(), runtime(gen), testContract{})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if doc := result.Document.(*testDocument); doc.Title != "Nested" {
		t.Errorf("title = %q", doc.Title)
	}
}

func TestExecuteEmptyOutput(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{"   \n"}}

	_, err := workflow.Execute(context.Background(), runtime(gen), testContract{})
	if !errors.Is(err, workflow.ErrEmptyOutput) {
		t.Errorf("error = %v, want ErrEmptyOutput", err)
	}
	if len(gen.prompts) != 1 {
		t.Errorf("generator called %d times, want 1 (no repair on empty output)", len(gen.prompts))
	}
}

func TestExecuteUnparseableOutput(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{"I cannot produce JSON today"}}

	_, err := workflow.Execute(context.Background(), runtime(gen), testContract{})
	if !errors.Is(err, workflow.ErrInvalidJSON) {
		t.Errorf("error = %v, want ErrInvalidJSON", err)
	}
	if len(gen.prompts) != 1 {
		t.Errorf("generator called %d times, want 1 (parse failure is terminal)", len(gen.prompts))
	}
}

func TestExecuteRepairSuccess(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{
		`{"title": ""}`,
		`{"title": "Repaired"}`,
	}}

	result, err := workflow.Execute(context.Background(), runtime(gen), testContract{})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if doc := result.Document.(*testDocument); doc.Title != "Repaired" {
		t.Errorf("title = %q, want the repaired document", doc.Title)
	}
	if !result.Repaired {
		t.Error("repair path must mark the result repaired")
	}
	if len(gen.prompts) != 2 {
		t.Fatalf("generator called %d times, want 2", len(gen.prompts))
	}
	if !strings.Contains(gen.prompts[1], "title: required") {
		t.Errorf("repair prompt missing flattened issues: %q", gen.prompts[1])
	}
	if !strings.Contains(gen.prompts[1], `{"title": ""}`) {
		t.Errorf("repair prompt missing failed output: %q", gen.prompts[1])
	}
}

func TestExecuteRepairStillInvalid(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{
		`{"title": ""}`,
		`{"title": ""}`,
	}}

	_, err := workflow.Execute(context.Background(), runtime(gen), testContract{})
	if !errors.Is(err, workflow.ErrRepairFailed) {
		t.Fatalf("error = %v, want ErrRepairFailed", err)
	}

	var ve *schema.ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("repair failure must carry a ValidationError")
	}
	if len(ve.Issues) == 0 {
		t.Error("ValidationError carries no issues")
	}
	if len(gen.prompts) != 2 {
		t.Errorf("generator called %d times, want exactly 2 (single repair pass)", len(gen.prompts))
	}
}

func TestExecuteRepairUnparseable(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{
		`{"title": ""}`,
		"still not json",
	}}

	_, err := workflow.Execute(context.Background(), runtime(gen), testContract{})
	if !errors.Is(err, workflow.ErrRepairFailed) {
		t.Errorf("error = %v, want ErrRepairFailed", err)
	}
}

func TestExecuteGeneratorError(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("provider unreachable")}

	_, err := workflow.Execute(context.Background(), runtime(gen), testContract{})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, workflow.ErrRepairFailed) {
		t.Error("transport failure before repair must not map to ErrRepairFailed")
	}
}

func TestNewAgentGenerator(t *testing.T) {
	_, err := workflow.NewAgentGenerator(agentConfig("", "model"))
	if !errors.Is(err, workflow.ErrConfigMissing) {
		t.Errorf("missing base URL: error = %v, want ErrConfigMissing", err)
	}

	_, err = workflow.NewAgentGenerator(agentConfig("http://localhost:11434", ""))
	if !errors.Is(err, workflow.ErrConfigMissing) {
		t.Errorf("missing model: error = %v, want ErrConfigMissing", err)
	}

	g, err := workflow.NewAgentGenerator(agentConfig("http://localhost:11434", "llama3.2"))
	if err != nil {
		t.Fatalf("valid config: %v", err)
	}
	if g.Temperature() != 0.3 {
		t.Errorf("temperature = %v, want 0.3", g.Temperature())
	}
}

func TestAgentGeneratorTemperatureFromConfig(t *testing.T) {
	cfg := agentConfig("http://localhost:11434", "llama3.2")
	cfg.Model.Capabilities = map[string]map[string]any{"chat": {"temperature": 0.1}}

	g, err := workflow.NewAgentGenerator(cfg)
	if err != nil {
		t.Fatalf("valid config: %v", err)
	}

	if g.Temperature() != 0.1 {
		t.Errorf("temperature = %v, want 0.1", g.Temperature())
	}
}
