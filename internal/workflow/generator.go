package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Generator produces model output for a prompt. The production implementation
// wraps a go-agents agent; tests substitute scripted generators.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// defaultTemperature is the sampling fallback when the model config does
// not carry one. Structured output wants low variance.
const defaultTemperature = 0.3

// AgentGenerator sends prompts through a go-agents chat agent. A fresh agent
// is created per call so provider credentials are read at request time.
type AgentGenerator struct {
	config      gaconfig.AgentConfig
	temperature float64
}

// NewAgentGenerator validates the agent configuration and returns a
// chat-backed Generator. Returns ErrConfigMissing when the provider or model
// is unset.
func NewAgentGenerator(config gaconfig.AgentConfig) (*AgentGenerator, error) {
	if config.Provider == nil || config.Provider.BaseURL == "" {
		return nil, fmt.Errorf("%w: provider base URL is unset", ErrConfigMissing)
	}
	if config.Model == nil || config.Model.Name == "" {
		return nil, fmt.Errorf("%w: model name is unset", ErrConfigMissing)
	}

	temperature := defaultTemperature
	if t, ok := config.Model.Capabilities["chat"]["temperature"].(float64); ok {
		temperature = t
	}

	return &AgentGenerator{config: config, temperature: temperature}, nil
}

// Temperature reports the sampling temperature sent with every chat call.
func (g *AgentGenerator) Temperature() float64 {
	return g.temperature
}

func (g *AgentGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	a, err := agent.New(&g.config)
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	resp, err := a.Chat(ctx, prompt, map[string]any{"temperature": g.temperature})
	if err != nil {
		return "", fmt.Errorf("chat call: %w", err)
	}

	return resp.Text(), nil
}
