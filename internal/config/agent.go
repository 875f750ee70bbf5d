package config

import (
	"fmt"
	"os"
	"strconv"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

const (
	EnvAgentProviderName = "FORMATIO_AGENT_PROVIDER_NAME"
	EnvAgentBaseURL      = "FORMATIO_AGENT_BASE_URL"
	EnvAgentToken        = "FORMATIO_AGENT_TOKEN"
	EnvAgentDeployment   = "FORMATIO_AGENT_DEPLOYMENT"
	EnvAgentAPIVersion   = "FORMATIO_AGENT_API_VERSION"
	EnvAgentAuthType     = "FORMATIO_AGENT_AUTH_TYPE"
	EnvAgentModelName    = "FORMATIO_AGENT_MODEL_NAME"
	EnvAgentTemperature  = "FORMATIO_AGENT_TEMPERATURE"
)

// DefaultTemperature keeps generation output close to the schema the
// prompts dictate. Document generation wants consistency, not creativity.
const DefaultTemperature = 0.3

// FinalizeAgent applies defaults from go-agents DefaultAgentConfig,
// environment variable overrides, and validation to an AgentConfig.
func FinalizeAgent(c *gaconfig.AgentConfig) error {
	loadAgentDefaults(c)
	loadAgentEnv(c)
	return validateAgent(c)
}

func loadAgentDefaults(c *gaconfig.AgentConfig) {
	defaults := gaconfig.DefaultAgentConfig()
	defaults.Merge(c)
	*c = defaults
}

func loadAgentEnv(c *gaconfig.AgentConfig) {
	if c.Provider == nil {
		c.Provider = &gaconfig.ProviderConfig{}
	}
	if c.Provider.Options == nil {
		c.Provider.Options = make(map[string]any)
	}
	if c.Model == nil {
		c.Model = &gaconfig.ModelConfig{}
	}
	if c.Model.Capabilities == nil {
		c.Model.Capabilities = make(map[string]map[string]any)
	}
	if c.Model.Capabilities["chat"] == nil {
		c.Model.Capabilities["chat"] = make(map[string]any)
	}
	if _, ok := c.Model.Capabilities["chat"]["temperature"]; !ok {
		c.Model.Capabilities["chat"]["temperature"] = DefaultTemperature
	}
	if v := os.Getenv(EnvAgentTemperature); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			c.Model.Capabilities["chat"]["temperature"] = t
		}
	}
	if v := os.Getenv(EnvAgentProviderName); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv(EnvAgentModelName); v != "" {
		c.Model.Name = v
	}

	setOption := func(envVar, key string) {
		if v := os.Getenv(envVar); v != "" {
			c.Provider.Options[key] = v
		}
	}

	setOption(EnvAgentToken, "token")
	setOption(EnvAgentDeployment, "deployment")
	setOption(EnvAgentAPIVersion, "api_version")
	setOption(EnvAgentAuthType, "auth_type")
}

func validateAgent(c *gaconfig.AgentConfig) error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.Provider == nil {
		return fmt.Errorf("provider required")
	}
	if c.Provider.Name == "" {
		return fmt.Errorf("provider name required")
	}
	if c.Model == nil {
		return fmt.Errorf("model required")
	}
	return nil
}
