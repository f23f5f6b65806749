package agent

import (
	"context"
	"fmt"

	"prontuario/pkg/core/llm"
	"prontuario/pkg/core/prompt"
)

type Config struct {
	ActiveProvider string                 `yaml:"active_provider"`
	Agents         map[string]AgentConfig `yaml:"agents"`
}

type AgentConfig struct {
	Provider    string `yaml:"provider"` // Optional override
	Model       string `yaml:"model"`    // Optional model override
	Description string `yaml:"description"`
}

type Manager struct {
	config    Config
	providers map[string]llm.Provider
}

func NewManager(config Config) *Manager {
	return &Manager{
		config: config,
		providers: map[string]llm.Provider{
			"gemini":        &llm.GeminiProvider{},
			"gemini-legacy": &llm.GeminiLegacyProvider{},
			"openai":        &llm.OpenAIProvider{},
			"deepseek":      &llm.DeepSeekProvider{},
		},
	}
}

// GetProvider resolves the provider for a section agent: the per-agent
// override first, then the global active provider, then Gemini.
func (m *Manager) GetProvider(agentID string) llm.Provider {
	if agentConfig, ok := m.config.Agents[agentID]; ok && agentConfig.Provider != "" {
		if p, ok := m.providers[agentConfig.Provider]; ok {
			return p
		}
	}

	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p
	}

	return m.providers["gemini"]
}

// GetProviderByName retrieves a provider instance by name (e.g. "gemini")
func (m *Manager) GetProviderByName(name string) llm.Provider {
	if p, ok := m.providers[name]; ok {
		return p
	}
	return nil
}

// ExecutePrompt loads the registered template for promptID, adapts it to
// the section's provider and sends the pasted text.
func (m *Manager) ExecutePrompt(ctx context.Context, agentID, promptID, texto string) (string, error) {
	pt, err := prompt.Get().GetPrompt(promptID)
	if err != nil {
		return "", fmt.Errorf("PROMPT_NOT_FOUND: %s: %v", promptID, err)
	}

	provider := m.GetProvider(agentID)
	systemPrompt := provider.AdaptInstructions(pt.SystemPrompt)

	options := map[string]interface{}{}
	if cfg, ok := m.config.Agents[agentID]; ok && cfg.Model != "" {
		options["model"] = cfg.Model
	}
	if pt.JSONReply {
		options["response_format"] = map[string]interface{}{"type": "json_object"}
	}

	return provider.GenerateResponse(ctx, pt.UserPrefix+texto, systemPrompt, options)
}

func (m *Manager) SetGlobalProvider(newProvider string) error {
	if _, ok := m.providers[newProvider]; !ok {
		return fmt.Errorf("provider %s not found", newProvider)
	}
	m.config.ActiveProvider = newProvider
	fmt.Printf("[AGENT] Global provider set to: %s\n", newProvider)
	return nil
}

func (m *Manager) GetActiveProvider() string {
	return m.config.ActiveProvider
}

// AgentConfigs exposes the per-agent overrides from the config file.
func (m *Manager) AgentConfigs() map[string]AgentConfig {
	return m.config.Agents
}
