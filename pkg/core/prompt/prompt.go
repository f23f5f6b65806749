// Package prompt provides a centralized prompt library for LLM interactions.
// Section prompts ship as hardcoded defaults and can be overridden by JSON
// files under resources/prompts, making it easy to tune wording without
// code changes.
package prompt

// PromptTemplate represents a reusable prompt with metadata
type PromptTemplate struct {
	ID           string `json:"id"`            // Unique identifier (e.g., "section.culturas")
	Name         string `json:"name"`          // Human-readable name
	Category     string `json:"category"`      // Category (section, rewrite, ...)
	Description  string `json:"description"`   // Description of prompt purpose
	SystemPrompt string `json:"system_prompt"` // The system prompt content
	UserPrefix   string `json:"user_prefix"`   // Prefix prepended to the pasted note text
	JSONReply    bool   `json:"json_reply"`    // Whether the reply must be a bare JSON object
	Version      string `json:"version"`       // Version for tracking changes
}
