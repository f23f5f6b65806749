package llm

import (
	"context"
	"fmt"
	"os"
)

// DeepSeekProvider reuses the OpenAI wire format against the DeepSeek
// endpoint. Useful as a cheaper extraction backend.
type DeepSeekProvider struct {
	Model string
}

var _ Provider = (*DeepSeekProvider)(nil)

func (p *DeepSeekProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	apiKey := os.Getenv("DEEPSEEK_API_KEY")
	if val, ok := options["api_key"].(string); ok && val != "" {
		apiKey = val
	}
	if apiKey == "" {
		return "", fmt.Errorf("DEEPSEEK_API_KEY_MISSING: set DEEPSEEK_API_KEY env var")
	}

	model := p.Model
	if model == "" {
		model = "deepseek-chat"
	}
	if val, ok := options["model"].(string); ok && val != "" {
		model = val
	}

	return chatCompletion(ctx, "https://api.deepseek.com/chat/completions", apiKey, "DEEPSEEK", chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.1,
		MaxTokens:      4096,
		ResponseFormat: formatFromOptions(options, systemPrompt),
	})
}

func (p *DeepSeekProvider) AdaptInstructions(raw string) string {
	return raw
}
