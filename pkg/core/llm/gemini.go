package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider implements the Provider interface for Google's Gemini
// models through the official GenAI SDK.
type GeminiProvider struct {
	Model string // e.g. "gemini-2.5-flash"
}

// Ensure interface compliance
var _ Provider = (*GeminiProvider)(nil)

func (p *GeminiProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if val, ok := options["api_key"].(string); ok && val != "" {
		apiKey = val
	}
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY_MISSING: set GEMINI_API_KEY env var")
	}

	model := p.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if val, ok := options["model"].(string); ok && val != "" {
		model = val
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("GEMINI_CLIENT_ERROR: %w", err)
	}

	// Clinical extraction wants deterministic output
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.1)),
	}

	if wantsJSON(options, systemPrompt) {
		config.ResponseMIMEType = "application/json"
	}

	if systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{
				{Text: systemPrompt},
			},
		}
	}

	result, err := client.Models.GenerateContent(
		ctx,
		model,
		genai.Text(prompt),
		config,
	)
	if err != nil {
		return "", fmt.Errorf("GEMINI_GENERATION_ERROR: %w", err)
	}

	return result.Text(), nil
}

func (p *GeminiProvider) AdaptInstructions(raw string) string {
	return raw
}

// wantsJSON decides whether the reply must be a bare JSON object, either
// from an explicit response_format option or from the prompt itself.
func wantsJSON(options map[string]interface{}, systemPrompt string) bool {
	if val, ok := options["response_format"].(map[string]interface{}); ok {
		return val["type"] == "json_object"
	}
	return strings.Contains(strings.ToLower(systemPrompt), "json")
}
