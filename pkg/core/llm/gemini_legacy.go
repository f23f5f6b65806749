package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	legacy "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiLegacyProvider talks to Gemini through the older
// github.com/google/generative-ai-go SDK. Kept for environments pinned to
// that client; the default Gemini path is GeminiProvider.
type GeminiLegacyProvider struct {
	Model string
}

var _ Provider = (*GeminiLegacyProvider)(nil)

func (p *GeminiLegacyProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if val, ok := options["api_key"].(string); ok && val != "" {
		apiKey = val
	}
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY_MISSING: set GEMINI_API_KEY env var")
	}

	client, err := legacy.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("GEMINI_CLIENT_ERROR: %w", err)
	}
	defer client.Close()

	name := p.Model
	if name == "" {
		name = "gemini-2.5-flash"
	}
	if val, ok := options["model"].(string); ok && val != "" {
		name = val
	}

	model := client.GenerativeModel(name)
	model.SetTemperature(0.1)
	if wantsJSON(options, systemPrompt) {
		model.ResponseMIMEType = "application/json"
	}
	if systemPrompt != "" {
		model.SystemInstruction = &legacy.Content{
			Parts: []legacy.Part{legacy.Text(systemPrompt)},
		}
	}

	resp, err := model.GenerateContent(ctx, legacy.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("GEMINI_GENERATION_ERROR: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("GEMINI_EMPTY_RESPONSE")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(legacy.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}

func (p *GeminiLegacyProvider) AdaptInstructions(raw string) string {
	return raw
}
