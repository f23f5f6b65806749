package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// OpenAIProvider implements the Provider interface against the chat
// completions endpoint.
type OpenAIProvider struct {
	Model string // e.g. "gpt-4o"
}

var _ Provider = (*OpenAIProvider)(nil)

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Stream         bool            `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (p *OpenAIProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if val, ok := options["api_key"].(string); ok && val != "" {
		apiKey = val
	}
	if apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY_MISSING: set OPENAI_API_KEY env var")
	}

	model := p.Model
	if model == "" {
		model = "gpt-4o"
	}
	if val, ok := options["model"].(string); ok && val != "" {
		model = val
	}

	return chatCompletion(ctx, "https://api.openai.com/v1/chat/completions", apiKey, "OPENAI", chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.1,
		ResponseFormat: formatFromOptions(options, systemPrompt),
	})
}

func (p *OpenAIProvider) AdaptInstructions(raw string) string {
	return raw
}

// chatCompletion posts an OpenAI-style chat request and extracts the first
// choice. tag prefixes the UPPER_SNAKE error identifiers.
func chatCompletion(ctx context.Context, url, apiKey, tag string, reqBody chatRequest) (string, error) {
	jsonBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%s_MARSHAL_ERROR: %v", tag, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBytes))
	if err != nil {
		return "", fmt.Errorf("%s_REQ_CREATE_ERROR: %v", tag, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s_API_CALL_ERROR: %v", tag, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("%s_READ_BODY_ERROR: %v", tag, err)
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s_API_ERROR: status=%d body=%s", tag, res.StatusCode, string(body))
	}

	var response chatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("%s_UNMARSHAL_ERROR: %v", tag, err)
	}
	if response.Error != nil {
		return "", fmt.Errorf("%s_API_ERROR: %s (%s)", tag, response.Error.Message, response.Error.Type)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("%s_NO_CHOICES: %s", tag, string(body))
	}

	return response.Choices[0].Message.Content, nil
}

func formatFromOptions(options map[string]interface{}, systemPrompt string) *responseFormat {
	if wantsJSON(options, systemPrompt) {
		return &responseFormat{Type: "json_object"}
	}
	return nil
}
