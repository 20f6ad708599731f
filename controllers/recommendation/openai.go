package recommendationControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pankajarora1984/chandan-sarees-api/models"
)

const defaultOpenAIURL = "https://api.openai.com/v1/chat/completions"

type openAIProvider struct {
	apiKey string
	apiURL string // empty means defaultOpenAIURL
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *openAIProvider) Name() string { return "openai" }

func (p *openAIProvider) Suggest(ctx context.Context, req SuggestionRequest) ([]models.Recommendation, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openai API key not configured")
	}
	if !strings.HasPrefix(strings.TrimSpace(p.apiKey), "sk-") {
		return nil, fmt.Errorf("invalid openai API key format")
	}

	payload := map[string]interface{}{
		"model": "gpt-3.5-turbo",
		"messages": []map[string]string{
			{"role": "system", "content": consultantRole},
			{"role": "user", "content": buildPrompt(req)},
		},
		"max_tokens":  1000,
		"temperature": 0.7,
	}
	jsonData, _ := json.Marshal(payload)

	apiURL := p.apiURL
	if apiURL == "" {
		apiURL = defaultOpenAIURL
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+strings.TrimSpace(p.apiKey))

	client := &http.Client{}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach OpenAI: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai API error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed openAIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAI response: %v", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("openai error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("invalid OpenAI response structure")
	}

	return parseModelResponse(parsed.Choices[0].Message.Content, req.Catalog), nil
}
