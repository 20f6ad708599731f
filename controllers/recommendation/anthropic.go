package recommendationControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pankajarora1984/chandan-sarees-api/models"
)

const defaultAnthropicURL = "https://api.anthropic.com/v1/messages"

type anthropicProvider struct {
	apiKey string
	apiURL string // empty means defaultAnthropicURL
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (p *anthropicProvider) Name() string { return "anthropic" }

func (p *anthropicProvider) Suggest(ctx context.Context, req SuggestionRequest) ([]models.Recommendation, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("anthropic API key not configured")
	}

	payload := map[string]interface{}{
		"model":      "claude-3-sonnet-20240229",
		"max_tokens": 1000,
		"messages": []map[string]string{
			{"role": "user", "content": consultantRole + " " + buildPrompt(req)},
		},
	}
	jsonData, _ := json.Marshal(payload)

	apiURL := p.apiURL
	if apiURL == "" {
		apiURL = defaultAnthropicURL
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	client := &http.Client{}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Anthropic: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("anthropic API error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse Anthropic response: %v", err)
	}
	if len(parsed.Content) == 0 {
		return nil, fmt.Errorf("invalid Anthropic response")
	}

	return parseModelResponse(parsed.Content[0].Text, req.Catalog), nil
}
