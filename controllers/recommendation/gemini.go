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

const defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

type geminiProvider struct {
	apiKey string
	apiURL string // empty means defaultGeminiURL
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (p *geminiProvider) Name() string { return "gemini" }

func (p *geminiProvider) Suggest(ctx context.Context, req SuggestionRequest) ([]models.Recommendation, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("gemini API key not configured")
	}

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{
				{"text": consultantRole + " " + buildPrompt(req)},
			}},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     0.7,
			"maxOutputTokens": 1000,
		},
	}
	jsonData, _ := json.Marshal(payload)

	apiURL := p.apiURL
	if apiURL == "" {
		apiURL = defaultGeminiURL
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL+"?key="+p.apiKey, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Gemini: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse Gemini response: %v", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("invalid Gemini response")
	}

	return parseModelResponse(parsed.Candidates[0].Content.Parts[0].Text, req.Catalog), nil
}
