package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type GeminiRepository struct {
	geminiConfig GeminiConfig
	httpClient   *http.Client
}

func NewGeminiRepository(cfg GeminiConfig) *GeminiRepository {
	return &GeminiRepository{
		geminiConfig: cfg,
		httpClient:   &http.Client{},
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateText sends a single-turn prompt to the generateContent endpoint
// and returns the first candidate's text verbatim. The caller bounds the
// call through ctx; there is no retry here.
func (r *GeminiRepository) GenerateText(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		r.geminiConfig.BaseURL, r.geminiConfig.Model, r.geminiConfig.APIKey)

	payload, err := json.Marshal(generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Add("Content-Type", "application/json")

	res, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: unexpected status %d", res.StatusCode)
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("gemini: malformed response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: empty response")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
