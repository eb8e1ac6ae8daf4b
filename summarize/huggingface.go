package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HuggingFace implements SummaryProvider using the HuggingFace inference
// API with a BART summarization model.
// Docs: https://huggingface.co/docs/api-inference
// Endpoint: POST https://api-inference.huggingface.co/models/facebook/bart-large-cnn
// Request: {"inputs": "...", "parameters": {"max_length": 150, ...}}
// Response: [{"summary_text": "..."}]
type HuggingFace struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

const (
	defaultHFEndpoint = "https://api-inference.huggingface.co/models/facebook/bart-large-cnn"

	// maxInputChars bounds the bill text sent per request.
	maxInputChars = 1000
)

// NewHuggingFace builds the provider with a bounded per-call timeout.
func NewHuggingFace(apiKey string, timeout time.Duration) *HuggingFace {
	return &HuggingFace{
		apiKey:   apiKey,
		endpoint: defaultHFEndpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

func (h *HuggingFace) Name() string { return "huggingface" }

func (h *HuggingFace) Summarize(ctx context.Context, text, topic string) (string, error) {
	if len(text) > maxInputChars {
		text = text[:maxInputChars]
	}
	prompt := fmt.Sprintf("Summarize this bill for a compliance officer. Highlight what this means for businesses and %s: %s", topic, text)

	payload := map[string]interface{}{
		"inputs": prompt,
		"parameters": map[string]interface{}{
			"max_length": 150,
			"min_length": 50,
			"do_sample":  false,
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewBuffer(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.apiKey)

	resp, err := h.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body map[string]interface{}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return "", fmt.Errorf("huggingface error: status %d: %v", resp.StatusCode, body)
	}

	var parsed []struct {
		SummaryText string `json:"summary_text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed) == 0 || parsed[0].SummaryText == "" {
		return "", errors.New("huggingface returned no summary")
	}
	return parsed[0].SummaryText, nil
}
