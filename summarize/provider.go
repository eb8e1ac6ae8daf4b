package summarize

import (
	"context"

	"legiswatch/config"
)

// SummaryProvider abstracts a text summarization backend.
// Implementations return a short, business-oriented summary of a bill.
type SummaryProvider interface {
	Summarize(ctx context.Context, text, topic string) (string, error)
	Name() string
}

// NewDefaultProvider returns a provider based on configured credentials.
// HuggingFace is preferred, Cohere is the alternative; nil means AI
// summaries are disabled.
func NewDefaultProvider(cfg config.Config) SummaryProvider {
	if cfg.HuggingFaceAPIKey != "" {
		return NewHuggingFace(cfg.HuggingFaceAPIKey, cfg.SummaryTimeout)
	}
	if cfg.CohereAPIKey != "" {
		return NewCohere(cfg.CohereAPIKey, cfg.SummaryTimeout)
	}
	return nil
}
