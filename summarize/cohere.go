package summarize

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// Cohere implements SummaryProvider using the Cohere summarize endpoint.
// Docs: https://docs.cohere.com/reference/summarize
// SDK: github.com/cohere-ai/cohere-go/v2
type Cohere struct {
	client *cohereclient.Client
}

// NewCohere builds the provider. The HTTP client forces HTTP/1.1 to
// avoid HTTP/2 protocol errors against the Cohere edge.
func NewCohere(apiKey string, timeout time.Duration) *Cohere {
	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &Cohere{client: client}
}

func (c *Cohere) Name() string { return "cohere" }

func (c *Cohere) Summarize(ctx context.Context, text, topic string) (string, error) {
	length := cohere.SummarizeRequestLengthShort
	command := fmt.Sprintf("Focus on what this bill means for businesses and %s, from a compliance perspective.", topic)

	resp, err := c.client.Summarize(ctx, &cohere.SummarizeRequest{
		Text:              text,
		Length:            &length,
		AdditionalCommand: &command,
	})
	if err != nil {
		return "", fmt.Errorf("cohere summarize error: %w", err)
	}
	if resp == nil || resp.Summary == nil || *resp.Summary == "" {
		return "", errors.New("cohere returned no summary")
	}
	return *resp.Summary, nil
}
