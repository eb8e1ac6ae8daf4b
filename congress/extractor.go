package congress

import (
	"fmt"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// ExtractBillText fetches a bill's public Congress.gov page and returns
// its readable text. Used to give the summarizer something to work with
// when the API record carries no summary.
func ExtractBillText(pageURL string, timeout time.Duration) (string, error) {
	if pageURL == "" {
		return "", fmt.Errorf("bill URL is empty")
	}

	article, err := readability.FromURL(pageURL, timeout)
	if err != nil {
		return "", fmt.Errorf("readability extraction failed: %w", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", fmt.Errorf("no readable text on page")
	}
	return text, nil
}
