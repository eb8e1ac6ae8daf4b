package types

import (
	"crypto/sha256"
	"encoding/hex"
)

// Search types accepted by the search endpoint.
const (
	SearchTypeKeyword = "keyword"
	SearchTypeState   = "state"
)

// Bill represents a single piece of proposed legislation.
// Bills are immutable once built and live only for the duration of a request.
type Bill struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Summary        string `json:"summary"`
	AISummary      string `json:"ai_summary,omitempty"`
	IntroducedDate string `json:"introduced_date"`
	Sponsor        string `json:"sponsor"`
	CongressURL    string `json:"congress_url"`
	BillType       string `json:"bill_type"`
	Number         string `json:"number"`
	UpdateDate     string `json:"updateDate"`
}

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Query     string `json:"query"`
	Type      string `json:"type"`
	IncludeAI bool   `json:"include_ai"`
}

// SearchResult is the envelope returned for every successful search.
// Count always equals len(Bills). MockData marks responses backed by the
// fallback dataset so automated callers are not silently misled.
type SearchResult struct {
	Success    bool    `json:"success"`
	Bills      []*Bill `json:"bills"`
	Count      int     `json:"count"`
	Query      string  `json:"query"`
	SearchType string  `json:"search_type"`
	MockData   bool    `json:"mock_data,omitempty"`
}

// GenerateID creates a stable short ID from a URL, used for feed entries
// that carry no bill number.
func GenerateID(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])[:16]
}
