package tracker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"legiswatch/config"
	"legiswatch/congress"
	"legiswatch/summarize"
	"legiswatch/types"
)

// ErrInvalidInput is returned when the query is empty after trimming.
// It is the only search error surfaced to callers.
var ErrInvalidInput = errors.New("query must not be empty")

// summaryWorkers bounds concurrent summarizer calls per request.
const summaryWorkers = 3

// Tracker is the search orchestrator. It validates input, delegates to
// its bill source, substitutes the mock dataset on source failure, and
// optionally fans out to the summarizer.
type Tracker struct {
	source     BillSource
	fallback   *MockSource
	summarizer summarize.SummaryProvider // nil when no provider is configured
	cfg        config.Config
}

// New wires a tracker from its dependencies. The fallback is consulted
// whenever the primary source fails; pass the mock source as both when
// no live API is configured.
func New(source BillSource, fallback *MockSource, summarizer summarize.SummaryProvider, cfg config.Config) *Tracker {
	return &Tracker{
		source:     source,
		fallback:   fallback,
		summarizer: summarizer,
		cfg:        cfg,
	}
}

// Search runs one bill search. Upstream failures never propagate: the
// result is always a successful envelope, backed by mock data if the
// live source failed.
func (t *Tracker) Search(ctx context.Context, query, searchType string, includeAI bool) (*types.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidInput
	}
	if searchType != types.SearchTypeState {
		searchType = types.SearchTypeKeyword
	}

	bills, usedMock := t.fetch(ctx, query, searchType)
	if includeAI {
		t.attachSummaries(ctx, query, bills)
	}

	return &types.SearchResult{
		Success:    true,
		Bills:      bills,
		Count:      len(bills),
		Query:      query,
		SearchType: searchType,
		MockData:   usedMock,
	}, nil
}

// fetch queries the primary source, falling back to the mock dataset on
// any failure. The mock source itself never fails.
func (t *Tracker) fetch(ctx context.Context, query, searchType string) ([]*types.Bill, bool) {
	bills, err := search(ctx, t.source, query, searchType, t.cfg.SearchLimit)
	if err == nil {
		return bills, t.source == BillSource(t.fallback)
	}

	log.Printf("bill source %s failed: %v (serving mock data)", t.source.Name(), err)
	bills, _ = search(ctx, t.fallback, query, searchType, t.cfg.SearchLimit)
	return bills, true
}

func search(ctx context.Context, src BillSource, query, searchType string, limit int) ([]*types.Bill, error) {
	if searchType == types.SearchTypeState {
		return src.SearchByState(ctx, query, limit)
	}
	return src.SearchByKeyword(ctx, query, limit)
}

// attachSummaries adds AI summaries to the first MaxAISummaries bills
// using a bounded worker pool. A failed summary leaves that bill's
// ai_summary empty; it never fails the search.
func (t *Tracker) attachSummaries(ctx context.Context, topic string, bills []*types.Bill) {
	n := len(bills)
	if n > t.cfg.MaxAISummaries {
		n = t.cfg.MaxAISummaries
	}
	if n == 0 {
		return
	}

	if t.summarizer == nil {
		for _, bill := range bills[:n] {
			bill.AISummary = fmt.Sprintf("AI Summary not available (API key required). This bill relates to %s.", topic)
		}
		return
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, summaryWorkers)
	for _, bill := range bills[:n] {
		wg.Add(1)
		go func(b *types.Bill) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			summary, err := t.summarizer.Summarize(ctx, t.summaryInput(b), topic)
			if err != nil {
				log.Printf("summary via %s failed for %s: %v", t.summarizer.Name(), b.ID, err)
				return
			}
			b.AISummary = summary
		}(bill)
	}
	wg.Wait()
}

// summaryInput picks the summarizer input, pulling readable text from
// the bill's public page when the API record had no summary.
func (t *Tracker) summaryInput(b *types.Bill) string {
	if b.Summary != "" && b.Summary != congress.NoSummary {
		return b.Summary
	}
	text, err := congress.ExtractBillText(b.CongressURL, t.cfg.RequestTimeout)
	if err != nil {
		log.Printf("bill text extraction failed for %s: %v", b.ID, err)
		return b.Title
	}
	return text
}
