package congress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"legiswatch/types"
)

const (
	defaultBaseURL = "https://api.congress.gov/v3"

	// NoSummary is the placeholder used when the API carries no summary text.
	NoSummary = "No summary available"

	// maxMemberQueries caps per-member bill lookups during a state search.
	maxMemberQueries = 10
	memberPageLimit  = 250
)

// Client talks to the Congress.gov v3 API. It is the live BillSource:
// keyword searches list recent bills and filter by title, state searches
// walk the sponsoring members of that state.
type Client struct {
	apiKey   string
	baseURL  string
	congress int
	http     *http.Client
}

// NewClient builds a Congress.gov client for the given congressional session.
func NewClient(apiKey string, congress int, timeout time.Duration) *Client {
	return &Client{
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		congress: congress,
		http:     &http.Client{Timeout: timeout},
	}
}

// Name identifies the source in logs.
func (c *Client) Name() string { return "congress.gov" }

// Wire shapes for the subset of the API we consume.

type wireSponsor struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Party     string `json:"party"`
	State     string `json:"state"`
}

type wireBill struct {
	Number         json.Number   `json:"number"`
	Type           string        `json:"type"`
	Title          string        `json:"title"`
	Summary        string        `json:"summary"`
	LatestSummary  string        `json:"latestSummary"`
	IntroducedDate string        `json:"introducedDate"`
	UpdateDate     string        `json:"updateDate"`
	Sponsors       []wireSponsor `json:"sponsors"`
	Summaries      struct {
		Summaries []struct {
			Text string `json:"text"`
		} `json:"summaries"`
	} `json:"summaries"`
}

type billListResponse struct {
	Bills []wireBill `json:"bills"`
}

type billDetailResponse struct {
	Bill wireBill `json:"bill"`
}

type memberListResponse struct {
	Members []struct {
		BioguideID string `json:"bioguideId"`
		State      string `json:"state"`
	} `json:"members"`
}

type sponsoredResponse struct {
	SponsoredLegislation []wireBill `json:"sponsoredLegislation"`
}

// SearchByKeyword lists recent bills for the current congress and keeps
// those whose title contains the keyword, enriching each kept bill with
// its detail record when available.
func (c *Client) SearchByKeyword(ctx context.Context, keyword string, limit int) ([]*types.Bill, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("limit", fmt.Sprintf("%d", min(limit*5, 100)))
	params.Set("sort", "updateDate+desc")

	var listing billListResponse
	path := fmt.Sprintf("/bill/%d", c.congress)
	if err := c.getJSON(ctx, path, params, &listing); err != nil {
		return nil, fmt.Errorf("bill listing failed: %w", err)
	}

	keywordLower := strings.ToLower(keyword)
	bills := make([]*types.Bill, 0, limit)
	for _, wb := range listing.Bills {
		if !strings.Contains(strings.ToLower(wb.Title), keywordLower) {
			continue
		}

		detailed, err := c.billDetails(ctx, wb)
		if err != nil {
			// Listing data is enough to render the bill.
			log.Printf("bill detail lookup failed for %s%s: %v", wb.Type, wb.Number, err)
			detailed = c.formatBill(wb)
		}
		bills = append(bills, detailed)

		if len(bills) >= limit {
			break
		}
	}

	return bills, nil
}

// SearchByState finds bills sponsored by the state's current House and
// Senate members, newest first.
func (c *Client) SearchByState(ctx context.Context, state string, limit int) ([]*types.Bill, error) {
	abbr, ok := NormalizeState(state)
	if !ok {
		abbr = strings.ToUpper(state)
	}

	members, err := c.membersByState(ctx, abbr)
	if err != nil {
		return nil, fmt.Errorf("member lookup failed: %w", err)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("no members found for state %q", abbr)
	}

	if len(members) > maxMemberQueries {
		members = members[:maxMemberQueries]
	}

	var bills []*types.Bill
	for _, bioguideID := range members {
		memberBills, err := c.sponsoredBills(ctx, bioguideID)
		if err != nil {
			log.Printf("sponsored legislation lookup failed for %s: %v", bioguideID, err)
			continue
		}
		bills = append(bills, memberBills...)
	}
	if len(bills) == 0 {
		return nil, fmt.Errorf("no sponsored bills found for state %q", abbr)
	}

	sort.Slice(bills, func(i, j int) bool {
		return bills[i].UpdateDate > bills[j].UpdateDate
	})
	if len(bills) > limit {
		bills = bills[:limit]
	}
	return bills, nil
}

// billDetails fetches the full record for a listed bill.
func (c *Client) billDetails(ctx context.Context, wb wireBill) (*types.Bill, error) {
	billType := strings.ToLower(wb.Type)
	number := wb.Number.String()
	if billType == "" || number == "" {
		return c.formatBill(wb), nil
	}

	params := url.Values{}
	params.Set("format", "json")

	var detail billDetailResponse
	path := fmt.Sprintf("/bill/%d/%s/%s", c.congress, billType, number)
	if err := c.getJSON(ctx, path, params, &detail); err != nil {
		return nil, err
	}

	bill := c.formatBill(detail.Bill)
	if bill.Number == "" {
		// Some detail payloads omit fields present in the listing.
		return c.formatBill(wb), nil
	}
	return bill, nil
}

// membersByState returns bioguide IDs of current members from one state.
func (c *Client) membersByState(ctx context.Context, stateAbbr string) ([]string, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("limit", fmt.Sprintf("%d", memberPageLimit))

	var ids []string
	for _, chamber := range []string{"house", "senate"} {
		var listing memberListResponse
		path := fmt.Sprintf("/member/%s/%d", chamber, c.congress)
		if err := c.getJSON(ctx, path, params, &listing); err != nil {
			return nil, err
		}
		for _, m := range listing.Members {
			if strings.EqualFold(m.State, stateAbbr) && m.BioguideID != "" {
				ids = append(ids, m.BioguideID)
			}
		}
	}
	return ids, nil
}

// sponsoredBills returns recent legislation sponsored by one member.
func (c *Client) sponsoredBills(ctx context.Context, bioguideID string) ([]*types.Bill, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("limit", "10")
	params.Set("sort", "updateDate+desc")

	var listing sponsoredResponse
	path := fmt.Sprintf("/member/%s/sponsored-legislation", bioguideID)
	if err := c.getJSON(ctx, path, params, &listing); err != nil {
		return nil, err
	}

	bills := make([]*types.Bill, 0, len(listing.SponsoredLegislation))
	for _, wb := range listing.SponsoredLegislation {
		bills = append(bills, c.formatBill(wb))
	}
	return bills, nil
}

// formatBill converts a wire record into the response shape.
func (c *Client) formatBill(wb wireBill) *types.Bill {
	billType := strings.ToUpper(wb.Type)
	number := wb.Number.String()

	title := wb.Title
	if title == "" {
		title = "No title available"
	}

	introduced := wb.IntroducedDate
	if introduced == "" {
		introduced = wb.UpdateDate
	}

	return &types.Bill{
		ID:             billType + number,
		Title:          title,
		Summary:        billSummary(wb),
		IntroducedDate: formatDate(introduced),
		Sponsor:        sponsorLine(wb.Sponsors),
		CongressURL:    BillURL(c.congress, billType, number),
		BillType:       billType,
		Number:         number,
		UpdateDate:     wb.UpdateDate,
	}
}

// billSummary picks the best available summary text.
func billSummary(wb wireBill) string {
	for _, s := range []string{wb.Summary, wb.LatestSummary} {
		if strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	if len(wb.Summaries.Summaries) > 0 && strings.TrimSpace(wb.Summaries.Summaries[0].Text) != "" {
		return strings.TrimSpace(wb.Summaries.Summaries[0].Text)
	}
	return NoSummary
}

func sponsorLine(sponsors []wireSponsor) string {
	if len(sponsors) == 0 {
		return "Unknown"
	}
	s := sponsors[0]
	switch {
	case s.FirstName != "" && s.LastName != "":
		return fmt.Sprintf("%s %s (%s-%s)", s.FirstName, s.LastName, s.Party, s.State)
	case s.LastName != "":
		return fmt.Sprintf("%s (%s-%s)", s.LastName, s.Party, s.State)
	}
	return "Unknown"
}

// formatDate normalizes API dates to YYYY-MM-DD, passing through
// anything it cannot parse.
func formatDate(dateString string) string {
	if dateString == "" {
		return "Unknown"
	}
	if t, err := time.Parse(time.RFC3339, dateString); err == nil {
		return t.Format("2006-01-02")
	}
	if t, err := time.Parse("2006-01-02", dateString); err == nil {
		return t.Format("2006-01-02")
	}
	return dateString
}

// getJSON performs a GET against the API and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, result interface{}) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("congress API returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
