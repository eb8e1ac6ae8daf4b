package feeds

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"legiswatch/types"
)

// Congress.gov publishes curated RSS feeds of bill activity.
const (
	MostViewedFeedURL = "https://www.congress.gov/rss/most-viewed-bills.xml"
	DefaultCount      = 10
)

// FetchRecent retrieves a Congress.gov RSS feed and returns its entries
// as lightweight bill records. Feed entries carry no bill number, so IDs
// are derived from the entry URL.
func FetchRecent(ctx context.Context, feedURL string, maxCount int) ([]*types.Bill, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	count := len(feed.Items)
	if count > maxCount {
		count = maxCount
	}

	bills := make([]*types.Bill, 0, count)
	for i := 0; i < count; i++ {
		item := feed.Items[i]

		id := item.GUID
		if id == "" && item.Link != "" {
			id = types.GenerateID(item.Link)
		}

		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}
		introduced := ""
		if !published.IsZero() {
			introduced = published.Format("2006-01-02")
		}

		bills = append(bills, &types.Bill{
			ID:             id,
			Title:          item.Title,
			Summary:        item.Description,
			IntroducedDate: introduced,
			CongressURL:    item.Link,
			UpdateDate:     introduced,
		})
	}

	return bills, nil
}
