package external

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sirupsen/logrus"

	"github.com/alsftd-research/datasync/internal/domain"
)

// FeedItem is one RSS entry plus the feed-level metadata the pipeline
// needs to rank it against duplicates.
type FeedItem struct {
	Title       string
	Summary     string
	Link        string
	ImageURL    string
	PublishedAt time.Time
	SourceName  string
	SourceTier  domain.SourceTier
}

// FeedClient fetches and parses RSS feeds. One bad feed never fails the
// batch; it is logged and skipped so the remaining feeds still land.
type FeedClient struct {
	parser *gofeed.Parser
	log    *logrus.Logger
}

// NewFeedClient creates an RSS feed client
func NewFeedClient(cfg *domain.NewsConfig, logger *logrus.Logger) *FeedClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	parser := gofeed.NewParser()
	parser.UserAgent = "alsftd-datasync/1.0"
	parser.Client = &http.Client{Timeout: timeout}

	return &FeedClient{
		parser: parser,
		log:    logger,
	}
}

// FetchAll parses every configured feed URL and flattens the entries.
// Entries without a link are dropped; entries without a timestamp get
// the fetch time so the dedup window still applies to them.
func (c *FeedClient) FetchAll(ctx context.Context, feedURLs []string) []FeedItem {
	now := time.Now().UTC()

	var items []FeedItem
	for _, feedURL := range feedURLs {
		feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			c.log.WithFields(logrus.Fields{
				"feed":  feedURL,
				"error": err,
			}).Error("Failed to parse feed, skipping")
			continue
		}

		sourceName := feed.Title
		if sourceName == "" {
			sourceName = "Unknown Source"
		}
		tier := ClassifySourceTier(feedURL, sourceName)

		for _, entry := range feed.Items {
			if entry.Link == "" {
				continue
			}

			published := now
			if entry.PublishedParsed != nil {
				published = entry.PublishedParsed.UTC()
			} else if entry.UpdatedParsed != nil {
				published = entry.UpdatedParsed.UTC()
			}

			summary := entry.Description
			if summary == "" {
				summary = entry.Content
			}

			items = append(items, FeedItem{
				Title:       entry.Title,
				Summary:     summary,
				Link:        entry.Link,
				ImageURL:    extractImage(entry),
				PublishedAt: published,
				SourceName:  sourceName,
				SourceTier:  tier,
			})
		}

		c.log.WithFields(logrus.Fields{
			"feed":    feedURL,
			"entries": len(feed.Items),
		}).Info("Feed parsed")
	}

	return items
}

func extractImage(entry *gofeed.Item) string {
	if entry.Image != nil && entry.Image.URL != "" {
		return entry.Image.URL
	}
	if media, ok := entry.Extensions["media"]; ok {
		for _, content := range media["content"] {
			if url := content.Attrs["url"]; url != "" {
				return url
			}
		}
	}
	for _, enc := range entry.Enclosures {
		if strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}

// ClassifySourceTier ranks a feed's trustworthiness for duplicate
// tie-breaks. Lower tiers win. Unrecognized sources are treated as
// regional press rather than aggregators so they still beat wire
// republications.
func ClassifySourceTier(feedURL, sourceName string) domain.SourceTier {
	haystack := strings.ToLower(feedURL + " " + sourceName)

	switch {
	case strings.Contains(haystack, "pubmed"),
		strings.Contains(haystack, "ncbi.nlm.nih.gov"),
		strings.Contains(haystack, "biorxiv"),
		strings.Contains(haystack, "medrxiv"):
		return domain.TierPrimaryLiterature
	case strings.Contains(haystack, "sciencedaily"),
		strings.Contains(haystack, "medicalxpress"),
		strings.Contains(haystack, "news-medical"):
		return domain.TierSpecializedOutlet
	case strings.Contains(haystack, "news.google"),
		strings.Contains(haystack, "feedproxy"),
		strings.Contains(haystack, "aggregator"):
		return domain.TierAggregator
	default:
		return domain.TierRegionalPress
	}
}
