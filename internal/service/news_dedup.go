package service

import (
	"regexp"
	"strings"
	"time"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/alsftd-research/datasync/internal/domain"
)

var (
	sourceSuffix = regexp.MustCompile(`\s+[-|]\s+[^-|]+$`)
	punctuation  = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
)

// NewsDeduplicator decides whether two articles describe the same
// real-world story and which of two duplicates survives. Aggregators
// republish wire stories under new URLs, so identity is behavioral:
// normalized titles compared with token-sort similarity inside a
// recency window.
type NewsDeduplicator struct {
	threshold    int
	window       time.Duration
	recencySlack time.Duration
}

// NewNewsDeduplicator creates a deduplicator with the configured
// threshold and windows
func NewNewsDeduplicator(cfg *domain.NewsConfig) *NewsDeduplicator {
	threshold := cfg.DedupThreshold
	if threshold == 0 {
		threshold = 85
	}
	window := cfg.DedupWindow
	if window == 0 {
		window = 7 * 24 * time.Hour
	}
	slack := cfg.RecencySlack
	if slack == 0 {
		slack = 4 * time.Hour
	}
	return &NewsDeduplicator{
		threshold:    threshold,
		window:       window,
		recencySlack: slack,
	}
}

// Window returns how far back stored articles participate in
// duplicate checks.
func (d *NewsDeduplicator) Window() time.Duration {
	return d.window
}

// NormalizeTitle canonicalizes a headline for comparison: lowercase,
// trailing " - Source" or " | Source" attribution stripped, punctuation
// removed, whitespace collapsed.
func NormalizeTitle(title string) string {
	t := strings.ToLower(strings.TrimSpace(title))
	t = sourceSuffix.ReplaceAllString(t, "")
	t = punctuation.ReplaceAllString(t, "")
	return strings.Join(strings.Fields(t), " ")
}

// IsDuplicate reports whether two articles are the same story: equal
// normalized titles, or token-sort similarity at or above the
// threshold, provided their publication times fall within the window.
func (d *NewsDeduplicator) IsDuplicate(a, b *domain.NewsArticle) bool {
	gap := a.PublishedAt.Sub(b.PublishedAt)
	if gap < 0 {
		gap = -gap
	}
	if gap > d.window {
		return false
	}

	na, nb := NormalizeTitle(a.Title), NormalizeTitle(b.Title)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	return fuzzy.TokenSortRatio(na, nb) >= d.threshold
}

// Survivor picks which of two duplicates to keep. An article published
// more than the recency slack before the other is superseded by the
// newer one; within the slack the more trustworthy tier wins, then the
// earlier timestamp.
func (d *NewsDeduplicator) Survivor(a, b *domain.NewsArticle) *domain.NewsArticle {
	gap := a.PublishedAt.Sub(b.PublishedAt)

	if gap < -d.recencySlack {
		return b
	}
	if gap > d.recencySlack {
		return a
	}

	if a.SourceTier != b.SourceTier {
		if a.SourceTier < b.SourceTier {
			return a
		}
		return b
	}

	if a.PublishedAt.After(b.PublishedAt) {
		return b
	}
	return a
}
