package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsftd-research/datasync/internal/domain"
	"github.com/alsftd-research/datasync/pkg/external"
)

func testNewsConfig() *domain.Config {
	return &domain.Config{
		News: domain.NewsConfig{
			Feeds:          []string{"https://example.org/als.xml"},
			DedupThreshold: 85,
			DedupWindow:    7 * 24 * time.Hour,
			RecencySlack:   4 * time.Hour,
			MaxTags:        5,
		},
		Cache: domain.CacheConfig{Enabled: true},
	}
}

func newTestPipeline(t *testing.T, feeds *fakeFeeds, store *fakeNewsStore, cfg *domain.Config) (*NewsPipeline, *fakeCache) {
	t.Helper()
	logger := logrus.New()
	datasetCache := &fakeCache{}
	dictionary := &fakeDictionary{genes: []domain.Gene{
		{Symbol: "SOD1", Name: "Superoxide dismutase 1", RiskCategory: domain.RiskDefinitive},
		{Symbol: "NEFH", Name: "Neurofilament heavy chain", RiskCategory: domain.RiskTenuous},
	}}

	pipeline := NewNewsPipeline(
		feeds,
		dictionary,
		store,
		newFakeCheckpointStore(),
		datasetCache,
		NewNewsDeduplicator(&cfg.News),
		cfg,
		logger,
	)
	return pipeline, datasetCache
}

func feedItem(title, link string, published time.Time, tier domain.SourceTier) external.FeedItem {
	return external.FeedItem{
		Title:       title,
		Summary:     "Summary of " + title,
		Link:        link,
		PublishedAt: published,
		SourceName:  "Test Feed",
		SourceTier:  tier,
	}
}

func TestNewsPipeline_Run_FiltersByKeywords(t *testing.T) {
	now := time.Now().UTC()
	feeds := &fakeFeeds{items: []external.FeedItem{
		feedItem("New ALS drug trial begins", "https://example.org/a", now, domain.TierSpecializedOutlet),
		feedItem("Research update on SOD1 therapies", "https://example.org/b", now.Add(-time.Hour), domain.TierSpecializedOutlet),
		feedItem("City council approves new park", "https://example.org/c", now, domain.TierRegionalPress),
		// NEFH is Tenuous so it never joins the vocabulary.
		feedItem("NEFH variant reported in small cohort", "https://example.org/d", now, domain.TierSpecializedOutlet),
	}}
	store := newFakeNewsStore()
	pipeline, datasetCache := newTestPipeline(t, feeds, store, testNewsConfig())

	summary, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Fetched)
	assert.Equal(t, 2, summary.Rejected)
	assert.Equal(t, 2, summary.Created)
	assert.Len(t, store.articles, 2)

	article, ok := store.articles["https://example.org/b"]
	require.True(t, ok)
	assert.Equal(t, []string{"SOD1"}, article.Genes)
	assert.Contains(t, article.Tags, "SOD1")

	assert.Contains(t, datasetCache.invalidated, "news")
}

func TestNewsPipeline_Run_SkipsKnownURLs(t *testing.T) {
	now := time.Now().UTC()
	store := newFakeNewsStore()
	store.articles["https://example.org/a"] = domain.NewsArticle{
		Title: "Old copy", URL: "https://example.org/a", PublishedAt: now.Add(-48 * time.Hour),
	}

	feeds := &fakeFeeds{items: []external.FeedItem{
		feedItem("New ALS drug trial begins", "https://example.org/a", now, domain.TierSpecializedOutlet),
	}}
	pipeline, _ := newTestPipeline(t, feeds, store, testNewsConfig())

	summary, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, 1, summary.Rejected)
}

func TestNewsPipeline_Run_CollapsesInBatchDuplicates(t *testing.T) {
	now := time.Now().UTC()
	feeds := &fakeFeeds{items: []external.FeedItem{
		feedItem("New ALS Drug Trial Begins - Reuters", "https://example.org/a", now, domain.TierAggregator),
		feedItem("New ALS drug trial begins", "https://example.org/b", now.Add(-time.Hour), domain.TierSpecializedOutlet),
	}}
	store := newFakeNewsStore()
	pipeline, _ := newTestPipeline(t, feeds, store, testNewsConfig())

	summary, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Created)
	require.Len(t, store.articles, 1)
	// Within the recency slack the better tier survives.
	_, ok := store.articles["https://example.org/b"]
	assert.True(t, ok)
}

func TestNewsPipeline_Run_ReplacesStoredLoser(t *testing.T) {
	now := time.Now().UTC()
	store := newFakeNewsStore()
	store.articles["https://example.org/old"] = domain.NewsArticle{
		Title:       "New ALS drug trial begins - Google News",
		URL:         "https://example.org/old",
		PublishedAt: now.Add(-time.Hour),
		SourceTier:  domain.TierAggregator,
	}

	feeds := &fakeFeeds{items: []external.FeedItem{
		feedItem("New ALS drug trial begins", "https://example.org/new", now, domain.TierSpecializedOutlet),
	}}
	pipeline, _ := newTestPipeline(t, feeds, store, testNewsConfig())

	summary, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Deleted)
	require.Len(t, store.articles, 1)
	_, ok := store.articles["https://example.org/new"]
	assert.True(t, ok)
}

func TestNewsPipeline_Run_KeepsStoredWinner(t *testing.T) {
	now := time.Now().UTC()
	store := newFakeNewsStore()
	store.articles["https://example.org/stored"] = domain.NewsArticle{
		Title:       "New ALS drug trial begins",
		URL:         "https://example.org/stored",
		PublishedAt: now,
		SourceTier:  domain.TierAggregator,
	}

	// The incoming copy is more than the slack older than the stored
	// one, so the stored copy survives even against a better tier.
	feeds := &fakeFeeds{items: []external.FeedItem{
		feedItem("New ALS drug trial begins - Reuters", "https://example.org/late", now.Add(-6*time.Hour), domain.TierPrimaryLiterature),
	}}
	pipeline, _ := newTestPipeline(t, feeds, store, testNewsConfig())

	summary, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, 0, summary.Deleted)
	require.Len(t, store.articles, 1)
	_, ok := store.articles["https://example.org/stored"]
	assert.True(t, ok)
}

func TestNewsPipeline_Run_NewerReplacesStaleStored(t *testing.T) {
	now := time.Now().UTC()
	store := newFakeNewsStore()
	store.articles["https://example.org/old"] = domain.NewsArticle{
		Title:       "New ALS drug trial begins",
		URL:         "https://example.org/old",
		PublishedAt: now.Add(-6 * time.Hour),
		SourceTier:  domain.TierPrimaryLiterature,
	}

	// The stored copy is more than the slack older, so the newer
	// arrival supersedes it regardless of tier.
	feeds := &fakeFeeds{items: []external.FeedItem{
		feedItem("New ALS drug trial begins - Google News", "https://example.org/new", now, domain.TierAggregator),
	}}
	pipeline, _ := newTestPipeline(t, feeds, store, testNewsConfig())

	summary, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Deleted)
	require.Len(t, store.articles, 1)
	_, ok := store.articles["https://example.org/new"]
	assert.True(t, ok)
}

func TestNewsPipeline_Run_RequiresWholeWordMatches(t *testing.T) {
	now := time.Now().UTC()
	feeds := &fakeFeeds{items: []external.FeedItem{
		// "signals" contains ALS and "refused" contains FUS, but
		// neither is a whole-word mention.
		{
			Title:       "Traffic signals upgraded downtown",
			Summary:     "The city refused further comment.",
			Link:        "https://example.org/a",
			PublishedAt: now,
			SourceName:  "Test Feed",
			SourceTier:  domain.TierRegionalPress,
		},
		{
			Title:       "SOD1000 component recall announced",
			Summary:     "Manufacturer lists affected serial numbers.",
			Link:        "https://example.org/b",
			PublishedAt: now,
			SourceName:  "Test Feed",
			SourceTier:  domain.TierRegionalPress,
		},
	}}
	store := newFakeNewsStore()
	pipeline, _ := newTestPipeline(t, feeds, store, testNewsConfig())

	summary, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Rejected)
	assert.Equal(t, 0, summary.Created)
	assert.Empty(t, store.articles)
}

func TestNewsPipeline_Run_FailedSaveLeavesStoreUntouched(t *testing.T) {
	now := time.Now().UTC()
	store := newFakeNewsStore()
	store.saveErr = errors.New("connection reset")
	store.articles["https://example.org/old"] = domain.NewsArticle{
		Title:       "New ALS drug trial begins",
		URL:         "https://example.org/old",
		PublishedAt: now.Add(-time.Hour),
		SourceTier:  domain.TierAggregator,
	}

	feeds := &fakeFeeds{items: []external.FeedItem{
		feedItem("New ALS drug trial begins", "https://example.org/new", now, domain.TierSpecializedOutlet),
	}}
	pipeline, _ := newTestPipeline(t, feeds, store, testNewsConfig())

	_, err := pipeline.Run(context.Background())
	require.Error(t, err)

	// The superseded article is only deleted together with the
	// insert, so a failed batch changes nothing.
	require.Len(t, store.articles, 1)
	_, ok := store.articles["https://example.org/old"]
	assert.True(t, ok)
}

func TestNewsPipeline_Run_RejectsConcurrentRuns(t *testing.T) {
	block := make(chan struct{})
	feeds := &fakeFeeds{block: block}
	pipeline, _ := newTestPipeline(t, feeds, newFakeNewsStore(), testNewsConfig())

	done := make(chan error, 1)
	go func() {
		_, err := pipeline.Run(context.Background())
		done <- err
	}()

	// Wait for the first run to take the pipeline.
	require.Eventually(t, func() bool {
		return pipeline.running.Load()
	}, time.Second, 5*time.Millisecond)

	_, err := pipeline.Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrRunInProgress)

	close(block)
	require.NoError(t, <-done)
}

func TestNewsPipeline_Run_CapsTags(t *testing.T) {
	now := time.Now().UTC()
	feeds := &fakeFeeds{items: []external.FeedItem{
		feedItem("ALS and FTD update: amyotrophic lateral sclerosis, frontotemporal dementia, motor neuron disease and SOD1",
			"https://example.org/a", now, domain.TierSpecializedOutlet),
	}}
	store := newFakeNewsStore()
	pipeline, _ := newTestPipeline(t, feeds, store, testNewsConfig())

	_, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	article, ok := store.articles["https://example.org/a"]
	require.True(t, ok)
	assert.LessOrEqual(t, len(article.Tags), 5)
}
