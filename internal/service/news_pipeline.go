package service

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/alsftd-research/datasync/internal/domain"
	"github.com/alsftd-research/datasync/pkg/external"
)

const newsDataset = "news"

// Base disease keywords every article is screened against, in addition
// to the gene dictionary.
var baseNewsKeywords = []string{
	"ALS", "Amyotrophic Lateral Sclerosis",
	"FTD", "Frontotemporal Dementia",
	"Lou Gehrig's Disease", "Motor Neuron Disease",
}

// newsKeyword is one screening term with its compiled whole-word
// pattern. Substring hits inside longer words ("signals", "refused")
// must not count as matches.
type newsKeyword struct {
	term    string
	pattern *regexp.Regexp
}

// FeedFetcher produces the flattened entries of the configured feeds.
type FeedFetcher interface {
	FetchAll(ctx context.Context, feedURLs []string) []external.FeedItem
}

// NewsPipeline runs one news refresh: fetch the feeds, keep entries
// matching the disease or gene vocabulary, collapse duplicates and
// persist the survivors. Only one run may be in flight per pipeline.
type NewsPipeline struct {
	feeds      FeedFetcher
	dictionary domain.GeneDictionarySource
	store      domain.NewsStore
	checkpoint domain.CheckpointStore
	cache      domain.DatasetCache
	dedup      *NewsDeduplicator
	cfg        *domain.Config
	log        *logrus.Logger

	running atomic.Bool
}

// NewNewsPipeline wires a news pipeline from its collaborators. The
// cache may be nil when projection caching is disabled.
func NewNewsPipeline(
	feeds FeedFetcher,
	dictionary domain.GeneDictionarySource,
	store domain.NewsStore,
	checkpoint domain.CheckpointStore,
	cache domain.DatasetCache,
	dedup *NewsDeduplicator,
	cfg *domain.Config,
	logger *logrus.Logger,
) *NewsPipeline {
	return &NewsPipeline{
		feeds:      feeds,
		dictionary: dictionary,
		store:      store,
		checkpoint: checkpoint,
		cache:      cache,
		dedup:      dedup,
		cfg:        cfg,
		log:        logger,
	}
}

// Run executes one news refresh cycle and reports how many articles it
// stored. It returns ErrRunInProgress when another run holds the
// pipeline. One bad feed or article never fails the cycle; a storage
// failure at the persistence step fails the run with the store left in
// its pre-run state.
func (p *NewsPipeline) Run(ctx context.Context) (*domain.RunSummary, error) {
	if !p.running.CompareAndSwap(false, true) {
		return nil, domain.ErrRunInProgress
	}
	defer p.running.Store(false)

	runID := uuid.New().String()
	started := time.Now()
	runLog := p.log.WithFields(logrus.Fields{
		"run_id":  runID,
		"dataset": newsDataset,
	})
	runLog.Info("News run started")

	keywords, geneSymbols, err := p.buildKeywords(ctx)
	if err != nil {
		return nil, err
	}
	runLog.WithField("keywords", len(keywords)).Debug("Keyword vocabulary loaded")

	items := p.feeds.FetchAll(ctx, p.cfg.News.Feeds)

	window := time.Now().UTC().Add(-p.dedup.Window())
	stored, err := p.store.ListSince(ctx, window)
	if err != nil {
		return nil, err
	}

	summary := &domain.RunSummary{RunID: runID, Dataset: newsDataset, Fetched: len(items)}

	// Articles accepted earlier in this run also participate in
	// duplicate checks, so two feeds carrying the same wire story in
	// one batch still collapse. Stored losers are only marked here;
	// the delete happens together with the inserts in one
	// transaction.
	var buffer []domain.NewsArticle
	var superseded []string

	for i := range items {
		article, ok := p.screen(ctx, &items[i], keywords, geneSymbols, runLog)
		if !ok {
			summary.Rejected++
			continue
		}
		p.place(article, stored, &buffer, &superseded)
	}

	created, deleted, err := p.store.SaveBatch(ctx, superseded, buffer)
	if err != nil {
		return nil, err
	}
	summary.Created = created
	summary.Deleted = deleted

	if err := p.checkpoint.Set(ctx, newsDataset, time.Now().UTC()); err != nil {
		return nil, err
	}

	if p.cache != nil && p.cfg.Cache.Enabled {
		if err := p.cache.Invalidate(ctx, newsDataset); err != nil {
			runLog.WithField("error", err).Warn("Dataset cache invalidation failed")
		}
	}

	summary.Duration = time.Since(started)
	runLog.WithFields(logrus.Fields{
		"fetched":  summary.Fetched,
		"rejected": summary.Rejected,
		"created":  summary.Created,
		"deleted":  summary.Deleted,
		"duration": summary.Duration.String(),
	}).Info("News run complete")

	return summary, nil
}

// buildKeywords assembles the screening vocabulary: the base disease
// terms plus symbols and names of every gene outside the Tenuous tier,
// each compiled to a case-insensitive whole-word pattern.
func (p *NewsPipeline) buildKeywords(ctx context.Context) (keywords []newsKeyword, geneSymbols map[string]string, err error) {
	genes, err := p.dictionary.Refresh(ctx, false)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[string]struct{})
	geneSymbols = make(map[string]string)

	add := func(keyword string) {
		upper := strings.ToUpper(strings.TrimSpace(keyword))
		if upper == "" {
			return
		}
		if _, dup := seen[upper]; dup {
			return
		}
		seen[upper] = struct{}{}
		keywords = append(keywords, newsKeyword{
			term:    upper,
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(upper) + `\b`),
		})
	}

	for _, kw := range baseNewsKeywords {
		add(kw)
	}
	for _, gene := range genes {
		if gene.RiskCategory == domain.RiskTenuous {
			continue
		}
		add(gene.Symbol)
		add(gene.Name)
		if gene.Symbol != "" {
			geneSymbols[strings.ToUpper(gene.Symbol)] = gene.Symbol
			if gene.Name != "" {
				geneSymbols[strings.ToUpper(gene.Name)] = gene.Symbol
			}
		}
	}

	return keywords, geneSymbols, nil
}

// screen filters one feed entry against the vocabulary and builds the
// candidate article. Entries whose URL is already stored are dropped
// before any text matching.
func (p *NewsPipeline) screen(ctx context.Context, item *external.FeedItem, keywords []newsKeyword, geneSymbols map[string]string, runLog *logrus.Entry) (*domain.NewsArticle, bool) {
	exists, err := p.store.ExistsByURL(ctx, item.Link)
	if err != nil {
		runLog.WithFields(logrus.Fields{
			"url":   item.Link,
			"error": err,
		}).Error("URL existence check failed, skipping entry")
		return nil, false
	}
	if exists {
		return nil, false
	}

	fullText := item.Title + " " + item.Summary

	var matched []string
	geneSet := make(map[string]struct{})
	for _, keyword := range keywords {
		if keyword.pattern.MatchString(fullText) {
			matched = append(matched, keyword.term)
			if symbol, ok := geneSymbols[keyword.term]; ok {
				geneSet[symbol] = struct{}{}
			}
		}
	}
	if len(matched) == 0 {
		return nil, false
	}

	maxTags := p.cfg.News.MaxTags
	if maxTags == 0 {
		maxTags = 5
	}
	if len(matched) > maxTags {
		matched = matched[:maxTags]
	}

	genes := make([]string, 0, len(geneSet))
	for symbol := range geneSet {
		genes = append(genes, symbol)
	}
	sort.Strings(genes)

	return &domain.NewsArticle{
		Title:       item.Title,
		Summary:     item.Summary,
		SourceName:  item.SourceName,
		URL:         item.Link,
		ImageURL:    item.ImageURL,
		PublishedAt: item.PublishedAt,
		Tags:        matched,
		Genes:       genes,
		SourceTier:  item.SourceTier,
	}, true
}

// place resolves the candidate against stored articles and the in-run
// buffer. A stored loser's URL is recorded for the transactional
// delete; a buffered loser is replaced in place.
func (p *NewsPipeline) place(article *domain.NewsArticle, stored []domain.NewsArticle, buffer *[]domain.NewsArticle, superseded *[]string) {
	for i := range stored {
		if !p.dedup.IsDuplicate(article, &stored[i]) {
			continue
		}
		if p.dedup.Survivor(article, &stored[i]) != article {
			return
		}
		*superseded = append(*superseded, stored[i].URL)
		break
	}

	for i := range *buffer {
		if !p.dedup.IsDuplicate(article, &(*buffer)[i]) {
			continue
		}
		if p.dedup.Survivor(article, &(*buffer)[i]) != article {
			return
		}
		(*buffer)[i] = *article
		return
	}

	*buffer = append(*buffer, *article)
}
