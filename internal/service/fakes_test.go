package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alsftd-research/datasync/internal/domain"
	"github.com/alsftd-research/datasync/pkg/external"
)

// In-memory collaborators for engine and pipeline tests.

type fakeTrialStore struct {
	records map[string]domain.TrialRecord
	fail    bool
}

func newFakeTrialStore() *fakeTrialStore {
	return &fakeTrialStore{records: make(map[string]domain.TrialRecord)}
}

func (s *fakeTrialStore) ReconcileBatch(ctx context.Context, trials []domain.TrialRecord) (created, updated, deleted int, err error) {
	if s.fail {
		return 0, 0, 0, fmt.Errorf("reconcile failed")
	}
	seen := make(map[string]struct{}, len(trials))
	for _, trial := range trials {
		seen[trial.UniqueProtocolID] = struct{}{}
		if _, exists := s.records[trial.UniqueProtocolID]; exists {
			updated++
		} else {
			created++
		}
		s.records[trial.UniqueProtocolID] = trial
	}
	for id := range s.records {
		if _, ok := seen[id]; !ok {
			delete(s.records, id)
			deleted++
		}
	}
	return created, updated, deleted, nil
}

func (s *fakeTrialStore) ListIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *fakeTrialStore) CountAll(ctx context.Context) (int, error) {
	return len(s.records), nil
}

type fakeGeneStore struct {
	genes []domain.Gene
	fail  bool
}

func (s *fakeGeneStore) UpsertAll(ctx context.Context, genes []domain.Gene) (int, error) {
	if s.fail {
		return 0, fmt.Errorf("gene upsert failed")
	}
	created := len(genes) - len(s.genes)
	if created < 0 {
		created = 0
	}
	s.genes = genes
	return created, nil
}

func (s *fakeGeneStore) ListAll(ctx context.Context) ([]domain.Gene, error) {
	if s.fail {
		return nil, fmt.Errorf("gene list failed")
	}
	return s.genes, nil
}

type fakeCheckpointStore struct {
	checkpoints map[string]time.Time
}

func newFakeCheckpointStore() *fakeCheckpointStore {
	return &fakeCheckpointStore{checkpoints: make(map[string]time.Time)}
}

func (s *fakeCheckpointStore) Get(ctx context.Context, dataset string) (*domain.SyncCheckpoint, error) {
	ts, ok := s.checkpoints[dataset]
	if !ok {
		return nil, fmt.Errorf("checkpoint %s: %w", dataset, domain.ErrNotFound)
	}
	return &domain.SyncCheckpoint{Dataset: dataset, LastSuccess: ts}, nil
}

func (s *fakeCheckpointStore) Set(ctx context.Context, dataset string, ts time.Time) error {
	s.checkpoints[dataset] = ts
	return nil
}

type fakeCache struct {
	invalidated []string
}

func (c *fakeCache) Invalidate(ctx context.Context, datasets ...string) error {
	c.invalidated = append(c.invalidated, datasets...)
	return nil
}

func (c *fakeCache) Put(ctx context.Context, dataset string, payload []byte) error {
	return nil
}

type fakeScraper struct {
	genes []domain.Gene
	err   error
	calls int
}

func (s *fakeScraper) ScrapeGeneTable(ctx context.Context) ([]domain.Gene, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.genes, nil
}

type fakeDictionary struct {
	genes []domain.Gene
}

func (d *fakeDictionary) Refresh(ctx context.Context, force bool) ([]domain.Gene, error) {
	return d.genes, nil
}

type fakeFetcher struct {
	studies []external.Study
	err     error
	block   chan struct{}
}

func (f *fakeFetcher) FetchStudies(ctx context.Context, conditions []string) ([]external.Study, error) {
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.studies, nil
}

type fakeEnricher struct {
	calls int
}

func (e *fakeEnricher) Enrich(ctx context.Context, protocolID, criteriaText string) domain.EnrichedCriteria {
	e.calls++
	return domain.EnrichedCriteria{
		Inclusion: []string{"Age 18 or older"},
		Exclusion: []string{"Pregnancy"},
	}
}

type fakeNewsStore struct {
	articles map[string]domain.NewsArticle
	saveErr  error
}

func newFakeNewsStore() *fakeNewsStore {
	return &fakeNewsStore{articles: make(map[string]domain.NewsArticle)}
}

func (s *fakeNewsStore) SaveBatch(ctx context.Context, supersededURLs []string, articles []domain.NewsArticle) (created, deleted int, err error) {
	if s.saveErr != nil {
		return 0, 0, s.saveErr
	}
	for _, url := range supersededURLs {
		if _, ok := s.articles[url]; ok {
			delete(s.articles, url)
			deleted++
		}
	}
	for i := range articles {
		s.articles[articles[i].URL] = articles[i]
		created++
	}
	return created, deleted, nil
}

func (s *fakeNewsStore) ExistsByURL(ctx context.Context, url string) (bool, error) {
	_, ok := s.articles[url]
	return ok, nil
}

func (s *fakeNewsStore) ListSince(ctx context.Context, since time.Time) ([]domain.NewsArticle, error) {
	var out []domain.NewsArticle
	for _, article := range s.articles {
		if !article.PublishedAt.Before(since) {
			out = append(out, article)
		}
	}
	return out, nil
}

type fakeFeeds struct {
	items []external.FeedItem
	block chan struct{}
}

func (f *fakeFeeds) FetchAll(ctx context.Context, feedURLs []string) []external.FeedItem {
	if f.block != nil {
		<-f.block
	}
	return f.items
}
