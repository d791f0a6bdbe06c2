package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/alsftd-research/datasync/internal/domain"
	"github.com/alsftd-research/datasync/pkg/external"
)

const trialDataset = "trials"

// StudyFetcher produces the raw registry study set for a condition
// query.
type StudyFetcher interface {
	FetchStudies(ctx context.Context, conditions []string) ([]external.Study, error)
}

// SyncEngine runs one full trial refresh: fetch, classify, normalize,
// resolve genes, enrich criteria, reconcile the store and invalidate
// the projection cache. A run either fully applies or fully aborts;
// only one run may be in flight per engine.
type SyncEngine struct {
	fetcher    StudyFetcher
	classifier *ConditionClassifier
	normalizer *Normalizer
	dictionary domain.GeneDictionarySource
	enricher   domain.CriteriaEnricher
	trials     domain.TrialStore
	checkpoint domain.CheckpointStore
	cache      domain.DatasetCache
	overrides  map[string][]string
	cfg        *domain.Config
	log        *logrus.Logger

	running atomic.Bool
}

// NewSyncEngine wires a sync engine from its collaborators. The
// enricher and cache may be nil when those stages are disabled.
func NewSyncEngine(
	fetcher StudyFetcher,
	classifier *ConditionClassifier,
	normalizer *Normalizer,
	dictionary domain.GeneDictionarySource,
	enricher domain.CriteriaEnricher,
	trials domain.TrialStore,
	checkpoint domain.CheckpointStore,
	cache domain.DatasetCache,
	cfg *domain.Config,
	logger *logrus.Logger,
) *SyncEngine {
	return &SyncEngine{
		fetcher:    fetcher,
		classifier: classifier,
		normalizer: normalizer,
		dictionary: dictionary,
		enricher:   enricher,
		trials:     trials,
		checkpoint: checkpoint,
		cache:      cache,
		overrides:  DefaultGeneOverrides,
		cfg:        cfg,
		log:        logger,
	}
}

// Run executes one synchronization cycle. It returns ErrRunInProgress
// when another run holds the engine, and any fetch error aborts the
// cycle before the store is touched.
func (e *SyncEngine) Run(ctx context.Context, force bool) (*domain.RunSummary, error) {
	if !e.running.CompareAndSwap(false, true) {
		return nil, domain.ErrRunInProgress
	}
	defer e.running.Store(false)

	runID := uuid.New().String()
	started := time.Now()
	runLog := e.log.WithFields(logrus.Fields{
		"run_id":  runID,
		"dataset": trialDataset,
	})
	runLog.Info("Sync run started")

	studies, err := e.fetcher.FetchStudies(ctx, e.cfg.Classifier.IncludeConditions)
	if err != nil {
		runLog.WithField("error", err).Error("Registry fetch failed, aborting run")
		return nil, err
	}

	genes, err := e.dictionary.Refresh(ctx, force)
	if err != nil {
		runLog.WithField("error", err).Error("Gene dictionary refresh failed, aborting run")
		return nil, err
	}

	// The matcher is rebuilt per run from an immutable dictionary
	// snapshot, so worker goroutines share it without locking.
	matcher, err := NewGeneMatcher(genes, e.overrides, e.log)
	if err != nil {
		return nil, err
	}

	accepted := make([]external.Study, 0, len(studies))
	for i := range studies {
		if e.classifier.Accept(studies[i].ProtocolSection.ConditionsModule.Conditions) {
			accepted = append(accepted, studies[i])
		}
	}
	rejected := len(studies) - len(accepted)

	records := e.buildRecords(ctx, accepted, matcher)

	created, updated, deleted, err := e.trials.ReconcileBatch(ctx, records)
	if err != nil {
		runLog.WithField("error", err).Error("Trial reconcile failed, aborting run")
		return nil, err
	}

	if err := e.checkpoint.Set(ctx, trialDataset, time.Now().UTC()); err != nil {
		return nil, err
	}

	if e.cache != nil && e.cfg.Cache.Enabled {
		if err := e.cache.Invalidate(ctx, trialDataset, geneDataset); err != nil {
			// The store already holds the new data; a stale projection
			// expires on its own TTL.
			runLog.WithField("error", err).Warn("Dataset cache invalidation failed")
		}
	}

	summary := &domain.RunSummary{
		RunID:    runID,
		Dataset:  trialDataset,
		Fetched:  len(studies),
		Rejected: rejected,
		Created:  created,
		Updated:  updated,
		Deleted:  deleted,
		Duration: time.Since(started),
	}

	runLog.WithFields(logrus.Fields{
		"fetched":  summary.Fetched,
		"rejected": summary.Rejected,
		"created":  summary.Created,
		"updated":  summary.Updated,
		"deleted":  summary.Deleted,
		"duration": summary.Duration.String(),
	}).Info("Sync run complete")

	return summary, nil
}

// buildRecords normalizes and gene-resolves studies on a bounded worker
// pool. Output order follows input order so reconcile batches are
// deterministic.
func (e *SyncEngine) buildRecords(ctx context.Context, studies []external.Study, matcher *GeneMatcher) []domain.TrialRecord {
	workers := e.cfg.Sync.Workers
	if workers <= 0 {
		workers = 8
	}
	if workers > len(studies) {
		workers = len(studies)
	}

	records := make([]domain.TrialRecord, len(studies))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				records[i] = e.buildRecord(ctx, &studies[i], matcher)
			}
		}()
	}

	for i := range studies {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return records
}

func (e *SyncEngine) buildRecord(ctx context.Context, study *external.Study, matcher *GeneMatcher) domain.TrialRecord {
	record := e.normalizer.Normalize(study)
	record.Genes = matcher.Resolve(record.NCTID, CombineKeywords(&record))

	if e.enricher != nil && e.cfg.Enrichment.Enabled {
		enriched := e.enricher.Enrich(ctx, record.UniqueProtocolID, record.EligibilityCriteria)
		record.InclusionCriteria = enriched.Inclusion
		record.ExclusionCriteria = enriched.Exclusion
	}

	return record
}
