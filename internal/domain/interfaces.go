package domain

import (
	"context"
	"time"
)

// TrialStore persists trial records. ReconcileBatch applies the whole
// batch atomically: upsert every record by unique protocol id, then
// delete every persisted id absent from the batch. A crash mid-call must
// leave the store in the pre-call or fully-applied state.
type TrialStore interface {
	ReconcileBatch(ctx context.Context, trials []TrialRecord) (created, updated, deleted int, err error)
	ListIDs(ctx context.Context) ([]string, error)
	CountAll(ctx context.Context) (int, error)
}

// GeneStore persists the canonical gene dictionary. Only the dictionary
// refresh path writes here.
type GeneStore interface {
	UpsertAll(ctx context.Context, genes []Gene) (created int, err error)
	ListAll(ctx context.Context) ([]Gene, error)
}

// NewsStore persists deduplicated news articles. SaveBatch applies one
// run's outcome atomically: delete every superseded URL (stored
// articles that lost to a better-ranked duplicate), then insert the
// surviving batch. A crash mid-call must leave the store in the
// pre-call or fully-applied state.
type NewsStore interface {
	SaveBatch(ctx context.Context, supersededURLs []string, articles []NewsArticle) (created, deleted int, err error)
	ExistsByURL(ctx context.Context, url string) (bool, error)
	ListSince(ctx context.Context, since time.Time) ([]NewsArticle, error)
}

// CheckpointStore records last-successful-refresh timestamps per logical
// dataset. Get returns ErrNotFound when a dataset has never refreshed.
type CheckpointStore interface {
	Get(ctx context.Context, dataset string) (*SyncCheckpoint, error)
	Set(ctx context.Context, dataset string, ts time.Time) error
}

// DatasetCache is the externally-owned projection cache that downstream
// read APIs consume. The sync engine invalidates it after every
// successful run; it never reads through it.
type DatasetCache interface {
	Invalidate(ctx context.Context, datasets ...string) error
	Put(ctx context.Context, dataset string, payload []byte) error
}

// GeneDictionarySource produces the canonical gene list, honoring the
// staleness policy and its fallback chain.
type GeneDictionarySource interface {
	Refresh(ctx context.Context, force bool) ([]Gene, error)
}

// CriteriaEnricher splits free eligibility text into structured
// inclusion/exclusion lists. Implementations are best-effort: any
// transport or parsing failure yields empty lists, not an error that
// fails the owning sync run.
type CriteriaEnricher interface {
	Enrich(ctx context.Context, protocolID, criteriaText string) EnrichedCriteria
}
