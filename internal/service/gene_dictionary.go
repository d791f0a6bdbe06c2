package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alsftd-research/datasync/internal/domain"
)

const geneDataset = "genes"

// GeneScraper produces the raw upstream gene table.
type GeneScraper interface {
	ScrapeGeneTable(ctx context.Context) ([]domain.Gene, error)
}

// GeneDictionary owns the canonical gene list. The upstream table
// changes rarely, so re-scrapes are gated on a staleness checkpoint;
// when the upstream is unreachable the previously stored dictionary is
// served, and an empty store falls back to the curated seed so gene
// resolution never runs against an empty dictionary.
type GeneDictionary struct {
	scraper      GeneScraper
	store        domain.GeneStore
	checkpoints  domain.CheckpointStore
	stalenessAge time.Duration
	log          *logrus.Logger
}

// NewGeneDictionary creates the gene dictionary service
func NewGeneDictionary(
	scraper GeneScraper,
	store domain.GeneStore,
	checkpoints domain.CheckpointStore,
	stalenessAge time.Duration,
	logger *logrus.Logger,
) *GeneDictionary {
	if stalenessAge == 0 {
		stalenessAge = 30 * 24 * time.Hour
	}
	return &GeneDictionary{
		scraper:      scraper,
		store:        store,
		checkpoints:  checkpoints,
		stalenessAge: stalenessAge,
		log:          logger,
	}
}

// Refresh returns the current dictionary. A fresh checkpoint short-
// circuits to the store unless force is set. A successful scrape
// updates the store and the checkpoint; a failed scrape degrades to
// the store and then to the seed list without touching either.
func (d *GeneDictionary) Refresh(ctx context.Context, force bool) ([]domain.Gene, error) {
	if !force && !d.isStale(ctx) {
		stored, err := d.store.ListAll(ctx)
		if err == nil && len(stored) > 0 {
			d.log.WithField("genes", len(stored)).Debug("Gene dictionary fresh, using stored copy")
			return stored, nil
		}
		// An empty store with a fresh checkpoint should not happen,
		// but scraping is the only way to recover from it.
	}

	scraped, err := d.scraper.ScrapeGeneTable(ctx)
	if err != nil {
		d.log.WithField("error", err).Warn("Gene table scrape failed, falling back")
		return d.fallback(ctx)
	}

	created, err := d.store.UpsertAll(ctx, scraped)
	if err != nil {
		return nil, err
	}
	if err := d.checkpoints.Set(ctx, geneDataset, time.Now().UTC()); err != nil {
		return nil, err
	}

	d.log.WithFields(logrus.Fields{
		"genes":   len(scraped),
		"created": created,
	}).Info("Gene dictionary refreshed")

	return scraped, nil
}

func (d *GeneDictionary) isStale(ctx context.Context) bool {
	checkpoint, err := d.checkpoints.Get(ctx, geneDataset)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			d.log.WithField("error", err).Warn("Checkpoint lookup failed, treating dictionary as stale")
		}
		return true
	}
	return time.Since(checkpoint.LastSuccess) >= d.stalenessAge
}

func (d *GeneDictionary) fallback(ctx context.Context) ([]domain.Gene, error) {
	stored, err := d.store.ListAll(ctx)
	if err == nil && len(stored) > 0 {
		d.log.WithField("genes", len(stored)).Info("Serving stored gene dictionary")
		return stored, nil
	}
	if err != nil {
		d.log.WithField("error", err).Warn("Stored gene dictionary unavailable")
	}

	d.log.WithField("genes", len(SeedGenes)).Warn("Serving curated seed gene dictionary")
	return SeedGenes, nil
}
