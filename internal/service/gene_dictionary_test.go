package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsftd-research/datasync/internal/domain"
)

var scrapedGenes = []domain.Gene{
	{Symbol: "SOD1", Name: "Superoxide dismutase 1", RiskCategory: domain.RiskDefinitive},
	{Symbol: "NEFH", Name: "Neurofilament heavy chain", RiskCategory: domain.RiskTenuous},
}

func TestGeneDictionary_Refresh_ScrapesWhenNeverRefreshed(t *testing.T) {
	scraper := &fakeScraper{genes: scrapedGenes}
	store := &fakeGeneStore{}
	checkpoints := newFakeCheckpointStore()
	dict := NewGeneDictionary(scraper, store, checkpoints, 30*24*time.Hour, logrus.New())

	genes, err := dict.Refresh(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, scrapedGenes, genes)
	assert.Equal(t, 1, scraper.calls)
	assert.Equal(t, scrapedGenes, store.genes)

	checkpoint, err := checkpoints.Get(context.Background(), "genes")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), checkpoint.LastSuccess, time.Minute)
}

func TestGeneDictionary_Refresh_FreshCheckpointSkipsScrape(t *testing.T) {
	scraper := &fakeScraper{genes: scrapedGenes}
	store := &fakeGeneStore{genes: scrapedGenes}
	checkpoints := newFakeCheckpointStore()
	checkpoints.checkpoints["genes"] = time.Now().UTC().Add(-24 * time.Hour)
	dict := NewGeneDictionary(scraper, store, checkpoints, 30*24*time.Hour, logrus.New())

	genes, err := dict.Refresh(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, scrapedGenes, genes)
	assert.Equal(t, 0, scraper.calls, "fresh checkpoint must not re-scrape")
}

func TestGeneDictionary_Refresh_StaleCheckpointScrapes(t *testing.T) {
	scraper := &fakeScraper{genes: scrapedGenes}
	store := &fakeGeneStore{genes: scrapedGenes[:1]}
	checkpoints := newFakeCheckpointStore()
	checkpoints.checkpoints["genes"] = time.Now().UTC().Add(-31 * 24 * time.Hour)
	dict := NewGeneDictionary(scraper, store, checkpoints, 30*24*time.Hour, logrus.New())

	genes, err := dict.Refresh(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, scrapedGenes, genes)
	assert.Equal(t, 1, scraper.calls)
}

func TestGeneDictionary_Refresh_ForceBypassesCheckpoint(t *testing.T) {
	scraper := &fakeScraper{genes: scrapedGenes}
	store := &fakeGeneStore{genes: scrapedGenes}
	checkpoints := newFakeCheckpointStore()
	checkpoints.checkpoints["genes"] = time.Now().UTC()
	dict := NewGeneDictionary(scraper, store, checkpoints, 30*24*time.Hour, logrus.New())

	_, err := dict.Refresh(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 1, scraper.calls)
}

func TestGeneDictionary_Refresh_FallsBackToStore(t *testing.T) {
	scraper := &fakeScraper{err: fmt.Errorf("upstream down")}
	store := &fakeGeneStore{genes: scrapedGenes}
	checkpoints := newFakeCheckpointStore()
	dict := NewGeneDictionary(scraper, store, checkpoints, 30*24*time.Hour, logrus.New())

	genes, err := dict.Refresh(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, scrapedGenes, genes)
	// A fallback must not mark the dictionary as refreshed.
	_, err = checkpoints.Get(context.Background(), "genes")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGeneDictionary_Refresh_FallsBackToSeed(t *testing.T) {
	scraper := &fakeScraper{err: fmt.Errorf("upstream down")}
	store := &fakeGeneStore{}
	checkpoints := newFakeCheckpointStore()
	dict := NewGeneDictionary(scraper, store, checkpoints, 30*24*time.Hour, logrus.New())

	genes, err := dict.Refresh(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, SeedGenes, genes)
	assert.NotEmpty(t, genes)
}
