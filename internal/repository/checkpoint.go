package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/alsftd-research/datasync/internal/domain"
)

// CheckpointRepository records per-dataset refresh timestamps
type CheckpointRepository struct {
	db  *pgxpool.Pool
	log *logrus.Logger
}

// NewCheckpointRepository creates a new checkpoint repository
func NewCheckpointRepository(db *pgxpool.Pool, logger *logrus.Logger) *CheckpointRepository {
	return &CheckpointRepository{
		db:  db,
		log: logger,
	}
}

// Get returns the checkpoint for a dataset, or domain.ErrNotFound if the
// dataset has never completed a refresh.
func (r *CheckpointRepository) Get(ctx context.Context, dataset string) (*domain.SyncCheckpoint, error) {
	var cp domain.SyncCheckpoint
	err := r.db.QueryRow(ctx,
		`SELECT dataset, last_success FROM sync_checkpoints WHERE dataset = $1`,
		dataset,
	).Scan(&cp.Dataset, &cp.LastSuccess)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("checkpoint for %q: %w", dataset, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("getting checkpoint for %q: %w", dataset, err)
	}
	return &cp, nil
}

// Set records a successful refresh for a dataset
func (r *CheckpointRepository) Set(ctx context.Context, dataset string, ts time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sync_checkpoints (dataset, last_success)
		VALUES ($1, $2)
		ON CONFLICT (dataset) DO UPDATE SET last_success = EXCLUDED.last_success`,
		dataset, ts,
	)
	if err != nil {
		return fmt.Errorf("setting checkpoint for %q: %w", dataset, err)
	}

	r.log.WithFields(logrus.Fields{
		"dataset":      dataset,
		"last_success": ts,
	}).Debug("Checkpoint updated")

	return nil
}
