package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/alsftd-research/datasync/internal/domain"
)

// GeneRepository handles gene dictionary persistence
type GeneRepository struct {
	db  *pgxpool.Pool
	log *logrus.Logger
}

// NewGeneRepository creates a new gene repository
func NewGeneRepository(db *pgxpool.Pool, logger *logrus.Logger) *GeneRepository {
	return &GeneRepository{
		db:  db,
		log: logger,
	}
}

// UpsertAll writes the full dictionary in one transaction and reports
// how many symbols were new.
func (r *GeneRepository) UpsertAll(ctx context.Context, genes []domain.Gene) (int, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("beginning gene upsert transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	created := 0
	for _, g := range genes {
		var inserted bool
		err := tx.QueryRow(ctx, `
			INSERT INTO genes (gene_symbol, gene_name, gene_risk_category, updated_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (gene_symbol) DO UPDATE SET
				gene_name = EXCLUDED.gene_name,
				gene_risk_category = EXCLUDED.gene_risk_category,
				updated_at = NOW()
			RETURNING (xmax = 0) AS inserted`,
			g.Symbol, g.Name, string(g.RiskCategory),
		).Scan(&inserted)
		if err != nil {
			return 0, fmt.Errorf("upserting gene %s: %w", g.Symbol, err)
		}
		if inserted {
			created++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing gene upsert transaction: %w", err)
	}

	r.log.WithFields(logrus.Fields{
		"total":   len(genes),
		"created": created,
	}).Info("Gene dictionary upserted")

	return created, nil
}

// ListAll returns the persisted gene dictionary ordered by symbol
func (r *GeneRepository) ListAll(ctx context.Context) ([]domain.Gene, error) {
	rows, err := r.db.Query(ctx, `
		SELECT gene_symbol, gene_name, gene_risk_category
		FROM genes
		ORDER BY gene_symbol`)
	if err != nil {
		return nil, fmt.Errorf("listing genes: %w", err)
	}
	defer rows.Close()

	var genes []domain.Gene
	for rows.Next() {
		var g domain.Gene
		var category string
		if err := rows.Scan(&g.Symbol, &g.Name, &category); err != nil {
			return nil, fmt.Errorf("scanning gene row: %w", err)
		}
		g.RiskCategory = domain.RiskCategory(category)
		genes = append(genes, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating gene rows: %w", err)
	}
	return genes, nil
}
