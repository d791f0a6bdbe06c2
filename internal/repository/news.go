package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/alsftd-research/datasync/internal/domain"
)

// NewsRepository handles news article persistence
type NewsRepository struct {
	db  *pgxpool.Pool
	log *logrus.Logger
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *pgxpool.Pool, logger *logrus.Logger) *NewsRepository {
	return &NewsRepository{
		db:  db,
		log: logger,
	}
}

// SaveBatch deletes every superseded article and inserts the run's
// survivors inside a single transaction. A failure anywhere rolls the
// whole batch back.
func (r *NewsRepository) SaveBatch(ctx context.Context, supersededURLs []string, articles []domain.NewsArticle) (created, deleted int, err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, 0, fmt.Errorf("beginning news batch transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if len(supersededURLs) > 0 {
		tag, err := tx.Exec(ctx,
			`DELETE FROM news_articles WHERE url = ANY($1::text[])`, supersededURLs)
		if err != nil {
			return 0, 0, fmt.Errorf("deleting superseded articles: %w", err)
		}
		deleted = int(tag.RowsAffected())
	}

	for i := range articles {
		if err := r.insertTx(ctx, tx, &articles[i]); err != nil {
			return 0, 0, fmt.Errorf("inserting article %s: %w", articles[i].URL, err)
		}
		created++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, fmt.Errorf("committing news batch transaction: %w", err)
	}

	r.log.WithFields(logrus.Fields{
		"created": created,
		"deleted": deleted,
	}).Info("News batch saved")

	return created, deleted, nil
}

// insertTx writes one article inside the batch transaction.
func (r *NewsRepository) insertTx(ctx context.Context, tx pgx.Tx, a *domain.NewsArticle) error {
	tags, err := json.Marshal(a.Tags)
	if err != nil {
		return fmt.Errorf("marshaling article tags: %w", err)
	}
	genes, err := json.Marshal(a.Genes)
	if err != nil {
		return fmt.Errorf("marshaling article genes: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO news_articles (
			title, summary, source_name, url, image_url,
			publication_date, tags, genes, source_tier
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.Title, a.Summary, a.SourceName, a.URL, a.ImageURL,
		a.PublishedAt, tags, genes, int(a.SourceTier),
	)
	if err != nil {
		return fmt.Errorf("inserting news article: %w", err)
	}

	return nil
}

// ExistsByURL reports whether an article with this canonical URL is
// already persisted. URL identity is the first, cheap duplicate check;
// title similarity handles the rest.
func (r *NewsRepository) ExistsByURL(ctx context.Context, url string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM news_articles WHERE url = $1)`, url,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking article url: %w", err)
	}
	return exists, nil
}

// ListSince returns articles published at or after the cutoff, newest first
func (r *NewsRepository) ListSince(ctx context.Context, since time.Time) ([]domain.NewsArticle, error) {
	rows, err := r.db.Query(ctx, `
		SELECT title, summary, source_name, url, COALESCE(image_url, ''),
			   publication_date, COALESCE(tags, '[]'::jsonb), COALESCE(genes, '[]'::jsonb), source_tier
		FROM news_articles
		WHERE publication_date >= $1
		ORDER BY publication_date DESC`, since)
	if err != nil {
		return nil, fmt.Errorf("listing recent articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.NewsArticle
	for rows.Next() {
		var a domain.NewsArticle
		var tags, genes []byte
		var tier int
		if err := rows.Scan(&a.Title, &a.Summary, &a.SourceName, &a.URL, &a.ImageURL,
			&a.PublishedAt, &tags, &genes, &tier); err != nil {
			return nil, fmt.Errorf("scanning article row: %w", err)
		}
		if err := json.Unmarshal(tags, &a.Tags); err != nil {
			return nil, fmt.Errorf("unmarshaling article tags: %w", err)
		}
		if err := json.Unmarshal(genes, &a.Genes); err != nil {
			return nil, fmt.Errorf("unmarshaling article genes: %w", err)
		}
		a.SourceTier = domain.SourceTier(tier)
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating article rows: %w", err)
	}
	return articles, nil
}
