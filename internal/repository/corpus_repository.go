package repository

import (
	"context"
	"time"

	"campuschat/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// CorpusRepository mirrors the in-memory corpus into postgres so operators
// can inspect what the matcher is actually searching. Written by cmd/seed;
// the pipeline itself never reads it.
type CorpusRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCorpusRepository(db *pgxpool.Pool, logger *zap.Logger) *CorpusRepository {
	return &CorpusRepository{
		db:     db,
		logger: logger,
	}
}

// ReplaceAll swaps the stored corpus snapshot for the given entries.
func (r *CorpusRepository) ReplaceAll(ctx context.Context, entries []models.CorpusEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM corpus_entries"); err != nil {
		return err
	}

	if len(entries) > 0 {
		builder := squirrel.Insert("corpus_entries").
			Columns("id", "position", "searchable_text", "answer_text", "created_at").
			PlaceholderFormat(squirrel.Dollar)

		now := time.Now().UTC()
		for i, entry := range entries {
			builder = builder.Values(uuid.New(), i, entry.Text, entry.Answer, now)
		}

		sql, args, err := builder.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	r.logger.Info("Corpus snapshot stored", zap.Int("entries", len(entries)))
	return nil
}

// Count returns the number of stored corpus entries.
func (r *CorpusRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM corpus_entries").Scan(&count)
	return count, err
}
