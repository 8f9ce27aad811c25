package repository

import (
	"context"
	"encoding/json"
	"time"

	"campuschat/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type FeedbackRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewFeedbackRepository(db *pgxpool.Pool, logger *zap.Logger) *FeedbackRepository {
	return &FeedbackRepository{
		db:     db,
		logger: logger,
	}
}

// Append stores a conversation with its rating. History is kept as jsonb.
func (r *FeedbackRepository) Append(ctx context.Context, history []models.ChatMessage, feedback models.FeedbackRating) error {
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return err
	}

	query := squirrel.Insert("feedback").
		Columns("id", "history", "feedback", "created_at").
		Values(uuid.New(), historyJSON, string(feedback), time.Now().UTC()).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
