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

type UnansweredRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUnansweredRepository(db *pgxpool.Pool, logger *zap.Logger) *UnansweredRepository {
	return &UnansweredRepository{
		db:     db,
		logger: logger,
	}
}

// Append logs a question no tier could answer. No deduplication: repeat
// questions are a signal of missing knowledge.
func (r *UnansweredRepository) Append(ctx context.Context, question string) error {
	query := squirrel.Insert("unanswered_questions").
		Columns("id", "question", "created_at").
		Values(uuid.New(), question, time.Now().UTC()).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// List returns unanswered questions, newest first.
func (r *UnansweredRepository) List(ctx context.Context, limit int) ([]models.UnansweredQuestion, error) {
	query := squirrel.Select("id", "question", "created_at").
		From("unanswered_questions").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []models.UnansweredQuestion
	for rows.Next() {
		var q models.UnansweredQuestion
		if err := rows.Scan(&q.ID, &q.Question, &q.CreatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	return questions, rows.Err()
}
