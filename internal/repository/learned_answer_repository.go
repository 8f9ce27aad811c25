package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"campuschat/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type LearnedAnswerRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger

	// Serializes the check-then-insert so concurrent saves of the same
	// question cannot both pass the absence test.
	mu sync.Mutex
}

func NewLearnedAnswerRepository(db *pgxpool.Pool, logger *zap.Logger) *LearnedAnswerRepository {
	return &LearnedAnswerRepository{
		db:     db,
		logger: logger,
	}
}

// SaveIfAbsent appends a learned answer unless one already exists for the
// same question, compared case-insensitively. Returns whether a row was
// written.
func (r *LearnedAnswerRepository) SaveIfAbsent(ctx context.Context, question, answer string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existsQuery := squirrel.Select("1").
		From("learned_answers").
		Where("LOWER(question) = LOWER(?)", question).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := existsQuery.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err == nil {
		// Already learned; the log stays deduplicated.
		return false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, err
	}

	insert := squirrel.Insert("learned_answers").
		Columns("id", "question", "answer", "created_at").
		Values(uuid.New(), question, answer, time.Now().UTC()).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err = insert.ToSql()
	if err != nil {
		return false, err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return false, err
	}
	return true, nil
}

// List returns every learned answer, oldest first, matching corpus insertion
// order.
func (r *LearnedAnswerRepository) List(ctx context.Context) ([]models.LearnedAnswer, error) {
	query := squirrel.Select("id", "question", "answer", "created_at").
		From("learned_answers").
		OrderBy("created_at ASC").
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

	var answers []models.LearnedAnswer
	for rows.Next() {
		var la models.LearnedAnswer
		if err := rows.Scan(&la.ID, &la.Question, &la.Answer, &la.CreatedAt); err != nil {
			return nil, err
		}
		answers = append(answers, la)
	}

	return answers, rows.Err()
}
