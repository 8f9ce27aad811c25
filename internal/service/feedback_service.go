package service

import (
	"context"

	"campuschat/internal/models"

	"go.uber.org/zap"
)

// FeedbackStore is the append-only sink for conversation feedback.
type FeedbackStore interface {
	Append(ctx context.Context, history []models.ChatMessage, feedback models.FeedbackRating) error
}

// FeedbackService records user verdicts on conversations. Recording is
// best-effort: a sink failure is logged and swallowed so it can never affect
// the chat response path.
type FeedbackService struct {
	store  FeedbackStore
	logger *zap.Logger
}

func NewFeedbackService(store FeedbackStore, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{
		store:  store,
		logger: logger,
	}
}

func (s *FeedbackService) Record(ctx context.Context, history []models.ChatMessage, feedback models.FeedbackRating) {
	if err := s.store.Append(ctx, history, feedback); err != nil {
		s.logger.Error("Failed to record feedback",
			zap.Error(err),
			zap.String("feedback", string(feedback)),
			zap.Int("history_length", len(history)),
		)
		return
	}

	s.logger.Info("Feedback recorded",
		zap.String("feedback", string(feedback)),
		zap.Int("history_length", len(history)),
	)
}
