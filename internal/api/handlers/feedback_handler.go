package handlers

import (
	"campuschat/internal/dto"
	"campuschat/internal/models"
	"campuschat/internal/service"
	"campuschat/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type FeedbackHandler struct {
	feedbackService *service.FeedbackService
	logger          *zap.Logger
}

func NewFeedbackHandler(feedbackService *service.FeedbackService, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// Feedback godoc
// @Summary Record conversation feedback
// @Description Stores a good/bad verdict on a conversation; best-effort, never fails the caller once the payload validates
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.FeedbackRequest true "Conversation history and verdict"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/v1/feedback [post]
func (h *FeedbackHandler) Feedback(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Feedback != string(models.FeedbackGood) && req.Feedback != string(models.FeedbackBad) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Feedback must be good or bad",
		})
	}

	history := make([]validation.HistoryMessage, 0, len(req.History))
	for _, msg := range req.History {
		history = append(history, validation.HistoryMessage{Role: msg.Role, Text: msg.Text})
	}
	if err := validation.ValidateFeedbackHistory(history); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	messages := make([]models.ChatMessage, 0, len(req.History))
	for _, msg := range req.History {
		messages = append(messages, models.ChatMessage{
			Role: models.ChatRole(msg.Role),
			Text: msg.Text,
		})
	}

	h.feedbackService.Record(c.Context(), messages, models.FeedbackRating(req.Feedback))

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"status": "accepted",
	})
}
