package handlers

import (
	"campuschat/internal/dto"
	"campuschat/internal/service"
	"campuschat/pkg/ratelimit"
	"campuschat/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatHandler struct {
	resolver     *service.ResolverService
	queryLimiter *ratelimit.Limiter
	logger       *zap.Logger
}

func NewChatHandler(resolver *service.ResolverService, queryLimiter *ratelimit.Limiter, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		resolver:     resolver,
		queryLimiter: queryLimiter,
		logger:       logger,
	}
}

// Chat godoc
// @Summary Resolve a free-text question
// @Description Answers a question against the knowledge corpus, falling back to open generation when retrieval is inconclusive
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Question and optional session id"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /api/v1/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	query, err := validation.ValidateInput(req.Query, validation.QueryConfig())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	requestID := uuid.New().String()

	// Per-session admission on top of the global middleware limiter.
	sessionKey := ratelimit.FallbackKey
	if req.SessionID != "" {
		if err := validation.ValidateSessionID(req.SessionID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		sessionKey = req.SessionID
	}
	if !h.queryLimiter.IsAllowed(sessionKey) {
		h.logger.Warn("Query rate limit exceeded",
			zap.String("request_id", requestID),
			zap.String("session", sessionKey),
		)
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": "Too many questions, please slow down",
		})
	}

	sanitized, warnings := validation.ValidateAndSanitize(query)
	if len(warnings) > 0 {
		// Warn-and-allow policy: suspicious input is sanitized, not blocked.
		h.logger.Warn("Suspicious input patterns detected",
			zap.String("request_id", requestID),
			zap.Strings("warnings", warnings),
			zap.String("query", validation.SanitizeForLog(query)),
		)
	}

	resolution, err := h.resolver.Resolve(c.Context(), sanitized)
	if err != nil {
		h.logger.Error("Failed to resolve query",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process the question",
		})
	}

	return c.JSON(dto.ChatResponse{
		Answer:      resolution.Answer,
		Suggestions: resolution.Suggestions,
	})
}
