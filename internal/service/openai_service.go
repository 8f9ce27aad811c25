package service

import (
	"context"
	"fmt"
	"strings"

	"campuschat/pkg/config"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIService is the OpenAI-backed implementation of Generator and
// Suggester, selected with LLM_PROVIDER=openai.
type OpenAIService struct {
	client *openai.Client
	config *config.LLMConfig
	logger *zap.Logger
}

func NewOpenAIService(cfg *config.LLMConfig, logger *zap.Logger) *OpenAIService {
	return &OpenAIService{
		client: openai.NewClient(cfg.OpenAIAPIKey),
		config: cfg,
		logger: logger,
	}
}

func (s *OpenAIService) GenerateAnswer(ctx context.Context, question, contextText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	prompt := fmt.Sprintf(`Answer the user's question based on the provided context. The answer should be conversational and directly address the user's query.

User Question: %s
Context: %s

Based on the context, provide a clear and concise answer.`, question, contextText)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.config.OpenAIModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildSystemInstruction()},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *OpenAIService) SuggestQuestions(ctx context.Context, userQuestion, previousAnswer string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	prompt := fmt.Sprintf(`Given the user's question and the previous answer, suggest three potential follow-up questions or related FAQs that the user might be interested in.

User Question: %s
Previous Answer: %s

Return ONLY a JSON array of strings, without markdown markup or comments before or after the JSON.`, userQuestion, previousAnswer)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.config.OpenAIModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestions: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from LLM")
	}

	suggestions, err := parseSuggestionList(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Suggestions generated", zap.Int("count", len(suggestions)))
	return suggestions, nil
}
