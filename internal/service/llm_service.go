package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"campuschat/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// LLMService is the GigaChat-backed implementation of Generator and
// Suggester.
type LLMService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	config *config.LLMConfig
	logger *zap.Logger
}

func buildSystemInstruction() string {
	return `You are a helpful AI assistant for a college. Your task is to answer questions from prospective and current students based on the context provided with each request.

Rules:
- Answer conversationally and directly address the user's question.
- Use only the provided context; do not invent facts about the college.
- Keep answers concise and practical.
- If the context does not contain the answer, say so plainly instead of guessing.`
}

func NewLLMService(cfg *config.LLMConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.GigaChatScope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.GigaChatAPIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = buildSystemInstruction()
	model.Temperature = 0.3

	return &LLMService{
		client: client,
		model:  model,
		config: cfg,
		logger: logger,
	}, nil
}

// GenerateAnswer produces a conversational answer grounded in contextText.
func (s *LLMService) GenerateAnswer(ctx context.Context, question, contextText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	prompt := fmt.Sprintf(`Answer the user's question based on the provided context. The answer should be conversational and directly address the user's query.

User Question: %s
Context: %s

Based on the context, provide a clear and concise answer.`, question, contextText)

	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	s.logger.Debug("Answer generated", zap.Int("length", len(answer)))
	return answer, nil
}

// SuggestQuestions asks the model for three follow-up questions.
func (s *LLMService) SuggestQuestions(ctx context.Context, userQuestion, previousAnswer string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	prompt := fmt.Sprintf(`Given the user's question and the previous answer, suggest three potential follow-up questions or related FAQs that the user might be interested in.

User Question: %s
Previous Answer: %s

Return ONLY a JSON array of strings, without markdown markup or comments before or after the JSON.`, userQuestion, previousAnswer)

	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
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

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}

// parseSuggestionList extracts a JSON string array from a model response
// that may be wrapped in markdown fences or surrounding prose.
func parseSuggestionList(content string) ([]string, error) {
	content = strings.TrimSpace(content)

	jsonStart := strings.Index(content, "[")
	jsonEnd := strings.LastIndex(content, "]")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		return nil, fmt.Errorf("invalid suggestion format: %s", content)
	}

	jsonStr := content[jsonStart : jsonEnd+1]

	var suggestions []string
	if err := json.Unmarshal([]byte(jsonStr), &suggestions); err != nil {
		jsonStr = strings.TrimSpace(jsonStr)
		jsonStr = strings.TrimPrefix(jsonStr, "```json")
		jsonStr = strings.TrimPrefix(jsonStr, "```")
		jsonStr = strings.TrimSuffix(jsonStr, "```")
		jsonStr = strings.TrimSpace(jsonStr)

		if err := json.Unmarshal([]byte(jsonStr), &suggestions); err != nil {
			return nil, fmt.Errorf("failed to parse suggestions: %w, content: %s", err, content)
		}
	}

	return suggestions, nil
}
