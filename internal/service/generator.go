package service

import "context"

// Generator produces an answer to a question grounded in the supplied
// context text. Implementations are external services; any error they return
// must be treated as non-fatal by callers.
type Generator interface {
	GenerateAnswer(ctx context.Context, question, contextText string) (string, error)
}

// Suggester proposes follow-up questions given the previous exchange. Same
// failure contract as Generator.
type Suggester interface {
	SuggestQuestions(ctx context.Context, userQuestion, previousAnswer string) ([]string, error)
}

// LearnedAnswerStore is the append-only sink for generated answers. The
// absence test is a case-insensitive exact match on the question.
type LearnedAnswerStore interface {
	SaveIfAbsent(ctx context.Context, question, answer string) (bool, error)
}

// UnansweredStore is the append-only sink for questions nothing could answer.
type UnansweredStore interface {
	Append(ctx context.Context, question string) error
}
