package service

import (
	"context"
	"strings"
	"sync"

	"campuschat/internal/knowledge"
	"campuschat/internal/models"
	"campuschat/internal/search"
	"campuschat/pkg/config"

	"go.uber.org/zap"
)

const (
	emptyQueryPrompt = "Please ask a question."

	greetingReply = "Hello! I'm Campuschat. I can help you with questions about admissions, courses, fees, and more. How can I assist you today?"

	apologyReply = "I'm sorry, I couldn't find an answer to your question. Would you like to talk with someone?"

	openGenerationPreamble = "Could not find a specific answer. Attempt to answer the user's question based on the following general knowledge of the college:"
)

// DefaultSuggestions accompany the greeting and the empty-query prompt.
var DefaultSuggestions = []string{
	"What courses are offered?",
	"How can I apply for admission?",
	"Is hostel facility available?",
	"What is the fee structure?",
}

// Resolution is the pipeline's answer to a single query.
type Resolution struct {
	Answer      string   `json:"answer"`
	Suggestions []string `json:"suggestions"`
}

// ResolverService orchestrates the fallback chain: greeting short-circuit,
// ranked similarity match, open generation over the whole corpus, and
// unanswered-question logging. External-service and persistence failures
// never abort a request; each tier degrades to the next-best information.
type ResolverService struct {
	store      *knowledge.Store
	generator  Generator
	suggester  Suggester
	learned    LearnedAnswerStore
	unanswered UnansweredStore
	config     *config.PipelineConfig
	logger     *zap.Logger
}

func NewResolverService(
	store *knowledge.Store,
	generator Generator,
	suggester Suggester,
	learned LearnedAnswerStore,
	unanswered UnansweredStore,
	cfg *config.PipelineConfig,
	logger *zap.Logger,
) *ResolverService {
	return &ResolverService{
		store:      store,
		generator:  generator,
		suggester:  suggester,
		learned:    learned,
		unanswered: unanswered,
		config:     cfg,
		logger:     logger,
	}
}

// Resolve answers a free-text query. It always returns a usable resolution;
// the error return is reserved for programmer mistakes, not runtime
// degradation.
func (s *ResolverService) Resolve(ctx context.Context, query string) (*Resolution, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return &Resolution{
			Answer:      emptyQueryPrompt,
			Suggestions: DefaultSuggestions,
		}, nil
	}

	category, hasCategory := search.DetectCategory(trimmed)
	if hasCategory && category == search.CategoryGreeting {
		// Greetings never reach the matcher or the generation service.
		return &Resolution{
			Answer:      greetingReply,
			Suggestions: DefaultSuggestions,
		}, nil
	}

	snapshot := s.store.Snapshot()
	entries := snapshot.Entries
	if hasCategory {
		entries = search.RankByCategory(entries, corpusText, category)
	}

	match := search.FindBestMatch(trimmed, entries, corpusText)
	if match.Best != nil && match.Score > s.config.SimilarityThreshold {
		return s.resolveFromMatch(ctx, trimmed, match), nil
	}

	if resolution := s.resolveFromFullCorpus(ctx, trimmed, snapshot.Entries); resolution != nil {
		return resolution, nil
	}

	if err := s.unanswered.Append(ctx, trimmed); err != nil {
		s.logger.Error("Failed to log unanswered question", zap.Error(err))
	}

	return &Resolution{
		Answer:      apologyReply,
		Suggestions: []string{},
	}, nil
}

// resolveFromMatch enriches a corpus hit: generation and suggestion calls
// run concurrently and both must settle before the tier resolves. Any
// failure in either drops the enrichment and serves the raw matched answer.
func (s *ResolverService) resolveFromMatch(ctx context.Context, query string, match search.Match[models.CorpusEntry]) *Resolution {
	var (
		wg          sync.WaitGroup
		answer      string
		suggestions []string
		genErr      error
		sugErr      error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		answer, genErr = s.generator.GenerateAnswer(ctx, query, match.Best.Answer)
	}()
	go func() {
		defer wg.Done()
		suggestions, sugErr = s.suggester.SuggestQuestions(ctx, query, match.Best.Answer)
	}()
	wg.Wait()

	if genErr != nil || sugErr != nil {
		s.logger.Warn("AI enrichment failed, serving matched answer directly",
			zap.NamedError("generate_error", genErr),
			zap.NamedError("suggest_error", sugErr),
			zap.Float64("score", match.Score),
		)
		return &Resolution{
			Answer:      match.Best.Answer,
			Suggestions: []string{},
		}
	}

	// Near-exact matches are not worth relearning.
	if match.Score < s.config.LearnedAnswerCutoff {
		s.learn(ctx, query, answer)
	}

	return &Resolution{
		Answer:      answer,
		Suggestions: suggestions,
	}
}

// resolveFromFullCorpus is the self-healing tier: with no entry above the
// threshold, every answer text is offered as general context for open
// generation. Returns nil when generation fails or produces nothing.
func (s *ResolverService) resolveFromFullCorpus(ctx context.Context, query string, entries []models.CorpusEntry) *Resolution {
	answers := make([]string, 0, len(entries))
	for _, entry := range entries {
		answers = append(answers, entry.Answer)
	}
	contextText := openGenerationPreamble + "\n" + strings.Join(answers, "\n\n")

	answer, err := s.generator.GenerateAnswer(ctx, query, contextText)
	if err != nil {
		s.logger.Warn("Open generation failed", zap.Error(err))
		return nil
	}
	if answer == "" {
		return nil
	}

	s.learn(ctx, query, answer)

	return &Resolution{
		Answer:      answer,
		Suggestions: []string{},
	}
}

// learn persists a generated answer best-effort and, when a new row was
// written, rebuilds the corpus so the answer is retrievable immediately.
func (s *ResolverService) learn(ctx context.Context, question, answer string) {
	saved, err := s.learned.SaveIfAbsent(ctx, question, answer)
	if err != nil {
		s.logger.Error("Failed to save learned answer", zap.Error(err))
		return
	}
	if !saved {
		s.logger.Debug("Learned answer already present", zap.String("question", question))
		return
	}

	if err := s.store.Reload(ctx); err != nil {
		s.logger.Error("Failed to reload corpus after learning", zap.Error(err))
	}
}

func corpusText(entry models.CorpusEntry) string {
	return entry.Text
}
