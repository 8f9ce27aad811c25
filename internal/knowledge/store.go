package knowledge

import (
	"context"
	"fmt"
	"sync/atomic"

	"campuschat/internal/models"

	"go.uber.org/zap"
)

// LearnedSource lists previously learned answers so they rejoin the corpus
// on reload.
type LearnedSource interface {
	List(ctx context.Context) ([]models.LearnedAnswer, error)
}

// Snapshot is an immutable view of the search corpus. Readers take the
// current snapshot and keep using it even if a reload swaps in a newer one
// mid-request.
type Snapshot struct {
	Entries []models.CorpusEntry
}

// Store owns the corpus: static entries built once from the knowledge files
// plus the live learned-answer log, merged on every Reload and published via
// an atomic pointer swap so readers never see a partially-built corpus.
type Store struct {
	static  []models.CorpusEntry
	learned LearnedSource
	snap    atomic.Pointer[Snapshot]
	logger  *zap.Logger
}

func NewStore(static []models.CorpusEntry, learned LearnedSource, logger *zap.Logger) *Store {
	s := &Store{
		static:  static,
		learned: learned,
		logger:  logger,
	}
	s.snap.Store(&Snapshot{Entries: static})
	return s
}

// Reload rebuilds the corpus from the static entries and the learned-answer
// log, then swaps the snapshot.
func (s *Store) Reload(ctx context.Context) error {
	var learned []models.LearnedAnswer
	if s.learned != nil {
		var err error
		learned, err = s.learned.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list learned answers: %w", err)
		}
	}

	entries := make([]models.CorpusEntry, 0, len(s.static)+len(learned))
	entries = append(entries, s.static...)
	for _, l := range learned {
		entries = append(entries, models.CorpusEntry{Text: l.Question, Answer: l.Answer})
	}

	s.snap.Store(&Snapshot{Entries: entries})
	s.logger.Info("Search corpus rebuilt",
		zap.Int("static_entries", len(s.static)),
		zap.Int("learned_entries", len(learned)),
	)
	return nil
}

// Snapshot returns the current corpus view.
func (s *Store) Snapshot() *Snapshot {
	return s.snap.Load()
}
