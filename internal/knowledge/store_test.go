package knowledge

import (
	"context"
	"errors"
	"testing"

	"campuschat/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLearnedSource struct {
	answers []models.LearnedAnswer
	err     error
}

func (f *fakeLearnedSource) List(ctx context.Context) ([]models.LearnedAnswer, error) {
	return f.answers, f.err
}

func TestStore_InitialSnapshotServesStaticEntries(t *testing.T) {
	static := []models.CorpusEntry{{Text: "admission", Answer: "June"}}
	store := NewStore(static, nil, zap.NewNop())

	snap := store.Snapshot()
	require.Len(t, snap.Entries, 1)
	assert.Equal(t, "admission", snap.Entries[0].Text)
}

func TestStore_ReloadMergesLearnedAnswers(t *testing.T) {
	static := []models.CorpusEntry{{Text: "admission", Answer: "June"}}
	learned := &fakeLearnedSource{answers: []models.LearnedAnswer{
		{Question: "When is the annual fest?", Answer: "Every February."},
	}}
	store := NewStore(static, learned, zap.NewNop())

	require.NoError(t, store.Reload(context.Background()))

	snap := store.Snapshot()
	require.Len(t, snap.Entries, 2)
	assert.Equal(t, "admission", snap.Entries[0].Text)
	assert.Equal(t, "When is the annual fest?", snap.Entries[1].Text)
	assert.Equal(t, "Every February.", snap.Entries[1].Answer)
}

func TestStore_ReloadFailureKeepsOldSnapshot(t *testing.T) {
	static := []models.CorpusEntry{{Text: "admission", Answer: "June"}}
	learned := &fakeLearnedSource{err: errors.New("db down")}
	store := NewStore(static, learned, zap.NewNop())

	before := store.Snapshot()
	require.Error(t, store.Reload(context.Background()))
	assert.Same(t, before, store.Snapshot())
}

func TestStore_SnapshotStableAcrossReload(t *testing.T) {
	static := []models.CorpusEntry{{Text: "admission", Answer: "June"}}
	learned := &fakeLearnedSource{}
	store := NewStore(static, learned, zap.NewNop())

	held := store.Snapshot()
	learned.answers = []models.LearnedAnswer{{Question: "new", Answer: "entry"}}
	require.NoError(t, store.Reload(context.Background()))

	// A reader holding the old snapshot is unaffected by the swap.
	assert.Len(t, held.Entries, 1)
	assert.Len(t, store.Snapshot().Entries, 2)
}
