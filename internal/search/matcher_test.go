package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	text string
}

func docText(d doc) string { return d.text }

func TestFindBestMatch_EmptyQuery(t *testing.T) {
	m := FindBestMatch("", []doc{{"admission process"}}, docText)
	assert.Nil(t, m.Best)
	assert.Equal(t, -1.0, m.Score)
}

func TestFindBestMatch_EmptyEntries(t *testing.T) {
	m := FindBestMatch("admission", nil, docText)
	assert.Nil(t, m.Best)
	assert.Equal(t, -1.0, m.Score)
}

func TestFindBestMatch_ScoreRange(t *testing.T) {
	entries := []doc{
		{"admission process requirements"},
		{"hostel rooms and mess"},
		{"library timings books"},
	}
	m := FindBestMatch("admission requirements", entries, docText)
	require.NotNil(t, m.Best)
	assert.GreaterOrEqual(t, m.Score, 0.0)
	assert.LessOrEqual(t, m.Score, 1.0)
	assert.Equal(t, "admission process requirements", m.Best.text)
}

func TestFindBestMatch_IdenticalTextScoresHighest(t *testing.T) {
	entries := []doc{
		{"hostel facility"},
		{"admission process"},
		{"fee structure"},
	}
	m := FindBestMatch("admission process", entries, docText)
	require.NotNil(t, m.Best)
	assert.Equal(t, "admission process", m.Best.text)
	assert.InDelta(t, 1.0, m.Score, 1e-9)
}

func TestFindBestMatch_CaseInsensitive(t *testing.T) {
	entries := []doc{
		{"admission process"},
		{"hostel facility"},
	}
	lower := FindBestMatch("admission process", entries, docText)
	upper := FindBestMatch("ADMISSION PROCESS", entries, docText)
	require.NotNil(t, lower.Best)
	require.NotNil(t, upper.Best)
	assert.Equal(t, lower.Score, upper.Score)
	assert.Equal(t, lower.Best.text, upper.Best.text)
}

func TestFindBestMatch_StopWordQueryScoresZero(t *testing.T) {
	entries := []doc{
		{"admission process"},
		{"fee structure"},
	}
	m := FindBestMatch("what is the", entries, docText)
	// Every entry scores 0 against an empty token sequence; the first entry
	// wins because 0 > -1 on the first comparison only.
	assert.Equal(t, 0.0, m.Score)
}

func TestFindBestMatch_TieKeepsFirstSeen(t *testing.T) {
	entries := []doc{
		{"hostel facility"},
		{"hostel facility"},
	}
	m := FindBestMatch("hostel", entries, docText)
	require.NotNil(t, m.Best)
	assert.Same(t, &entries[0], m.Best)
}

func TestCosineSimilarity_ZeroNorm(t *testing.T) {
	assert.Equal(t, 0.0, cosineSimilarity([]float64{0, 0}, []float64{1, 2}))
	assert.Equal(t, 0.0, cosineSimilarity([]float64{1, 2}, []float64{0, 0}))
}
