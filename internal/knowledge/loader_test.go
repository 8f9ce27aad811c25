package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"campuschat/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadSources_ReadsAllFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "intents.json", `{"intents": [
		{"intent": "fees", "keywords": ["fee"], "questions": ["What is the fee?"], "answer": "25,000 per year."}
	]}`)
	writeFile(t, dir, "faq.json", `{
		"Is there parking?": {"answer": "Yes, near gate 2.", "category": "campus", "tags": ["parking"]}
	}`)
	writeFile(t, dir, "college.json", `{"about": {"name": "Greenfield", "overview": "Established 1985."}}`)

	sources, err := LoadSources(dir, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, sources.Intents, 1)
	assert.Len(t, sources.FAQ, 1)
	assert.NotNil(t, sources.Institution)
}

func TestLoadSources_MissingFilesTolerated(t *testing.T) {
	sources, err := LoadSources(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, sources.Intents)
	assert.Empty(t, sources.FAQ)
	assert.Nil(t, sources.Institution)
}

func TestLoadSources_MalformedJSONFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "intents.json", `{not json`)

	_, err := LoadSources(dir, zap.NewNop())
	assert.Error(t, err)
}

func TestStaticEntries_FlattensAllProvenances(t *testing.T) {
	sources := &Sources{
		Intents: []models.Intent{{
			Intent:    "fees",
			Keywords:  []string{"fee", "tuition"},
			Questions: []string{"What is the fee?"},
			Answer:    "25,000 per year.",
		}},
		FAQ: map[string]models.FAQDetails{
			"Is there parking?": {Answer: "Yes, near gate 2.", Tags: []string{"parking", "campus"}},
		},
		Institution: map[string]any{
			"about": map[string]any{"name": "Greenfield", "overview": "Established 1985."},
		},
	}

	entries := StaticEntries(sources)
	require.Len(t, entries, 3)

	assert.Equal(t, "fees fee tuition What is the fee?", entries[0].Text)
	assert.Equal(t, "25,000 per year.", entries[0].Answer)

	assert.Equal(t, "Is there parking? parking campus", entries[1].Text)
	assert.Equal(t, "Yes, near gate 2.", entries[1].Answer)

	assert.Equal(t, "Greenfield Established 1985.", entries[2].Text)
}
