package knowledge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestWalkRecords_QAPair(t *testing.T) {
	entries := WalkRecords(decode(t, `{"q": "Is there a canteen?", "a": "Yes, open 8 AM to 6 PM."}`))
	require.Len(t, entries, 1)
	assert.Equal(t, "Is there a canteen?", entries[0].Text)
	assert.Equal(t, "Yes, open 8 AM to 6 PM.", entries[0].Answer)
}

func TestWalkRecords_DescriptiveRecord(t *testing.T) {
	entries := WalkRecords(decode(t, `{
		"name": "B.Sc. Computer Science",
		"code": "BSC-CS",
		"duration_years": 3,
		"internal_id": "x17"
	}`))
	require.Len(t, entries, 1)

	assert.Equal(t, "B.Sc. Computer Science BSC-CS 3", entries[0].Text)
	// Every scalar field appears in the answer as key: value, including
	// unrecognized ones.
	assert.Contains(t, entries[0].Answer, "name: B.Sc. Computer Science")
	assert.Contains(t, entries[0].Answer, "code: BSC-CS")
	assert.Contains(t, entries[0].Answer, "duration_years: 3")
	assert.Contains(t, entries[0].Answer, "internal_id: x17")
	assert.NotEmpty(t, entries[0].Answer)
}

func TestWalkRecords_ContainerRecursesWithoutEmitting(t *testing.T) {
	entries := WalkRecords(decode(t, `{
		"unrelated_key": "value",
		"nested": {
			"name": "Commerce",
			"description": "Accounting and finance"
		}
	}`))
	require.Len(t, entries, 1)
	assert.Equal(t, "Commerce Accounting and finance", entries[0].Text)
}

func TestWalkRecords_DescriptiveNodeStillRecurses(t *testing.T) {
	entries := WalkRecords(decode(t, `{
		"name": "Computer Science",
		"programs": [
			{"name": "B.Sc. Computer Science", "code": "BSC-CS"},
			{"name": "M.Sc. Computer Science", "code": "MSC-CS"}
		]
	}`))
	require.Len(t, entries, 3)
	assert.Equal(t, "Computer Science", entries[0].Text)
}

func TestWalkRecords_ArraysOfQA(t *testing.T) {
	entries := WalkRecords(decode(t, `[
		{"q": "Q1", "a": "A1"},
		{"q": "Q2", "a": "A2"}
	]`))
	require.Len(t, entries, 2)
	assert.Equal(t, "Q1", entries[0].Text)
	assert.Equal(t, "Q2", entries[1].Text)
}

func TestWalkRecords_NilAndScalars(t *testing.T) {
	assert.Empty(t, WalkRecords(nil))
	assert.Empty(t, WalkRecords(decode(t, `"just a string"`)))
	assert.Empty(t, WalkRecords(decode(t, `{"a_key": "no recognized fields"}`)))
}

func TestWalkRecords_EveryEntryHasAnswer(t *testing.T) {
	entries := WalkRecords(decode(t, `{
		"departments": [
			{"name": "English", "activities": "Literary club"},
			{"faqs": [{"q": "Wi-Fi?", "a": "Yes."}]}
		]
	}`))
	require.NotEmpty(t, entries)
	for _, entry := range entries {
		assert.NotEmpty(t, entry.Answer)
	}
}
