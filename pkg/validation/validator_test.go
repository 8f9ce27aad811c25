package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInput_TrimsAndAccepts(t *testing.T) {
	got, err := ValidateInput("  what courses are offered?  ", DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "what courses are offered?", got)
}

func TestValidateInput_MinLength(t *testing.T) {
	_, err := ValidateInput("   ", DefaultConfig())
	assert.ErrorContains(t, err, "at least 1 characters")

	// QueryConfig has no minimum; empty input is the pipeline's business.
	got, err := ValidateInput("   ", QueryConfig())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestValidateInput_MaxLength(t *testing.T) {
	_, err := ValidateInput(strings.Repeat("ab", 5001), DefaultConfig())
	assert.ErrorContains(t, err, "maximum length")
}

func TestValidateInput_MaxLines(t *testing.T) {
	cfg := DefaultConfig()
	_, err := ValidateInput(strings.Repeat("line\n", cfg.MaxLines), cfg)
	assert.ErrorContains(t, err, "maximum of 100 lines")

	_, err = ValidateInput(strings.Repeat("line\n", cfg.MaxLines-1), cfg)
	assert.NoError(t, err)
}

func TestValidateInput_ConsecutiveChars(t *testing.T) {
	cfg := Config{MaxConsecutiveChars: 5}

	_, err := ValidateInput("aaaaa", cfg)
	assert.ErrorContains(t, err, "consecutive identical characters")

	_, err = ValidateInput("aaaab", cfg)
	assert.NoError(t, err)

	// Non-adjacent repeats do not count as a run.
	_, err = ValidateInput("ababababab", cfg)
	assert.NoError(t, err)
}

func TestValidateSessionID(t *testing.T) {
	assert.NoError(t, ValidateSessionID("session-1"))
	assert.NoError(t, ValidateSessionID("session-1756401234567"))

	for _, id := range []string{"", "session-", "session-abc", "SESSION-1", "session-1 ", "user-1"} {
		assert.Error(t, ValidateSessionID(id), "id %q", id)
	}
}

func TestValidateFeedbackHistory(t *testing.T) {
	valid := []HistoryMessage{
		{Role: "user", Text: "What is the fee structure?"},
		{Role: "bot", Text: "The tuition fee is 50000 per year."},
	}
	assert.NoError(t, ValidateFeedbackHistory(valid))

	assert.ErrorContains(t, ValidateFeedbackHistory([]HistoryMessage{
		{Role: "admin", Text: "hello"},
	}), "invalid role")

	long := make([]HistoryMessage, 1001)
	for i := range long {
		long[i] = HistoryMessage{Role: "user", Text: "q"}
	}
	assert.ErrorContains(t, ValidateFeedbackHistory(long), "maximum size")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "abc", Truncate("abc", 10))
}
