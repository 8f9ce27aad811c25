package validation

import (
	"fmt"
	"regexp"
	"strings"
)

type Config struct {
	MinLength           int
	MaxLength           int
	MaxLines            int
	MaxConsecutiveChars int
}

// DefaultConfig caps input at 10000 characters, 100 lines and runs of 500
// identical characters.
func DefaultConfig() Config {
	return Config{
		MinLength:           1,
		MaxLength:           10000,
		MaxLines:            100,
		MaxConsecutiveChars: 500,
	}
}

// QueryConfig permits empty queries; the pipeline answers those with its own
// canned prompt rather than a validation error.
func QueryConfig() Config {
	return Config{
		MinLength:           0,
		MaxLength:           10000,
		MaxLines:            50,
		MaxConsecutiveChars: 500,
	}
}

// HistoryMessageConfig is applied to individual feedback history messages.
func HistoryMessageConfig() Config {
	return Config{
		MinLength:           0,
		MaxLength:           50000,
		MaxLines:            500,
		MaxConsecutiveChars: 500,
	}
}

var sessionIDPattern = regexp.MustCompile(`^session-\d+$`)

// ValidateInput checks structural limits and returns the trimmed input on
// success.
func ValidateInput(input string, cfg Config) (string, error) {
	trimmed := strings.TrimSpace(input)

	if cfg.MinLength > 0 && len(trimmed) < cfg.MinLength {
		return "", fmt.Errorf("input must be at least %d characters", cfg.MinLength)
	}

	if cfg.MaxLength > 0 && len(input) > cfg.MaxLength {
		return "", fmt.Errorf("input exceeds maximum length of %d characters", cfg.MaxLength)
	}

	if cfg.MaxLines > 0 {
		if lines := strings.Count(input, "\n") + 1; lines > cfg.MaxLines {
			return "", fmt.Errorf("input exceeds maximum of %d lines", cfg.MaxLines)
		}
	}

	if cfg.MaxConsecutiveChars > 0 && hasCharRun(input, cfg.MaxConsecutiveChars) {
		return "", fmt.Errorf("input contains too many consecutive identical characters")
	}

	return trimmed, nil
}

// ValidateSessionID enforces the session-<digits> shape.
func ValidateSessionID(sessionID string) error {
	if !sessionIDPattern.MatchString(sessionID) {
		return fmt.Errorf("invalid session ID format")
	}
	return nil
}

// ValidateFeedbackHistory checks a conversation history payload: bounded
// size, known roles and per-message structural limits.
func ValidateFeedbackHistory(history []HistoryMessage) error {
	if len(history) > 1000 {
		return fmt.Errorf("history exceeds maximum size")
	}

	for i, item := range history {
		if item.Role != "user" && item.Role != "bot" {
			return fmt.Errorf("invalid role %q in history at index %d", item.Role, i)
		}
		if _, err := ValidateInput(item.Text, HistoryMessageConfig()); err != nil {
			return fmt.Errorf("history message %d: %w", i, err)
		}
	}

	return nil
}

type HistoryMessage struct {
	Role string
	Text string
}

// Truncate clamps input to maxLength characters.
func Truncate(input string, maxLength int) string {
	if len(input) > maxLength {
		return input[:maxLength]
	}
	return input
}

// hasCharRun reports whether input contains a run of limit or more identical
// runes.
func hasCharRun(input string, limit int) bool {
	var prev rune
	count := 0
	for _, r := range input {
		if r == prev {
			count++
			if count >= limit {
				return true
			}
		} else {
			prev = r
			count = 1
		}
	}
	return false
}
