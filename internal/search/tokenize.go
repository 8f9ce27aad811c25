package search

import (
	"regexp"
	"strings"
)

var punctuationPattern = regexp.MustCompile(`[^a-z0-9_\s]`)

// stopWords is a fixed set of common English function words dropped during
// tokenization.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
		"you", "your", "yours", "yourself", "yourselves",
		"he", "him", "his", "himself", "she", "her", "hers", "herself",
		"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
		"what", "which", "who", "whom", "this", "that", "these", "those",
		"am", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "having", "do", "does", "did", "doing",
		"a", "an", "the", "and", "but", "if", "or", "because", "as",
		"until", "while", "of", "at", "by", "for", "with", "about",
		"against", "between", "into", "through", "during", "before",
		"after", "above", "below", "to", "from", "up", "down", "in",
		"out", "on", "off", "over", "under", "again", "further", "then",
		"once", "here", "there", "when", "where", "why", "how", "all",
		"any", "both", "each", "few", "more", "most", "other", "some",
		"such", "no", "nor", "not", "only", "own", "same", "so", "than",
		"too", "very", "s", "t", "can", "will", "just", "don", "should",
		"now",
	} {
		stopWords[w] = struct{}{}
	}
}

// Tokenize lowercases the input, strips punctuation, splits on whitespace
// and drops stop words. Order is preserved and duplicates are kept, so the
// result can feed term-frequency counting directly.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	cleaned := punctuationPattern.ReplaceAllString(lowered, "")

	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		if _, stop := stopWords[word]; stop {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}
