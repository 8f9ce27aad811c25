package search

import "math"

// Match is the result of scoring a query against a set of entries.
type Match[T any] struct {
	Best  *T
	Score float64
}

// FindBestMatch scores query against every entry's text using term-frequency
// cosine similarity and returns the single best entry.
//
// The vocabulary is built per call from the query and entry tokens in
// first-seen order. Entries are scanned in input order and only a strictly
// higher score replaces the current winner, so equal scores keep the
// first-seen entry. An empty query or entry set yields (nil, -1).
//
// Cost is O(entries x vocabulary); fine for corpora of a few thousand
// entries, not meant for anything web-scale.
func FindBestMatch[T any](query string, entries []T, textOf func(T) string) Match[T] {
	if query == "" || len(entries) == 0 {
		return Match[T]{Best: nil, Score: -1}
	}

	queryTokens := Tokenize(query)
	entryTokens := make([][]string, len(entries))
	for i, entry := range entries {
		entryTokens[i] = Tokenize(textOf(entry))
	}

	vocabulary := buildVocabulary(queryTokens, entryTokens)
	queryVec := vectorize(queryTokens, vocabulary)

	bestScore := -1.0
	var best *T

	for i := range entries {
		entryVec := vectorize(entryTokens[i], vocabulary)
		score := cosineSimilarity(queryVec, entryVec)

		if score > bestScore {
			bestScore = score
			best = &entries[i]
		}
	}

	return Match[T]{Best: best, Score: bestScore}
}

// buildVocabulary collects unique terms in first-seen order, query terms
// first.
func buildVocabulary(queryTokens []string, entryTokens [][]string) map[string]int {
	vocabulary := make(map[string]int)
	add := func(tokens []string) {
		for _, token := range tokens {
			if _, seen := vocabulary[token]; !seen {
				vocabulary[token] = len(vocabulary)
			}
		}
	}

	add(queryTokens)
	for _, tokens := range entryTokens {
		add(tokens)
	}
	return vocabulary
}

// vectorize produces a term-frequency vector over the vocabulary.
func vectorize(tokens []string, vocabulary map[string]int) []float64 {
	vector := make([]float64, len(vocabulary))
	for _, token := range tokens {
		if idx, ok := vocabulary[token]; ok {
			vector[idx]++
		}
	}
	return vector
}

// cosineSimilarity returns the normalized dot product of two vectors, or 0
// when either norm is zero.
func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
