package search

import (
	"sort"
	"strings"
	"unicode"
)

// Category is a coarse query class detected by keyword membership.
type Category string

const (
	CategoryContact  Category = "contact"
	CategoryLocation Category = "location"
	CategoryWebsite  Category = "website"
	CategoryGreeting Category = "greeting"
)

type categoryKeywords struct {
	category Category
	keywords []string
}

// categoryTable is iterated in order; the first category with a keyword
// present in the query wins.
var categoryTable = []categoryKeywords{
	{CategoryContact, []string{"contact", "email", "phone", "number", "call", "get in touch"}},
	{CategoryLocation, []string{"location", "address", "where is", "directions", "situated", "reach"}},
	{CategoryWebsite, []string{"website", "web site", "url", "online portal", "site"}},
	{CategoryGreeting, []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening", "namaste", "greetings"}},
}

// DetectCategory returns the first category whose keywords appear in the
// normalized query. Single-word greeting keywords like "hi" occur inside
// ordinary words ("which", "this"), so they must match a whole word; all
// other keywords match as substrings.
func DetectCategory(query string) (Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(query))
	words := queryWords(normalized)
	for _, row := range categoryTable {
		for _, keyword := range row.keywords {
			if row.category == CategoryGreeting && !strings.ContainsRune(keyword, ' ') {
				if words[keyword] {
					return row.category, true
				}
				continue
			}
			if strings.Contains(normalized, keyword) {
				return row.category, true
			}
		}
	}
	return "", false
}

func queryWords(normalized string) map[string]bool {
	fields := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	words := make(map[string]bool, len(fields))
	for _, w := range fields {
		words[w] = true
	}
	return words
}

// RankByCategory returns a copy of entries stably sorted by descending count
// of the category's keywords found in each entry's text. Entries with equal
// counts keep their relative order, so the re-rank only affects which entry
// wins ties in the matcher.
func RankByCategory[T any](entries []T, textOf func(T) string, category Category) []T {
	var keywords []string
	for _, row := range categoryTable {
		if row.category == category {
			keywords = row.keywords
			break
		}
	}

	if len(keywords) == 0 {
		ranked := make([]T, len(entries))
		copy(ranked, entries)
		return ranked
	}

	counts := make([]int, len(entries))
	for i, entry := range entries {
		text := strings.ToLower(textOf(entry))
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				counts[i]++
			}
		}
	}

	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	ranked := make([]T, len(entries))
	for i, idx := range order {
		ranked[i] = entries[idx]
	}
	return ranked
}
