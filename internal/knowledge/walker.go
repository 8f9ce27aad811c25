package knowledge

import (
	"fmt"
	"sort"
	"strings"

	"campuschat/internal/models"
)

// Institutional records arrive as arbitrarily nested JSON. Each object node
// is classified into one of three kinds and visited recursively; containers
// produce no entry of their own but are always descended into.

type nodeKind int

const (
	nodeContainer nodeKind = iota
	nodeQA
	nodeDescriptive
)

// searchableKeys are the descriptive fields whose values form an entry's
// searchable text. Iterated in this order to keep output deterministic.
var searchableKeys = []string{
	"name", "code", "description", "eligibility", "duration", "duration_years",
	"overview", "mission", "vision", "facilities", "activities",
}

// WalkRecords extracts corpus entries from a decoded JSON document.
func WalkRecords(root any) []models.CorpusEntry {
	var entries []models.CorpusEntry
	walk(root, &entries)
	return entries
}

func walk(node any, out *[]models.CorpusEntry) {
	switch v := node.(type) {
	case []any:
		for _, item := range v {
			walk(item, out)
		}
	case map[string]any:
		switch classify(v) {
		case nodeQA:
			// A q/a pair is a complete entry; its fields are not descended.
			*out = append(*out, models.CorpusEntry{
				Text:   v["q"].(string),
				Answer: v["a"].(string),
			})
		case nodeDescriptive:
			if entry, ok := describeNode(v); ok {
				*out = append(*out, entry)
			}
			recurseValues(v, out)
		default:
			recurseValues(v, out)
		}
	}
}

func classify(obj map[string]any) nodeKind {
	q, hasQ := obj["q"].(string)
	a, hasA := obj["a"].(string)
	if hasQ && hasA && q != "" && a != "" {
		return nodeQA
	}

	for _, key := range searchableKeys {
		if isScalar(obj[key]) {
			return nodeDescriptive
		}
	}
	return nodeContainer
}

// describeNode renders a descriptive record: searchable text is the
// recognized field values joined, the answer is every scalar field as
// "key: value", comma-joined.
func describeNode(obj map[string]any) (models.CorpusEntry, bool) {
	var textParts []string
	for _, key := range searchableKeys {
		if isScalar(obj[key]) {
			textParts = append(textParts, scalarString(obj[key]))
		}
	}
	if len(textParts) == 0 {
		return models.CorpusEntry{}, false
	}

	scalarKeys := make([]string, 0, len(obj))
	for key, value := range obj {
		if isScalar(value) {
			scalarKeys = append(scalarKeys, key)
		}
	}
	sort.Strings(scalarKeys)

	answerParts := make([]string, 0, len(scalarKeys))
	for _, key := range scalarKeys {
		answerParts = append(answerParts, fmt.Sprintf("%s: %s", key, scalarString(obj[key])))
	}

	return models.CorpusEntry{
		Text:   strings.Join(textParts, " "),
		Answer: strings.Join(answerParts, ", "),
	}, true
}

func recurseValues(obj map[string]any, out *[]models.CorpusEntry) {
	// Deterministic traversal over map values.
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		walk(obj[key], out)
	}
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, float64, bool:
		return true
	}
	return false
}

func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		// JSON numbers decode as float64; render integers without a decimal.
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%g", s)
	case bool:
		return fmt.Sprintf("%t", s)
	}
	return ""
}
