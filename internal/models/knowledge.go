package models

import (
	"time"

	"github.com/google/uuid"
)

// CorpusEntry is one retrievable pair: the text the matcher scores against
// and the answer returned when the entry wins. Immutable once constructed.
type CorpusEntry struct {
	Text   string `json:"text"`
	Answer string `json:"answer"`
}

// Intent is a keyword-tagged knowledge record from intents.json.
type Intent struct {
	Intent    string   `json:"intent"`
	Keywords  []string `json:"keywords"`
	Questions []string `json:"questions"`
	Answer    string   `json:"answer"`
}

// FAQDetails is the value side of the faq.json question -> details mapping.
type FAQDetails struct {
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// LearnedAnswer is a generated answer persisted for reuse as future corpus
// content. Deduplicated case-insensitively by question text.
type LearnedAnswer struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// UnansweredQuestion records a query no tier could answer.
type UnansweredQuestion struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	CreatedAt time.Time `json:"created_at"`
}
