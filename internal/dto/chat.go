package dto

type ChatRequest struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id,omitempty"`
}

type ChatResponse struct {
	Answer      string   `json:"answer"`
	Suggestions []string `json:"suggestions"`
}

type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type FeedbackRequest struct {
	History  []ChatMessage `json:"history"`
	Feedback string        `json:"feedback"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	CorpusEntries int    `json:"corpus_entries"`
}
