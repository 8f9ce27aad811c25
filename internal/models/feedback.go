package models

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackRating string

const (
	FeedbackGood FeedbackRating = "good"
	FeedbackBad  FeedbackRating = "bad"
)

type ChatRole string

const (
	RoleUser ChatRole = "user"
	RoleBot  ChatRole = "bot"
)

type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// FeedbackRecord captures a conversation and the user's verdict on it.
type FeedbackRecord struct {
	ID        uuid.UUID      `json:"id"`
	History   []ChatMessage  `json:"history"`
	Feedback  FeedbackRating `json:"feedback"`
	CreatedAt time.Time      `json:"created_at"`
}
