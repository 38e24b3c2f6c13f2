package models

import "time"

// StudySession represents one sitting of studying a collection
type StudySession struct {
	ID                    string     `json:"id"`
	CollectionID          string     `json:"collectionId"`
	Mode                  string     `json:"mode"`
	TotalTimeSpentSeconds int        `json:"totalTimeSpentSeconds"`
	StartedAt             time.Time  `json:"startedAt"`
	CompletedAt           *time.Time `json:"completedAt,omitempty"`
}

// ReviewActivity is an append-only record of a single card evaluation.
// Activities are created once per evaluation and never mutated or deleted.
type ReviewActivity struct {
	ID               string    `json:"id"`
	FlashcardID      string    `json:"flashcardId"`
	StudySessionID   string    `json:"studySessionId"`
	Outcome          string    `json:"outcome"`
	TimeSpentSeconds int       `json:"timeSpentSeconds"`
	CreatedAt        time.Time `json:"createdAt"`
}
