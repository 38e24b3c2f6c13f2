package models

import "time"

// CardStatus is the stored progress state of a flashcard
type CardStatus string

const (
	StatusNotDone   CardStatus = "NOT_DONE"
	StatusCompleted CardStatus = "COMPLETED"
)

// Flashcard represents a single question/answer card in a collection
type Flashcard struct {
	ID             string     `json:"id"`
	CollectionID   string     `json:"collectionId"`
	Front          string     `json:"front"`
	Back           string     `json:"back"`
	Status         CardStatus `json:"status"`
	NextReviewDate *time.Time `json:"nextReviewDate,omitempty"`
	CompletionDate *time.Time `json:"completionDate,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// DueForReview reports whether a completed card is due again on the day
// of the given time. Due-ness is derived at read time by comparing the
// next review date against "today"; it is never stored as a status.
// Comparison is at day granularity: a card scheduled for any moment of
// today counts as due regardless of clock time.
func (f *Flashcard) DueForReview(now time.Time) bool {
	if f.Status != StatusCompleted || f.NextReviewDate == nil {
		return false
	}
	tomorrow := startOfDay(now).AddDate(0, 0, 1)
	return f.NextReviewDate.Before(tomorrow)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CandidateCard is a card proposed by an external generator before it is
// accepted into a collection
type CandidateCard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}
