package service

import (
	"time"

	"flashdeck/internal/models"
)

// Store interfaces are declared here, on the consumer side, so tests can
// substitute in-memory fakes. The repository package provides the
// SQL-backed implementations wired up in main.
//
// Store contract: returned records are owned by the caller, never shared
// with the store's internal state, and missing records surface as
// models.ErrNotFound (possibly wrapped).

// FlashcardStore is the persistence boundary for flashcards.
type FlashcardStore interface {
	Create(card *models.Flashcard) error
	GetByID(id string) (*models.Flashcard, error)
	ListByCollection(collectionID string) ([]models.Flashcard, error)
	Update(card *models.Flashcard) error
	UpdateReview(id string, status models.CardStatus, completionDate, nextReviewDate time.Time) (*models.Flashcard, error)
	Delete(id string) error
}

// StudyStore is the persistence boundary for study sessions and review
// activities.
type StudyStore interface {
	CreateSession(collectionID, mode string, startedAt time.Time) (*models.StudySession, error)
	GetSession(id string) (*models.StudySession, error)
	AddTimeSpent(sessionID string, seconds int) error
	CompleteSession(sessionID string, completedAt time.Time) error
	CreateActivity(activity *models.ReviewActivity) error
	ListSessionActivities(sessionID string) ([]models.ReviewActivity, error)
}

// CollectionStore is the persistence boundary for collections.
type CollectionStore interface {
	GetByID(id string) (*models.Collection, error)
}
