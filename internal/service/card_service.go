package service

import (
	"fmt"
	"strings"

	"flashdeck/internal/models"
)

// CardService handles flashcard content management, including accepting
// candidate cards from an external generator.
type CardService struct {
	flashcards  FlashcardStore
	collections CollectionStore
}

// NewCardService creates a new card service
func NewCardService(flashcards FlashcardStore, collections CollectionStore) *CardService {
	return &CardService{flashcards: flashcards, collections: collections}
}

// Create adds a new flashcard to a collection
func (s *CardService) Create(collectionID, front, back string) (*models.Flashcard, error) {
	if _, err := s.collections.GetByID(collectionID); err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}

	card := &models.Flashcard{
		CollectionID: collectionID,
		Front:        front,
		Back:         back,
		Status:       models.StatusNotDone,
	}
	if err := s.flashcards.Create(card); err != nil {
		return nil, err
	}
	return card, nil
}

// List returns all flashcards in a collection
func (s *CardService) List(collectionID string) ([]models.Flashcard, error) {
	return s.flashcards.ListByCollection(collectionID)
}

// Get returns a single flashcard
func (s *CardService) Get(id string) (*models.Flashcard, error) {
	return s.flashcards.GetByID(id)
}

// Update replaces the front and back of an existing flashcard
func (s *CardService) Update(id, front, back string) (*models.Flashcard, error) {
	card, err := s.flashcards.GetByID(id)
	if err != nil {
		return nil, err
	}
	card.Front = front
	card.Back = back
	if err := s.flashcards.Update(card); err != nil {
		return nil, err
	}
	return card, nil
}

// Delete removes a flashcard
func (s *CardService) Delete(id string) error {
	return s.flashcards.Delete(id)
}

// ImportCandidates accepts cards proposed by an external generator and
// persists the usable ones as new, unscheduled flashcards. Generator
// output is untrusted: blank candidates are dropped rather than failing
// the whole batch.
func (s *CardService) ImportCandidates(collectionID string, candidates []models.CandidateCard) ([]models.Flashcard, error) {
	if _, err := s.collections.GetByID(collectionID); err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}

	var imported []models.Flashcard
	for _, candidate := range candidates {
		front := strings.TrimSpace(candidate.Front)
		back := strings.TrimSpace(candidate.Back)
		if front == "" || back == "" {
			continue
		}

		card := &models.Flashcard{
			CollectionID: collectionID,
			Front:        front,
			Back:         back,
			Status:       models.StatusNotDone,
		}
		if err := s.flashcards.Create(card); err != nil {
			return imported, fmt.Errorf("import candidate card: %w", err)
		}
		imported = append(imported, *card)
	}

	return imported, nil
}
