package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"flashdeck/internal/database"
	"flashdeck/internal/models"
)

// FlashcardRepository handles flashcard database operations
type FlashcardRepository struct {
	db *database.DB
}

// NewFlashcardRepository creates a new flashcard repository
func NewFlashcardRepository(db *database.DB) *FlashcardRepository {
	return &FlashcardRepository{db: db}
}

const flashcardColumns = `id, collection_id, front, back, status, next_review_date, completion_date, created_at, updated_at`

// Create inserts a new flashcard. A missing ID is minted here so callers
// can treat IDs as opaque.
func (r *FlashcardRepository) Create(card *models.Flashcard) error {
	if card.ID == "" {
		card.ID = uuid.New().String()
	}
	if card.Status == "" {
		card.Status = models.StatusNotDone
	}
	now := time.Now()
	card.CreatedAt = now
	card.UpdatedAt = now

	query := `
		INSERT INTO flashcards (id, collection_id, front, back, status, next_review_date, completion_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		card.ID,
		card.CollectionID,
		card.Front,
		card.Back,
		string(card.Status),
		card.NextReviewDate,
		card.CompletionDate,
		card.CreatedAt,
		card.UpdatedAt,
	)
	return err
}

// GetByID retrieves a flashcard by ID
func (r *FlashcardRepository) GetByID(id string) (*models.Flashcard, error) {
	query := `SELECT ` + flashcardColumns + ` FROM flashcards WHERE id = ?`
	return r.scanOne(r.db.QueryRow(query, id))
}

// ListByCollection retrieves all flashcards in a collection, oldest first
func (r *FlashcardRepository) ListByCollection(collectionID string) ([]models.Flashcard, error) {
	query := `
		SELECT ` + flashcardColumns + `
		FROM flashcards
		WHERE collection_id = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(query, collectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []models.Flashcard
	for rows.Next() {
		card, err := scanFlashcard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}

	return cards, rows.Err()
}

// Update replaces the editable content of a flashcard
func (r *FlashcardRepository) Update(card *models.Flashcard) error {
	card.UpdatedAt = time.Now()

	query := `
		UPDATE flashcards
		SET front = ?, back = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query, card.Front, card.Back, card.UpdatedAt, card.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(result, card.ID)
}

// UpdateReview persists the scheduling outcome of an evaluation: the new
// status, the completion timestamp, and the computed next review date.
func (r *FlashcardRepository) UpdateReview(id string, status models.CardStatus, completionDate, nextReviewDate time.Time) (*models.Flashcard, error) {
	query := `
		UPDATE flashcards
		SET status = ?, completion_date = ?, next_review_date = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query, string(status), completionDate, nextReviewDate, time.Now(), id)
	if err != nil {
		return nil, err
	}
	if err := requireRowAffected(result, id); err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// Delete removes a flashcard
func (r *FlashcardRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM flashcards WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRowAffected(result, id)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *FlashcardRepository) scanOne(row *sql.Row) (*models.Flashcard, error) {
	return scanFlashcard(row)
}

func scanFlashcard(row rowScanner) (*models.Flashcard, error) {
	card := &models.Flashcard{}
	var status string
	var nextReview, completion sql.NullTime

	err := row.Scan(
		&card.ID,
		&card.CollectionID,
		&card.Front,
		&card.Back,
		&status,
		&nextReview,
		&completion,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	card.Status = models.CardStatus(status)
	if nextReview.Valid {
		card.NextReviewDate = &nextReview.Time
	}
	if completion.Valid {
		card.CompletionDate = &completion.Time
	}

	return card, nil
}

func requireRowAffected(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("record %s: %w", id, models.ErrNotFound)
	}
	return nil
}
