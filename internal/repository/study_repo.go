package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"flashdeck/internal/database"
	"flashdeck/internal/models"
)

// StudyRepository handles study session and review activity database operations
type StudyRepository struct {
	db *database.DB
}

// NewStudyRepository creates a new study repository
func NewStudyRepository(db *database.DB) *StudyRepository {
	return &StudyRepository{db: db}
}

// CreateSession creates a new study session record
func (r *StudyRepository) CreateSession(collectionID, mode string, startedAt time.Time) (*models.StudySession, error) {
	session := &models.StudySession{
		ID:           uuid.New().String(),
		CollectionID: collectionID,
		Mode:         mode,
		StartedAt:    startedAt,
	}

	query := `
		INSERT INTO study_sessions (id, collection_id, mode, total_time_spent_seconds, started_at)
		VALUES (?, ?, ?, 0, ?)
	`

	_, err := r.db.Exec(query, session.ID, session.CollectionID, session.Mode, session.StartedAt)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession retrieves a study session by ID
func (r *StudyRepository) GetSession(id string) (*models.StudySession, error) {
	query := `
		SELECT id, collection_id, mode, total_time_spent_seconds, started_at, completed_at
		FROM study_sessions
		WHERE id = ?
	`

	session := &models.StudySession{}
	var completedAt sql.NullTime

	err := r.db.QueryRow(query, id).Scan(
		&session.ID,
		&session.CollectionID,
		&session.Mode,
		&session.TotalTimeSpentSeconds,
		&session.StartedAt,
		&completedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if completedAt.Valid {
		session.CompletedAt = &completedAt.Time
	}

	return session, nil
}

// AddTimeSpent accumulates evaluation time onto a session
func (r *StudyRepository) AddTimeSpent(sessionID string, seconds int) error {
	query := `
		UPDATE study_sessions
		SET total_time_spent_seconds = total_time_spent_seconds + ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query, seconds, sessionID)
	if err != nil {
		return err
	}
	return requireRowAffected(result, sessionID)
}

// CompleteSession marks a session as finished
func (r *StudyRepository) CompleteSession(sessionID string, completedAt time.Time) error {
	query := "UPDATE study_sessions SET completed_at = ? WHERE id = ?"

	result, err := r.db.Exec(query, completedAt, sessionID)
	if err != nil {
		return err
	}
	return requireRowAffected(result, sessionID)
}

// CreateActivity appends a review activity record. Activities are
// append-only; there is deliberately no update or delete counterpart.
func (r *StudyRepository) CreateActivity(activity *models.ReviewActivity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO review_activities (id, flashcard_id, study_session_id, outcome, time_spent_seconds, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		activity.ID,
		activity.FlashcardID,
		activity.StudySessionID,
		activity.Outcome,
		activity.TimeSpentSeconds,
		activity.CreatedAt,
	)
	return err
}

// ListSessionActivities retrieves all activities for a session in
// evaluation order
func (r *StudyRepository) ListSessionActivities(sessionID string) ([]models.ReviewActivity, error) {
	query := `
		SELECT id, flashcard_id, study_session_id, outcome, time_spent_seconds, created_at
		FROM review_activities
		WHERE study_session_id = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.ReviewActivity
	for rows.Next() {
		var activity models.ReviewActivity
		err := rows.Scan(
			&activity.ID,
			&activity.FlashcardID,
			&activity.StudySessionID,
			&activity.Outcome,
			&activity.TimeSpentSeconds,
			&activity.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}

	return activities, rows.Err()
}
