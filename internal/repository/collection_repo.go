package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"flashdeck/internal/database"
	"flashdeck/internal/models"
)

// CollectionRepository handles collection database operations
type CollectionRepository struct {
	db *database.DB
}

// NewCollectionRepository creates a new collection repository
func NewCollectionRepository(db *database.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// Create inserts a new collection
func (r *CollectionRepository) Create(collection *models.Collection) error {
	if collection.ID == "" {
		collection.ID = uuid.New().String()
	}
	collection.CreatedAt = time.Now()

	query := "INSERT INTO collections (id, workspace_id, name, created_at) VALUES (?, ?, ?, ?)"
	_, err := r.db.Exec(query, collection.ID, collection.WorkspaceID, collection.Name, collection.CreatedAt)
	return err
}

// GetByID retrieves a collection by ID
func (r *CollectionRepository) GetByID(id string) (*models.Collection, error) {
	query := "SELECT id, workspace_id, name, created_at FROM collections WHERE id = ?"

	collection := &models.Collection{}
	err := r.db.QueryRow(query, id).Scan(
		&collection.ID,
		&collection.WorkspaceID,
		&collection.Name,
		&collection.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return collection, nil
}

// ListByWorkspace retrieves all collections in a workspace, oldest first
func (r *CollectionRepository) ListByWorkspace(workspaceID string) ([]models.Collection, error) {
	query := `
		SELECT id, workspace_id, name, created_at
		FROM collections
		WHERE workspace_id = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []models.Collection
	for rows.Next() {
		var collection models.Collection
		err := rows.Scan(
			&collection.ID,
			&collection.WorkspaceID,
			&collection.Name,
			&collection.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		collections = append(collections, collection)
	}

	return collections, rows.Err()
}

// Update renames a collection
func (r *CollectionRepository) Update(collection *models.Collection) error {
	result, err := r.db.Exec("UPDATE collections SET name = ? WHERE id = ?", collection.Name, collection.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(result, collection.ID)
}

// Delete removes a collection and, via cascade, its flashcards
func (r *CollectionRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM collections WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRowAffected(result, id)
}
