package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"flashdeck/internal/database"
	"flashdeck/internal/models"
)

// WorkspaceRepository handles workspace database operations
type WorkspaceRepository struct {
	db *database.DB
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(db *database.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// Create inserts a new workspace
func (r *WorkspaceRepository) Create(workspace *models.Workspace) error {
	if workspace.ID == "" {
		workspace.ID = uuid.New().String()
	}
	workspace.CreatedAt = time.Now()

	query := "INSERT INTO workspaces (id, name, created_at) VALUES (?, ?, ?)"
	_, err := r.db.Exec(query, workspace.ID, workspace.Name, workspace.CreatedAt)
	return err
}

// GetByID retrieves a workspace by ID
func (r *WorkspaceRepository) GetByID(id string) (*models.Workspace, error) {
	query := "SELECT id, name, created_at FROM workspaces WHERE id = ?"

	workspace := &models.Workspace{}
	err := r.db.QueryRow(query, id).Scan(&workspace.ID, &workspace.Name, &workspace.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return workspace, nil
}

// List retrieves all workspaces, oldest first
func (r *WorkspaceRepository) List() ([]models.Workspace, error) {
	query := "SELECT id, name, created_at FROM workspaces ORDER BY created_at ASC"

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workspaces []models.Workspace
	for rows.Next() {
		var workspace models.Workspace
		if err := rows.Scan(&workspace.ID, &workspace.Name, &workspace.CreatedAt); err != nil {
			return nil, err
		}
		workspaces = append(workspaces, workspace)
	}

	return workspaces, rows.Err()
}

// Update renames a workspace
func (r *WorkspaceRepository) Update(workspace *models.Workspace) error {
	result, err := r.db.Exec("UPDATE workspaces SET name = ? WHERE id = ?", workspace.Name, workspace.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(result, workspace.ID)
}

// Delete removes a workspace and, via cascade, its collections and cards
func (r *WorkspaceRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM workspaces WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRowAffected(result, id)
}
