package handlers

import (
	"errors"
	"net/http"

	"flashdeck/internal/models"
	"flashdeck/internal/repository"
)

// WorkspaceHandler handles workspace HTTP requests
type WorkspaceHandler struct {
	workspaceRepo *repository.WorkspaceRepository
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(workspaceRepo *repository.WorkspaceRepository) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceRepo: workspaceRepo}
}

type workspaceRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// Create creates a new workspace
func (h *WorkspaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req workspaceRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid workspace payload", "", err)
		return
	}

	workspace := &models.Workspace{Name: req.Name}
	if err := h.workspaceRepo.Create(workspace); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create workspace", "Error creating workspace", err)
		return
	}

	respondJSON(w, http.StatusCreated, workspace)
}

// List returns all workspaces
func (h *WorkspaceHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaces, err := h.workspaceRepo.List()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list workspaces", "Error listing workspaces", err)
		return
	}
	if workspaces == nil {
		workspaces = []models.Workspace{}
	}

	respondJSON(w, http.StatusOK, workspaces)
}

// Get returns a single workspace
func (h *WorkspaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	workspace, err := h.workspaceRepo.GetByID(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Workspace not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to load workspace", "Error loading workspace", err)
		return
	}

	respondJSON(w, http.StatusOK, workspace)
}

// Update renames a workspace
func (h *WorkspaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req workspaceRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid workspace payload", "", err)
		return
	}

	workspace := &models.Workspace{ID: r.PathValue("id"), Name: req.Name}
	if err := h.workspaceRepo.Update(workspace); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Workspace not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to update workspace", "Error updating workspace", err)
		return
	}

	respondJSON(w, http.StatusOK, workspace)
}

// Delete removes a workspace
func (h *WorkspaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.workspaceRepo.Delete(r.PathValue("id")); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Workspace not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to delete workspace", "Error deleting workspace", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
