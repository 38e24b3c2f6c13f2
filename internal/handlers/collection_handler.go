package handlers

import (
	"errors"
	"net/http"

	"flashdeck/internal/models"
	"flashdeck/internal/repository"
)

// CollectionHandler handles collection HTTP requests
type CollectionHandler struct {
	collectionRepo *repository.CollectionRepository
	workspaceRepo  *repository.WorkspaceRepository
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(collectionRepo *repository.CollectionRepository, workspaceRepo *repository.WorkspaceRepository) *CollectionHandler {
	return &CollectionHandler{collectionRepo: collectionRepo, workspaceRepo: workspaceRepo}
}

type createCollectionRequest struct {
	WorkspaceID string `json:"workspaceId" validate:"required"`
	Name        string `json:"name" validate:"required,max=255"`
}

type renameCollectionRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// Create creates a new collection inside a workspace
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCollectionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid collection payload", "", err)
		return
	}

	if _, err := h.workspaceRepo.GetByID(req.WorkspaceID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Workspace not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to load workspace", "Error loading workspace", err)
		return
	}

	collection := &models.Collection{WorkspaceID: req.WorkspaceID, Name: req.Name}
	if err := h.collectionRepo.Create(collection); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create collection", "Error creating collection", err)
		return
	}

	respondJSON(w, http.StatusCreated, collection)
}

// ListByWorkspace returns the collections of a workspace
func (h *CollectionHandler) ListByWorkspace(w http.ResponseWriter, r *http.Request) {
	collections, err := h.collectionRepo.ListByWorkspace(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list collections", "Error listing collections", err)
		return
	}
	if collections == nil {
		collections = []models.Collection{}
	}

	respondJSON(w, http.StatusOK, collections)
}

// Get returns a single collection
func (h *CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	collection, err := h.collectionRepo.GetByID(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Collection not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to load collection", "Error loading collection", err)
		return
	}

	respondJSON(w, http.StatusOK, collection)
}

// Update renames a collection
func (h *CollectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req renameCollectionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid collection payload", "", err)
		return
	}

	collection, err := h.collectionRepo.GetByID(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Collection not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to load collection", "Error loading collection", err)
		return
	}

	collection.Name = req.Name
	if err := h.collectionRepo.Update(collection); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update collection", "Error updating collection", err)
		return
	}

	respondJSON(w, http.StatusOK, collection)
}

// Delete removes a collection
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.collectionRepo.Delete(r.PathValue("id")); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Collection not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to delete collection", "Error deleting collection", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
