package handlers

import (
	"errors"
	"net/http"

	"flashdeck/internal/models"
	"flashdeck/internal/service"
)

// FlashcardHandler handles flashcard HTTP requests
type FlashcardHandler struct {
	cardService *service.CardService
}

// NewFlashcardHandler creates a new flashcard handler
func NewFlashcardHandler(cardService *service.CardService) *FlashcardHandler {
	return &FlashcardHandler{cardService: cardService}
}

type cardContentRequest struct {
	Front string `json:"front" validate:"required"`
	Back  string `json:"back" validate:"required"`
}

type importCandidatesRequest struct {
	Candidates []models.CandidateCard `json:"candidates" validate:"required,min=1,dive"`
}

// Create adds a flashcard to a collection
func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req cardContentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid flashcard payload", "", err)
		return
	}

	card, err := h.cardService.Create(r.PathValue("id"), req.Front, req.Back)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Collection not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to create flashcard", "Error creating flashcard", err)
		return
	}

	respondJSON(w, http.StatusCreated, card)
}

// ListByCollection returns the flashcards of a collection
func (h *FlashcardHandler) ListByCollection(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardService.List(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list flashcards", "Error listing flashcards", err)
		return
	}
	if cards == nil {
		cards = []models.Flashcard{}
	}

	respondJSON(w, http.StatusOK, cards)
}

// Get returns a single flashcard
func (h *FlashcardHandler) Get(w http.ResponseWriter, r *http.Request) {
	card, err := h.cardService.Get(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Flashcard not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to load flashcard", "Error loading flashcard", err)
		return
	}

	respondJSON(w, http.StatusOK, card)
}

// Update replaces a flashcard's content
func (h *FlashcardHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req cardContentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid flashcard payload", "", err)
		return
	}

	card, err := h.cardService.Update(r.PathValue("id"), req.Front, req.Back)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Flashcard not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to update flashcard", "Error updating flashcard", err)
		return
	}

	respondJSON(w, http.StatusOK, card)
}

// Delete removes a flashcard
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.cardService.Delete(r.PathValue("id")); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Flashcard not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to delete flashcard", "Error deleting flashcard", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ImportCandidates accepts generated candidate cards for a collection.
// The generator itself (AI or otherwise) lives outside this service;
// this endpoint only receives its output.
func (h *FlashcardHandler) ImportCandidates(w http.ResponseWriter, r *http.Request) {
	var req importCandidatesRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid import payload", "", err)
		return
	}

	imported, err := h.cardService.ImportCandidates(r.PathValue("id"), req.Candidates)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Collection not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to import flashcards", "Error importing flashcards", err)
		return
	}
	if imported == nil {
		imported = []models.Flashcard{}
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"imported": imported,
		"count":    len(imported),
	})
}
