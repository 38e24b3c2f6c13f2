package handlers

import (
	"errors"
	"net/http"

	"flashdeck/internal/models"
	"flashdeck/internal/scheduler"
	"flashdeck/internal/service"
)

// StudyHandler handles study session HTTP requests. It is the boundary
// where wire labels for modes and outcomes are translated into the
// scheduler's canonical vocabulary.
type StudyHandler struct {
	studyService *service.StudyService
}

// NewStudyHandler creates a new study handler
func NewStudyHandler(studyService *service.StudyService) *StudyHandler {
	return &StudyHandler{studyService: studyService}
}

type startSessionRequest struct {
	CollectionID string `json:"collectionId" validate:"required"`
	Mode         string `json:"mode" validate:"required"`
}

type submitEvaluationRequest struct {
	Outcome          string `json:"outcome" validate:"required"`
	TimeSpentSeconds int    `json:"timeSpentSeconds" validate:"gte=0"`
}

// StartSession opens a study session against a collection
func (h *StudyHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid session payload", "", err)
		return
	}

	mode, err := scheduler.ParseMode(req.Mode)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Unknown session mode", "", err)
		return
	}

	started, err := h.studyService.StartSession(req.CollectionID, mode)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to start study session", "Error starting study session", err)
		return
	}

	respondJSON(w, http.StatusCreated, started)
}

// Current returns the card at the session's cursor
func (h *StudyHandler) Current(w http.ResponseWriter, r *http.Request) {
	view, err := h.studyService.Current(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			respondWithError(w, http.StatusNotFound, "Study session not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to load session", "Error loading session", err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// Reveal marks the current card's answer as shown
func (h *StudyHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	err := h.studyService.Reveal(r.PathValue("id"))
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, service.ErrSessionNotFound):
		respondWithError(w, http.StatusNotFound, "Study session not found", "", nil)
	case errors.Is(err, scheduler.ErrNoCurrentCard):
		respondWithError(w, http.StatusConflict, "No card to reveal", "", err)
	default:
		respondWithError(w, http.StatusInternalServerError, "Failed to reveal card", "Error revealing card", err)
	}
}

// SubmitEvaluation grades the current card. The outcome label is
// translated here; the scheduler only ever sees canonical outcomes.
func (h *StudyHandler) SubmitEvaluation(w http.ResponseWriter, r *http.Request) {
	var req submitEvaluationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid evaluation payload", "", err)
		return
	}

	outcome, err := scheduler.ParseOutcome(req.Outcome)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Unknown evaluation outcome", "", err)
		return
	}

	progress, err := h.studyService.SubmitEvaluation(r.PathValue("id"), outcome, req.TimeSpentSeconds)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, progress)
	case errors.Is(err, service.ErrSessionNotFound):
		respondWithError(w, http.StatusNotFound, "Study session not found", "", nil)
	case errors.Is(err, service.ErrEvaluationInFlight):
		respondWithError(w, http.StatusConflict, "Evaluation already in progress", "", err)
	case errors.Is(err, scheduler.ErrNoCurrentCard), errors.Is(err, scheduler.ErrNotRevealed):
		respondWithError(w, http.StatusConflict, "Session is not ready for an evaluation", "", err)
	default:
		// Persistence failure: the card was not advanced, the caller
		// may retry the same evaluation.
		respondWithError(w, http.StatusInternalServerError, "Failed to save evaluation", "Error saving evaluation", err)
	}
}

// History returns the persisted session with its review activities
func (h *StudyHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.studyService.History(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Study session not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to load session history", "Error loading session history", err)
		return
	}

	if history.Activities == nil {
		history.Activities = []models.ReviewActivity{}
	}
	respondJSON(w, http.StatusOK, history)
}

// EndSession closes a session
func (h *StudyHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	err := h.studyService.EndSession(r.PathValue("id"))
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, service.ErrSessionNotFound):
		respondWithError(w, http.StatusNotFound, "Study session not found", "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "Failed to end session", "Error ending session", err)
	}
}
