package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"flashdeck/internal/models"
	"flashdeck/internal/service"
)

// memFlashcardStore is a minimal in-memory store for handler tests.
type memFlashcardStore struct {
	cards []models.Flashcard
}

func (m *memFlashcardStore) Create(card *models.Flashcard) error {
	if card.ID == "" {
		card.ID = fmt.Sprintf("card-%d", len(m.cards)+1)
	}
	m.cards = append(m.cards, *card)
	return nil
}

func (m *memFlashcardStore) GetByID(id string) (*models.Flashcard, error) {
	for i := range m.cards {
		if m.cards[i].ID == id {
			card := m.cards[i]
			return &card, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memFlashcardStore) ListByCollection(collectionID string) ([]models.Flashcard, error) {
	var result []models.Flashcard
	for _, card := range m.cards {
		if card.CollectionID == collectionID {
			result = append(result, card)
		}
	}
	return result, nil
}

func (m *memFlashcardStore) Update(card *models.Flashcard) error {
	for i := range m.cards {
		if m.cards[i].ID == card.ID {
			m.cards[i].Front = card.Front
			m.cards[i].Back = card.Back
			return nil
		}
	}
	return models.ErrNotFound
}

func (m *memFlashcardStore) UpdateReview(id string, status models.CardStatus, completionDate, nextReviewDate time.Time) (*models.Flashcard, error) {
	for i := range m.cards {
		if m.cards[i].ID == id {
			m.cards[i].Status = status
			m.cards[i].CompletionDate = &completionDate
			m.cards[i].NextReviewDate = &nextReviewDate
			card := m.cards[i]
			return &card, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memFlashcardStore) Delete(id string) error {
	for i := range m.cards {
		if m.cards[i].ID == id {
			m.cards = append(m.cards[:i], m.cards[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

// memStudyStore is a minimal in-memory study store for handler tests.
type memStudyStore struct {
	sessions   map[string]*models.StudySession
	activities []models.ReviewActivity
}

func (m *memStudyStore) CreateSession(collectionID, mode string, startedAt time.Time) (*models.StudySession, error) {
	if m.sessions == nil {
		m.sessions = make(map[string]*models.StudySession)
	}
	session := models.StudySession{
		ID:           fmt.Sprintf("session-%d", len(m.sessions)+1),
		CollectionID: collectionID,
		Mode:         mode,
		StartedAt:    startedAt,
	}
	m.sessions[session.ID] = &session
	returned := session
	return &returned, nil
}

func (m *memStudyStore) GetSession(id string) (*models.StudySession, error) {
	session, ok := m.sessions[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *session
	return &copied, nil
}

func (m *memStudyStore) AddTimeSpent(sessionID string, seconds int) error {
	session, ok := m.sessions[sessionID]
	if !ok {
		return models.ErrNotFound
	}
	session.TotalTimeSpentSeconds += seconds
	return nil
}

func (m *memStudyStore) CompleteSession(sessionID string, completedAt time.Time) error {
	session, ok := m.sessions[sessionID]
	if !ok {
		return models.ErrNotFound
	}
	session.CompletedAt = &completedAt
	return nil
}

func (m *memStudyStore) CreateActivity(activity *models.ReviewActivity) error {
	m.activities = append(m.activities, *activity)
	return nil
}

func (m *memStudyStore) ListSessionActivities(sessionID string) ([]models.ReviewActivity, error) {
	var result []models.ReviewActivity
	for _, activity := range m.activities {
		if activity.StudySessionID == sessionID {
			result = append(result, activity)
		}
	}
	return result, nil
}

func newStudyTestServer(cards ...models.Flashcard) *httptest.Server {
	flashcards := &memFlashcardStore{cards: cards}
	study := &memStudyStore{}
	handler := NewStudyHandler(service.NewStudyService(flashcards, study))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/study/sessions", handler.StartSession)
	mux.HandleFunc("GET /api/study/sessions/{id}/current", handler.Current)
	mux.HandleFunc("POST /api/study/sessions/{id}/reveal", handler.Reveal)
	mux.HandleFunc("POST /api/study/sessions/{id}/evaluations", handler.SubmitEvaluation)
	mux.HandleFunc("GET /api/study/sessions/{id}/activities", handler.History)
	mux.HandleFunc("POST /api/study/sessions/{id}/complete", handler.EndSession)
	return httptest.NewServer(mux)
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func TestStudyFlowOverHTTP(t *testing.T) {
	server := newStudyTestServer(
		models.Flashcard{ID: "a", CollectionID: "col-1", Status: models.StatusNotDone, Front: "hola", Back: "hello"},
		models.Flashcard{ID: "b", CollectionID: "col-1", Status: models.StatusNotDone, Front: "adios", Back: "goodbye"},
	)
	defer server.Close()

	// Start a spaced-repetition session.
	resp := postJSON(t, server.URL+"/api/study/sessions", `{"collectionId":"col-1","mode":"SPACED_REPETITION"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("start session status = %d, want 201", resp.StatusCode)
	}
	var started struct {
		Session struct {
			ID string `json:"id"`
		} `json:"session"`
		Current *models.Flashcard `json:"current"`
	}
	decodeBody(t, resp, &started)
	if started.Current == nil || started.Current.ID != "a" {
		t.Fatalf("first card = %v, want a", started.Current)
	}
	base := server.URL + "/api/study/sessions/" + started.Session.ID

	// Evaluating before revealing is rejected.
	resp = postJSON(t, base+"/evaluations", `{"outcome":"CORRECT","timeSpentSeconds":5}`)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("evaluation before reveal status = %d, want 409", resp.StatusCode)
	}
	resp.Body.Close()

	// Reveal, then grade with a legacy label: the boundary translates it.
	resp = postJSON(t, base+"/reveal", "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("reveal status = %d, want 204", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, base+"/evaluations", `{"outcome":"BIEN","timeSpentSeconds":12}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("evaluation status = %d, want 200", resp.StatusCode)
	}
	var progress struct {
		Remaining  int  `json:"remaining"`
		Completed  int  `json:"completed"`
		IsComplete bool `json:"isComplete"`
	}
	decodeBody(t, resp, &progress)
	if progress.Completed != 1 || progress.Remaining != 1 || progress.IsComplete {
		t.Errorf("progress = %+v, want completed=1 remaining=1", progress)
	}

	// The cursor moved on to the second card.
	getResp, err := http.Get(base + "/current")
	if err != nil {
		t.Fatalf("GET current failed: %v", err)
	}
	var view struct {
		Current *models.Flashcard `json:"current"`
	}
	decodeBody(t, getResp, &view)
	if view.Current == nil || view.Current.ID != "b" {
		t.Errorf("current = %v, want b", view.Current)
	}

	// Close the session.
	resp = postJSON(t, base+"/complete", "")
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("complete status = %d, want 204", resp.StatusCode)
	}
	resp.Body.Close()

	// The review trail survives the session: one activity, canonical label.
	getResp, err = http.Get(base + "/activities")
	if err != nil {
		t.Fatalf("GET activities failed: %v", err)
	}
	var history struct {
		Activities []models.ReviewActivity `json:"activities"`
	}
	decodeBody(t, getResp, &history)
	if len(history.Activities) != 1 {
		t.Fatalf("activities = %d, want 1", len(history.Activities))
	}
	if history.Activities[0].Outcome != "CORRECT" || history.Activities[0].TimeSpentSeconds != 12 {
		t.Errorf("activity = %+v, want CORRECT/12s", history.Activities[0])
	}
}

func TestStartSessionValidation(t *testing.T) {
	server := newStudyTestServer()
	defer server.Close()

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "missing collection", body: `{"mode":"FREE"}`, want: http.StatusBadRequest},
		{name: "unknown mode", body: `{"collectionId":"col-1","mode":"TURBO"}`, want: http.StatusBadRequest},
		{name: "malformed json", body: `{"collectionId":`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, server.URL+"/api/study/sessions", tt.body)
			defer resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestUnknownSessionReturns404(t *testing.T) {
	server := newStudyTestServer()
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/study/sessions/nope/current")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestUnknownSessionHistoryReturns404(t *testing.T) {
	server := newStudyTestServer()
	defer server.Close()

	// History reads the store, not the in-memory queue map, so the 404
	// comes from the persistence layer's not-found error.
	resp, err := http.Get(server.URL + "/api/study/sessions/nope/activities")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
