package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"flashdeck/internal/models"
	"flashdeck/internal/scheduler"
)

var (
	// ErrSessionNotFound is returned when an operation names a session
	// this process does not hold a queue for. Sessions are in-memory
	// only; after a restart they must be started again.
	ErrSessionNotFound = errors.New("study session not found")

	// ErrEvaluationInFlight is returned when an evaluation arrives for a
	// session whose previous evaluation has not finished persisting yet,
	// e.g. a double-submitted form.
	ErrEvaluationInFlight = errors.New("an evaluation for this session is already in flight")
)

// StudyService orchestrates session queues against the persistence
// stores. The queue for each open session lives only in this process;
// flashcard and activity records in the stores are the source of truth,
// and a lost queue is rebuilt from them by starting a new session.
type StudyService struct {
	flashcards FlashcardStore
	study      StudyStore
	nowFn      func() time.Time

	mu       sync.Mutex
	sessions map[string]*activeSession
}

type activeSession struct {
	session  *models.StudySession
	queue    *scheduler.Queue
	inFlight bool
}

// NewStudyService creates a new study service
func NewStudyService(flashcards FlashcardStore, study StudyStore) *StudyService {
	return &StudyService{
		flashcards: flashcards,
		study:      study,
		nowFn:      time.Now,
		sessions:   make(map[string]*activeSession),
	}
}

// StartedSession is what the caller gets back when a session opens.
// Current is nil when no card in the collection was eligible.
type StartedSession struct {
	Session  *models.StudySession `json:"session"`
	Current  *models.Flashcard    `json:"current,omitempty"`
	Progress scheduler.Progress   `json:"progress"`
	State    string               `json:"state"`
}

// StartSession loads the collection's cards, filters them for the mode,
// creates the persisted session record and registers the in-memory queue.
func (s *StudyService) StartSession(collectionID string, mode scheduler.Mode) (*StartedSession, error) {
	cards, err := s.flashcards.ListByCollection(collectionID)
	if err != nil {
		return nil, fmt.Errorf("load collection cards: %w", err)
	}

	now := s.nowFn()
	queue := scheduler.NewQueue(mode, cards, now)

	session, err := s.study.CreateSession(collectionID, mode.String(), now)
	if err != nil {
		return nil, fmt.Errorf("create study session: %w", err)
	}

	s.mu.Lock()
	s.sessions[session.ID] = &activeSession{session: session, queue: queue}
	view := s.snapshot(session, queue)
	s.mu.Unlock()

	return view, nil
}

// Current returns the card at the cursor of the session's queue, or nil
// when the queue has nothing to present.
func (s *StudyService) Current(sessionID string) (*StartedSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.snapshot(active.session, active.queue), nil
}

// Reveal marks the current card's answer as shown; evaluation is only
// accepted afterwards.
func (s *StudyService) Reveal(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	return active.queue.Reveal()
}

// SubmitEvaluation persists the outcome of the current card and then,
// only if every write succeeded, advances the in-memory queue. On any
// persistence failure the queue is untouched: the same card stays
// current and the caller can safely retry.
//
// Writes are: flashcard status/completion/next-review update, an
// append-only review activity, and time accumulation on the session.
func (s *StudyService) SubmitEvaluation(sessionID string, outcome scheduler.Outcome, timeSpentSeconds int) (scheduler.Progress, error) {
	s.mu.Lock()
	active, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return scheduler.Progress{}, ErrSessionNotFound
	}
	if active.inFlight {
		s.mu.Unlock()
		return scheduler.Progress{}, ErrEvaluationInFlight
	}
	card, present := active.queue.Current()
	if !present {
		s.mu.Unlock()
		return scheduler.Progress{}, scheduler.ErrNoCurrentCard
	}
	if active.queue.State() != scheduler.StateFlipped {
		s.mu.Unlock()
		return scheduler.Progress{}, scheduler.ErrNotRevealed
	}
	active.inFlight = true
	s.mu.Unlock()

	progress, err := s.persistAndAdvance(active, card, outcome, timeSpentSeconds)

	s.mu.Lock()
	active.inFlight = false
	s.mu.Unlock()

	return progress, err
}

func (s *StudyService) persistAndAdvance(active *activeSession, card models.Flashcard, outcome scheduler.Outcome, timeSpentSeconds int) (scheduler.Progress, error) {
	now := s.nowFn()
	nextReview := scheduler.NextReviewDate(outcome, now)

	if _, err := s.flashcards.UpdateReview(card.ID, models.StatusCompleted, now, nextReview); err != nil {
		return scheduler.Progress{}, fmt.Errorf("update flashcard: %w", err)
	}

	activity := &models.ReviewActivity{
		FlashcardID:      card.ID,
		StudySessionID:   active.session.ID,
		Outcome:          outcome.String(),
		TimeSpentSeconds: timeSpentSeconds,
		CreatedAt:        now,
	}
	if err := s.study.CreateActivity(activity); err != nil {
		return scheduler.Progress{}, fmt.Errorf("record review activity: %w", err)
	}

	if err := s.study.AddTimeSpent(active.session.ID, timeSpentSeconds); err != nil {
		return scheduler.Progress{}, fmt.Errorf("accumulate session time: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	active.session.TotalTimeSpentSeconds += timeSpentSeconds
	return active.queue.RecordEvaluation(outcome)
}

// EndSession marks the persisted session record as finished and discards
// the in-memory queue.
func (s *StudyService) EndSession(sessionID string) error {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	if err := s.study.CompleteSession(sessionID, s.nowFn()); err != nil {
		return fmt.Errorf("complete study session: %w", err)
	}
	return nil
}

// SessionHistory is a persisted session together with its review trail.
type SessionHistory struct {
	Session    *models.StudySession    `json:"session"`
	Activities []models.ReviewActivity `json:"activities"`
}

// History returns the persisted session record with its activities in
// evaluation order. Unlike the queue operations this reads straight from
// the store, so it also works for sessions closed before a restart.
func (s *StudyService) History(sessionID string) (*SessionHistory, error) {
	session, err := s.study.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("load study session: %w", err)
	}
	activities, err := s.study.ListSessionActivities(sessionID)
	if err != nil {
		return nil, fmt.Errorf("load review activities: %w", err)
	}
	return &SessionHistory{Session: session, Activities: activities}, nil
}

// snapshot builds a caller-facing view. It must be called with s.mu
// held; the session is copied so the view can outlive the lock and be
// encoded while evaluations keep mutating the live record.
func (s *StudyService) snapshot(session *models.StudySession, queue *scheduler.Queue) *StartedSession {
	sessionView := *session
	view := &StartedSession{
		Session:  &sessionView,
		Progress: queue.Progress(),
		State:    queue.State().String(),
	}
	if card, ok := queue.Current(); ok {
		view.Current = &card
	}
	return view
}
