// Package scheduler implements the spaced-repetition review core: the
// interval policy that decides when an evaluated card comes back, and
// the in-memory session queue that orders and requeues cards within a
// single study session.
//
// The queue is transient by design. It lives only as long as the session
// that owns it; a restarted session is rebuilt from persisted flashcard
// state and any requeue ordering accumulated so far is dropped.
package scheduler

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"flashdeck/internal/models"
)

// Mode selects how a session treats evaluated cards.
type Mode int

const (
	// ModeFree shows every not-yet-completed card exactly once; any
	// outcome removes the card from the queue.
	ModeFree Mode = iota

	// ModeSpacedRepetition shows cards that are new or due, and keeps
	// failed cards in the queue until they are answered correctly.
	ModeSpacedRepetition
)

func (m Mode) String() string {
	if m == ModeSpacedRepetition {
		return "SPACED_REPETITION"
	}
	return "FREE"
}

// ParseMode translates a wire label into a Mode.
func ParseMode(label string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "FREE":
		return ModeFree, nil
	case "SPACED_REPETITION":
		return ModeSpacedRepetition, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, label)
}

// State is the lifecycle state of a session queue.
type State int

const (
	StateLoading State = iota
	StatePresenting
	StateFlipped
	StateEvaluating
	StateComplete
	StateEmpty
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePresenting:
		return "presenting"
	case StateFlipped:
		return "flipped"
	case StateEvaluating:
		return "evaluating"
	case StateComplete:
		return "complete"
	case StateEmpty:
		return "empty"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// wrongReinsertOffset is how many positions past the cursor a failed
// card is pushed back into the queue.
const wrongReinsertOffset = 3

// Progress is the queue summary reported back to the caller after each
// evaluation, sized for a UI progress bar.
type Progress struct {
	Remaining       int  `json:"remaining"`
	Completed       int  `json:"completed"`
	Total           int  `json:"total"`
	ProgressPercent int  `json:"progressPercent"`
	IsComplete      bool `json:"isComplete"`
}

// Queue holds the ordered set of flashcards still to present in one
// study session. It is owned by exactly one session controller and is
// not safe for concurrent use on its own.
type Queue struct {
	mode           Mode
	cards          []models.Flashcard
	currentIndex   int
	completedCount int
	totalCount     int
	state          State
}

// NewQueue filters the given cards down to those eligible for the
// session mode at the given time and builds the presentation queue,
// preserving the input order. A card with malformed scheduling data is
// skipped and logged; one bad record never blocks the whole session.
// An empty filtered set leaves the queue in the terminal Empty state.
func NewQueue(mode Mode, cards []models.Flashcard, now time.Time) *Queue {
	q := &Queue{mode: mode, state: StateLoading}
	for i := range cards {
		ok, err := eligible(&cards[i], mode, now)
		if err != nil {
			log.Printf("Skipping card %q from session queue: %v", cards[i].ID, err)
			continue
		}
		if ok {
			q.cards = append(q.cards, cards[i])
		}
	}
	q.totalCount = len(q.cards)
	if q.totalCount == 0 {
		q.state = StateEmpty
	} else {
		q.state = StatePresenting
	}
	return q
}

// eligible applies the mode-specific inclusion rule. The returned error
// marks a malformed card, not an ineligible one.
func eligible(card *models.Flashcard, mode Mode, now time.Time) (bool, error) {
	if card.ID == "" {
		return false, fmt.Errorf("card has no id")
	}
	switch card.Status {
	case models.StatusNotDone, models.StatusCompleted:
	default:
		return false, fmt.Errorf("card has unknown status %q", card.Status)
	}

	switch mode {
	case ModeFree:
		// Free practice takes anything not already completed.
		return card.Status == models.StatusNotDone || card.CompletionDate == nil, nil
	case ModeSpacedRepetition:
		// New cards plus completed cards whose review date has arrived.
		return card.Status == models.StatusNotDone || card.DueForReview(now), nil
	}
	return false, ErrUnknownMode
}

// Mode returns the session mode the queue was initialized with.
func (q *Queue) Mode() Mode {
	return q.mode
}

// State returns the queue's lifecycle state.
func (q *Queue) State() State {
	return q.state
}

// Current returns the card at the cursor. The second return is false
// when the queue has nothing to present (empty or complete); callers
// must check it before presenting. Calling Current repeatedly without
// an intervening evaluation returns the same card.
func (q *Queue) Current() (models.Flashcard, bool) {
	if len(q.cards) == 0 {
		return models.Flashcard{}, false
	}
	return q.cards[q.currentIndex], true
}

// Reveal marks the current card's answer as shown. Evaluation is only
// legal after a reveal. Revealing an already-revealed card is a no-op.
func (q *Queue) Reveal() error {
	switch q.state {
	case StateFlipped:
		return nil
	case StatePresenting:
		q.state = StateFlipped
		return nil
	}
	return fmt.Errorf("%w: queue is %s", ErrNoCurrentCard, q.state)
}

// RecordEvaluation applies the requeue policy to the current card and
// advances the cursor.
//
// In spaced-repetition mode: WRONG reinserts the card a few positions
// further into the queue, PARTIAL sends it to the tail, and only
// CORRECT removes it and counts it as completed. In free mode every
// card is graded exactly once, so any outcome removes it.
//
// Calling this with no current card, or before Reveal, is a caller
// contract violation and returns an error without mutating the queue.
func (q *Queue) RecordEvaluation(outcome Outcome) (Progress, error) {
	if q.state == StateEmpty || q.state == StateComplete || len(q.cards) == 0 {
		return q.Progress(), ErrNoCurrentCard
	}
	if q.state != StateFlipped {
		return q.Progress(), ErrNotRevealed
	}
	q.state = StateEvaluating

	card := q.cards[q.currentIndex]
	rest := make([]models.Flashcard, 0, len(q.cards)-1)
	rest = append(rest, q.cards[:q.currentIndex]...)
	rest = append(rest, q.cards[q.currentIndex+1:]...)

	switch {
	case q.mode == ModeFree, outcome == Correct:
		q.cards = rest
		q.completedCount++
	case outcome == Partial:
		q.cards = append(rest, card)
	default:
		// Wrong, plus anything unrecognized: keep the card close so it
		// comes back within a few presentations.
		pos := q.currentIndex + wrongReinsertOffset
		if pos > len(rest) {
			pos = len(rest)
		}
		q.cards = append(rest[:pos:pos], append([]models.Flashcard{card}, rest[pos:]...)...)
	}

	// The next card slides into the cursor position; clamp when the
	// removal emptied the tail.
	if q.currentIndex >= len(q.cards) {
		q.currentIndex = 0
	}
	if len(q.cards) == 0 {
		q.state = StateComplete
	} else {
		q.state = StatePresenting
	}
	return q.Progress(), nil
}

// IsComplete reports whether the queue has no more presentable cards.
func (q *Queue) IsComplete() bool {
	return len(q.cards) == 0
}

// Progress returns the current completion counters.
func (q *Queue) Progress() Progress {
	percent := 0
	if q.totalCount > 0 {
		percent = int(math.Round(float64(q.completedCount) / float64(q.totalCount) * 100))
	}
	return Progress{
		Remaining:       len(q.cards),
		Completed:       q.completedCount,
		Total:           q.totalCount,
		ProgressPercent: percent,
		IsComplete:      q.IsComplete(),
	}
}
