package scheduler

import "errors"

var (
	// ErrNoCurrentCard is returned when an evaluation is recorded against
	// a queue that has no card to evaluate.
	ErrNoCurrentCard = errors.New("scheduler: no current card")

	// ErrNotRevealed is returned when a card is evaluated before its
	// answer was revealed.
	ErrNotRevealed = errors.New("scheduler: card has not been revealed")

	// ErrUnknownOutcome is returned by ParseOutcome for labels outside
	// both the canonical and the legacy vocabulary.
	ErrUnknownOutcome = errors.New("scheduler: unknown evaluation outcome")

	// ErrUnknownMode is returned by ParseMode for unrecognized session modes.
	ErrUnknownMode = errors.New("scheduler: unknown session mode")
)
