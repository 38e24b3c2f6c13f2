package scheduler

import "time"

// Review intervals in days. The scheme is deliberately a fixed ladder
// rather than an adaptive one: no ease factor or per-card history is
// consulted, so the same outcome always yields the same interval.
const (
	wrongIntervalDays   = 1
	partialIntervalDays = 3
	correctIntervalDays = 7
)

// NextReviewDate computes when a card evaluated with the given outcome
// should be shown again. It is a pure function of its arguments and is
// total: an unrecognized outcome falls back to the shortest interval so
// a bad grade value can never push a card far into the future.
func NextReviewDate(outcome Outcome, now time.Time) time.Time {
	switch outcome {
	case Partial:
		return now.AddDate(0, 0, partialIntervalDays)
	case Correct:
		return now.AddDate(0, 0, correctIntervalDays)
	default:
		// Wrong, plus anything unrecognized
		return now.AddDate(0, 0, wrongIntervalDays)
	}
}
