package scheduler

import (
	"fmt"
	"strings"
)

// Outcome is the grade a user gives the current card at review time.
// The scheduler keeps a single canonical vocabulary; callers translate
// whatever labels their transport uses before anything reaches the core.
type Outcome int

const (
	Wrong Outcome = iota + 1
	Partial
	Correct
)

func (o Outcome) String() string {
	switch o {
	case Wrong:
		return "WRONG"
	case Partial:
		return "PARTIAL"
	case Correct:
		return "CORRECT"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// ParseOutcome translates a wire label into an Outcome. The legacy
// Spanish grade labels are still accepted because older clients send
// them; they map onto the same three outcomes.
func ParseOutcome(label string) (Outcome, error) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "WRONG", "MAL":
		return Wrong, nil
	case "PARTIAL", "REGULAR":
		return Partial, nil
	case "CORRECT", "BIEN":
		return Correct, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOutcome, label)
}
