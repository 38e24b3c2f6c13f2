package scheduler

import (
	"testing"
	"time"
)

func TestNextReviewDate(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		outcome  Outcome
		expected time.Time
	}{
		{
			name:     "wrong comes back tomorrow",
			outcome:  Wrong,
			expected: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "partial comes back in three days",
			outcome:  Partial,
			expected: time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "correct comes back in a week",
			outcome:  Correct,
			expected: time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "unrecognized outcome falls back to shortest interval",
			outcome:  Outcome(99),
			expected: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "zero outcome falls back to shortest interval",
			outcome:  Outcome(0),
			expected: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NextReviewDate(tt.outcome, now)
			if !result.Equal(tt.expected) {
				t.Errorf("NextReviewDate(%v) = %v, want %v", tt.outcome, result, tt.expected)
			}
		})
	}
}

func TestNextReviewDatePreservesTimeOfDay(t *testing.T) {
	// The interval is a whole number of days regardless of the clock
	// time carried by now.
	times := []time.Time{
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 3, 15, 12, 30, 45, 123, time.Local),
	}

	for _, now := range times {
		got := NextReviewDate(Correct, now)
		want := now.AddDate(0, 0, 7)
		if !got.Equal(want) {
			t.Errorf("NextReviewDate(Correct, %v) = %v, want %v", now, got, want)
		}
	}
}

func TestNextReviewDateIsDeterministic(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 15, 0, 0, time.UTC)
	first := NextReviewDate(Partial, now)
	second := NextReviewDate(Partial, now)
	if !first.Equal(second) {
		t.Errorf("same inputs produced %v and %v", first, second)
	}
}

func TestParseOutcome(t *testing.T) {
	tests := []struct {
		label    string
		expected Outcome
		wantErr  bool
	}{
		{label: "WRONG", expected: Wrong},
		{label: "PARTIAL", expected: Partial},
		{label: "CORRECT", expected: Correct},
		{label: "correct", expected: Correct},
		{label: " wrong ", expected: Wrong},
		// Legacy grade labels from older clients.
		{label: "MAL", expected: Wrong},
		{label: "REGULAR", expected: Partial},
		{label: "BIEN", expected: Correct},
		{label: "bien", expected: Correct},
		{label: "GREAT", wantErr: true},
		{label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			outcome, err := ParseOutcome(tt.label)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseOutcome(%q) expected an error, got %v", tt.label, outcome)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOutcome(%q) returned error: %v", tt.label, err)
			}
			if outcome != tt.expected {
				t.Errorf("ParseOutcome(%q) = %v, want %v", tt.label, outcome, tt.expected)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("free"); err != nil || m != ModeFree {
		t.Errorf("ParseMode(free) = %v, %v", m, err)
	}
	if m, err := ParseMode("SPACED_REPETITION"); err != nil || m != ModeSpacedRepetition {
		t.Errorf("ParseMode(SPACED_REPETITION) = %v, %v", m, err)
	}
	if _, err := ParseMode("TIMED"); err == nil {
		t.Error("ParseMode(TIMED) expected an error")
	}
}
