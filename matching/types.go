package matching

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when the call itself is malformed: names is nil
	// or empty, or contains an empty participant name.
	ErrInvalidInput = errors.New("matching: invalid input")

	// ErrUnsatisfiableParticipant is returned (wrapped in *ParticipantError) when a
	// giver has no legal receiver before the search starts.
	ErrUnsatisfiableParticipant = errors.New("matching: participant has no possible receivers")

	// ErrNoValidMatching is returned when no complete assignment satisfies the
	// exclusions even though every giver has at least one candidate.
	ErrNoValidMatching = errors.New("matching: could not find a valid matching")

	// ErrSearchBudget is joined with ErrNoValidMatching when WithMaxSteps or
	// WithTimeLimit stopped the search early.
	ErrSearchBudget = errors.New("matching: search budget exhausted")

	// ErrInvalidAssignment is returned by Verify for an assignment that breaks
	// one of the matching invariants.
	ErrInvalidAssignment = errors.New("matching: invalid assignment")
)

// ParticipantError names the giver whose candidate set is empty.
type ParticipantError struct {
	Giver string
}

func (e *ParticipantError) Error() string {
	return fmt.Sprintf("matching: no possible receivers for %q; check exclusions or add more participants", e.Giver)
}

// Unwrap makes errors.Is(err, ErrUnsatisfiableParticipant) hold.
func (e *ParticipantError) Unwrap() error { return ErrUnsatisfiableParticipant }

// Exclusion forbids Giver from being assigned Receiver. It is directional:
// excluding A→B says nothing about B→A.
type Exclusion struct {
	Giver    string `json:"giver"`
	Receiver string `json:"receiver"`
}

// Pair is one entry of an Assignment.
type Pair struct {
	Giver    string `json:"giver"`
	Receiver string `json:"receiver"`
}

// Assignment holds one Pair per participant, in the order the participants
// were passed to Generate.
type Assignment []Pair

// ReceiverOf returns the receiver assigned to giver. With duplicate names the
// first matching giver wins.
func (a Assignment) ReceiverOf(giver string) (string, bool) {
	for _, p := range a {
		if p.Giver == giver {
			return p.Receiver, true
		}
	}

	return "", false
}

// Givers returns the givers in assignment order.
func (a Assignment) Givers() []string {
	out := make([]string, len(a))
	for i, p := range a {
		out[i] = p.Giver
	}

	return out
}
