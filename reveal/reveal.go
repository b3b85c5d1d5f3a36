// Package reveal drives the pass-the-device flow: one device goes round the
// group and each giver, in turn, sees only their own receiver.
//
// A Session moves through three steps:
//
//	Handoff  -> Reveal() -> Revealed
//	Revealed -> Next()   -> Handoff (next giver) or Finished (after the last)
//
// Any other transition returns ErrIllegalTransition and leaves the session
// unchanged. A Session is not safe for concurrent use.
package reveal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/secretsanta/matching"
)

// ErrIllegalTransition is returned when an action does not apply to the
// current step.
var ErrIllegalTransition = errors.New("reveal: illegal transition")

// Step is the position of a Session in the flow.
type Step int

const (
	// Handoff: the device is with the current giver, receiver hidden.
	Handoff Step = iota
	// Revealed: the current giver's receiver is on screen.
	Revealed
	// Finished: every giver has seen their receiver.
	Finished
)

func (s Step) String() string {
	switch s {
	case Handoff:
		return "handoff"
	case Revealed:
		return "revealed"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Session walks an assignment in order.
type Session struct {
	pairs matching.Assignment
	idx   int
	step  Step
}

// NewSession copies a. An empty assignment starts Finished.
func NewSession(a matching.Assignment) *Session {
	s := &Session{pairs: append(matching.Assignment(nil), a...)}
	s.Reset()

	return s
}

// Current returns the pair being handed over and the step. The pair is zero
// once the session is Finished.
func (s *Session) Current() (matching.Pair, Step) {
	if s.step == Finished {
		return matching.Pair{}, Finished
	}

	return s.pairs[s.idx], s.step
}

// Step reports the current step.
func (s *Session) Step() Step { return s.step }

// Reveal shows the current giver's receiver.
func (s *Session) Reveal() error {
	if s.step != Handoff {
		return fmt.Errorf("%w: reveal while %s", ErrIllegalTransition, s.step)
	}
	s.step = Revealed

	return nil
}

// Next hides the receiver and passes the device on.
func (s *Session) Next() error {
	if s.step != Revealed {
		return fmt.Errorf("%w: next while %s", ErrIllegalTransition, s.step)
	}
	s.idx++
	if s.idx == len(s.pairs) {
		s.step = Finished
		return nil
	}
	s.step = Handoff

	return nil
}

// Reset starts over from the first giver.
func (s *Session) Reset() {
	s.idx = 0
	s.step = Handoff
	if len(s.pairs) == 0 {
		s.step = Finished
	}
}

// Remaining counts givers who have not yet seen their receiver.
func (s *Session) Remaining() int {
	switch s.step {
	case Finished:
		return 0
	case Revealed:
		return len(s.pairs) - s.idx - 1
	default:
		return len(s.pairs) - s.idx
	}
}
