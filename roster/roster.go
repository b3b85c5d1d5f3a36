// Package roster is the application state behind a Secret Santa draw: the
// participant list, the exclusion list and the rules for editing them.
//
// A Roster is owned by the presentation layer and passed explicitly to whatever
// renders or persists it. Persistence goes through Snapshot (Encode / Decode),
// never through ambient globals.
//
// Duplicate policy. Names are compared case-sensitively by default, so "Sam" and
// "sam" are two participants. WithCaseInsensitive folds case instead. Either way
// the roster never holds two participants that compare equal, which is what the
// matching generator expects from its caller.
package roster

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/katalvlaran/secretsanta/matching"
)

const (
	// MinParticipants is the smallest group a draw is offered for.
	MinParticipants = 3

	// MaxNameLength bounds a participant name, in runes.
	MaxNameLength = 64
)

var (
	ErrEmptyName          = errors.New("roster: empty name")
	ErrInvalidName        = errors.New("roster: invalid name")
	ErrDuplicateName      = errors.New("roster: name already exists")
	ErrUnknownParticipant = errors.New("roster: unknown participant")
	ErrSelfExclusion      = errors.New("roster: a person cannot be excluded from themselves")
	ErrUnknownExclusion   = errors.New("roster: unknown exclusion")
	ErrTooFewParticipants = errors.New("roster: at least 3 participants are needed for a draw")
	ErrNothingImported    = errors.New("roster: no new names found")
)

var validate = validator.New()

type nameInput struct {
	Name string `validate:"required,max=64"`
}

// Option configures a Roster.
type Option func(*Roster)

// WithCaseInsensitive makes "Sam" and "sam" the same participant.
func WithCaseInsensitive() Option {
	return func(r *Roster) {
		r.foldCase = true
	}
}

// Roster holds participants and exclusions. It is safe for concurrent use.
type Roster struct {
	mu           sync.RWMutex
	foldCase     bool
	participants []string
	exclusions   []matching.Exclusion
}

// New returns an empty roster.
func New(opts ...Option) *Roster {
	r := &Roster{}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// CaseInsensitive reports the duplicate policy.
func (r *Roster) CaseInsensitive() bool { return r.foldCase }

// Add appends a participant. The name is trimmed first.
func (r *Roster) Add(name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(name) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.participants = append(r.participants, name)

	return nil
}

// Import adds one participant per line of text. Blank lines and names already
// present are skipped. Validation is all-or-nothing: one invalid line and
// nothing is added. It returns how many participants were added.
func (r *Roster) Import(text string) (int, error) {
	var batch []string
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := validate.Struct(nameInput{Name: line}); err != nil {
			return 0, fmt.Errorf("%w on line %d: %v", ErrInvalidName, i+1, err)
		}
		batch = append(batch, line)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	added := 0
	for _, name := range batch {
		if r.indexOf(name) >= 0 {
			continue
		}
		r.participants = append(r.participants, name)
		added++
	}
	if added == 0 {
		return 0, ErrNothingImported
	}

	return added, nil
}

// Remove deletes a participant and every exclusion that mentions them.
func (r *Roster) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(strings.TrimSpace(name))
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownParticipant, name)
	}
	removed := r.participants[i]
	r.participants = append(r.participants[:i], r.participants[i+1:]...)
	r.exclusions = lo.Filter(r.exclusions, func(ex matching.Exclusion, _ int) bool {
		return ex.Giver != removed && ex.Receiver != removed
	})

	return nil
}

// AddExclusion forbids giver from drawing receiver. Both must be participants;
// names are resolved to their stored spelling. Adding an existing exclusion is
// a no-op.
func (r *Roster) AddExclusion(giver, receiver string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ex, err := r.resolve(giver, receiver)
	if err != nil {
		return err
	}
	if ex.Giver == ex.Receiver {
		return fmt.Errorf("%w: %q", ErrSelfExclusion, ex.Giver)
	}
	if lo.Contains(r.exclusions, ex) {
		return nil
	}
	r.exclusions = append(r.exclusions, ex)

	return nil
}

// RemoveExclusion deletes the giver → receiver exclusion.
func (r *Roster) RemoveExclusion(giver, receiver string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ex, err := r.resolve(giver, receiver)
	if err != nil {
		return err
	}
	i := lo.IndexOf(r.exclusions, ex)
	if i < 0 {
		return fmt.Errorf("%w: %q → %q", ErrUnknownExclusion, ex.Giver, ex.Receiver)
	}
	r.exclusions = append(r.exclusions[:i], r.exclusions[i+1:]...)

	return nil
}

// Participants returns a copy of the participant list in insertion order.
func (r *Roster) Participants() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.participants...)
}

// Exclusions returns a copy of the exclusion list in insertion order.
func (r *Roster) Exclusions() []matching.Exclusion {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]matching.Exclusion(nil), r.exclusions...)
}

// Len returns the number of participants.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.participants)
}

// CanDraw reports whether there are enough participants for a draw.
func (r *Roster) CanDraw() bool {
	return r.Len() >= MinParticipants
}

// Draw runs the matching generator on the current state.
func (r *Roster) Draw(opts ...matching.Option) (matching.Assignment, error) {
	names, exclusions := r.Participants(), r.Exclusions()
	if len(names) < MinParticipants {
		return nil, ErrTooFewParticipants
	}

	return matching.Generate(names, exclusions, opts...)
}

// Reset empties the roster, keeping its duplicate policy.
func (r *Roster) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.participants = nil
	r.exclusions = nil
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if err := validate.Struct(nameInput{Name: name}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	return name, nil
}

// indexOf finds name under the duplicate policy. Caller holds the lock.
func (r *Roster) indexOf(name string) int {
	if !r.foldCase {
		return lo.IndexOf(r.participants, name)
	}
	for i, p := range r.participants {
		if strings.EqualFold(p, name) {
			return i
		}
	}

	return -1
}

// resolve maps both names to their stored spelling. Caller holds the lock.
func (r *Roster) resolve(giver, receiver string) (matching.Exclusion, error) {
	gi := r.indexOf(strings.TrimSpace(giver))
	if gi < 0 {
		return matching.Exclusion{}, fmt.Errorf("%w: %q", ErrUnknownParticipant, giver)
	}
	ri := r.indexOf(strings.TrimSpace(receiver))
	if ri < 0 {
		return matching.Exclusion{}, fmt.Errorf("%w: %q", ErrUnknownParticipant, receiver)
	}

	return matching.Exclusion{Giver: r.participants[gi], Receiver: r.participants[ri]}, nil
}
