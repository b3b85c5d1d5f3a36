package roster

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/secretsanta/matching"
)

// ErrInvalidSnapshot is returned when a snapshot cannot be decoded or restored.
var ErrInvalidSnapshot = errors.New("roster: invalid snapshot")

// Snapshot is the serializable state of a Roster.
type Snapshot struct {
	Participants []string             `json:"participants" validate:"dive,required,max=64"`
	Exclusions   []matching.Exclusion `json:"exclusions"`
}

// Snapshot captures the current state.
func (r *Roster) Snapshot() Snapshot {
	return Snapshot{
		Participants: r.Participants(),
		Exclusions:   r.Exclusions(),
	}
}

// Restore replaces the roster state with s.
//
// Participants must be valid and unique under the roster's duplicate policy,
// otherwise nothing changes. Exclusions are cleaned rather than rejected:
// records that do not name two distinct participants are dropped and repeats
// are collapsed.
func (r *Roster) Restore(s Snapshot) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	fresh := New()
	fresh.foldCase = r.foldCase
	for _, name := range s.Participants {
		if err := fresh.Add(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
	}
	for _, ex := range s.Exclusions {
		_ = fresh.AddExclusion(ex.Giver, ex.Receiver)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.participants = fresh.participants
	r.exclusions = fresh.exclusions

	return nil
}

// Encode renders the snapshot as JSON text.
func (s Snapshot) Encode() ([]byte, error) {
	return json.Marshal(Snapshot{
		Participants: lo.Ternary(s.Participants == nil, []string{}, s.Participants),
		Exclusions:   lo.Ternary(s.Exclusions == nil, []matching.Exclusion{}, s.Exclusions),
	})
}

// Decode parses JSON text produced by Encode.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	return s, nil
}
