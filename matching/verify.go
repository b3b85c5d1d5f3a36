package matching

import "fmt"

// Verify checks that a is a valid assignment for names under exclusions:
//   - exactly one pair per participant,
//   - every participant appears once as giver and once as receiver,
//   - no self-match,
//   - no excluded pair.
//
// Participants are compared by label, so with duplicate names a pair whose
// giver and receiver share a repeated label is accepted. The first violation is
// returned wrapped around ErrInvalidAssignment.
func Verify(names []string, exclusions []Exclusion, a Assignment) error {
	if err := validateNames(names); err != nil {
		return err
	}
	if len(a) != len(names) {
		return fmt.Errorf("%w: %d pairs for %d participants", ErrInvalidAssignment, len(a), len(names))
	}

	count := make(map[string]int, len(names))
	for _, name := range names {
		count[name]++
	}
	givers := make(map[string]int, len(names))
	receivers := make(map[string]int, len(names))
	excluded := exclusionSet(exclusions)

	for _, p := range a {
		if count[p.Giver] == 0 {
			return fmt.Errorf("%w: unknown giver %q", ErrInvalidAssignment, p.Giver)
		}
		if count[p.Receiver] == 0 {
			return fmt.Errorf("%w: unknown receiver %q", ErrInvalidAssignment, p.Receiver)
		}
		if p.Giver == p.Receiver && count[p.Giver] < 2 {
			return fmt.Errorf("%w: %q is assigned to themselves", ErrInvalidAssignment, p.Giver)
		}
		if _, ok := excluded[Exclusion(p)]; ok {
			return fmt.Errorf("%w: excluded pair %q → %q", ErrInvalidAssignment, p.Giver, p.Receiver)
		}
		givers[p.Giver]++
		receivers[p.Receiver]++
	}

	for name, c := range count {
		if givers[name] != c {
			return fmt.Errorf("%w: %q gives %d times, expected %d", ErrInvalidAssignment, name, givers[name], c)
		}
		if receivers[name] != c {
			return fmt.Errorf("%w: %q receives %d times, expected %d", ErrInvalidAssignment, name, receivers[name], c)
		}
	}

	return nil
}
