package matching

import "fmt"

// Generate draws one assignment for names under exclusions.
//
// Steps:
//  1. Validate names (non-empty list, no empty name) → ErrInvalidInput.
//  2. Build candidate sets; a giver without candidates → *ParticipantError.
//  3. Optionally prove global feasibility with a maximum bipartite matching
//     → ErrNoValidMatching.
//  4. Backtrack most-constrained-first with shuffled candidates
//     → ErrNoValidMatching on exhaustion (joined with ErrSearchBudget when a
//     budget stopped the search).
//
// On success the result has one Pair per name, in input order. On failure the
// Assignment is nil.
func Generate(names []string, exclusions []Exclusion, opts ...Option) (Assignment, error) {
	o := newOptions(opts...)

	p, err := buildProblem(names, exclusions)
	if err != nil {
		return nil, err
	}

	if o.FeasibilityCheck && !p.feasible() {
		return nil, ErrNoValidMatching
	}

	e := newSearchEngine(p, o)
	if !e.run() {
		if e.stopped {
			return nil, fmt.Errorf("%w after %d steps: %w", ErrNoValidMatching, e.steps, ErrSearchBudget)
		}
		return nil, ErrNoValidMatching
	}

	out := make(Assignment, len(names))
	for g, r := range e.assign {
		out[g] = Pair{Giver: names[g], Receiver: names[r]}
	}

	return out, nil
}
