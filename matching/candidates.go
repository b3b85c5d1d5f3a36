package matching

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/secretsanta/bipartite"
)

// CandidateSet lists the legal receivers of one giver.
type CandidateSet struct {
	Giver     string
	Receivers []string
}

// problem is the index-based view of a single Generate call. Participants are
// identified by their position in names, so duplicate labels stay distinct.
type problem struct {
	names []string
	cand  [][]int // cand[g]: receiver positions legal for giver g, ascending
	order []int   // givers sorted by ascending len(cand[g]), stable
}

// Candidates validates the input like Generate and returns, in input order, the
// legal receivers of every giver. It does not fail on empty sets: those are
// reported as CandidateSets with no receivers.
func Candidates(names []string, exclusions []Exclusion) ([]CandidateSet, error) {
	if err := validateNames(names); err != nil {
		return nil, err
	}
	cand := candidateLists(names, exclusionSet(exclusions))

	out := make([]CandidateSet, len(names))
	for g, row := range cand {
		receivers := make([]string, len(row))
		for i, r := range row {
			receivers[i] = names[r]
		}
		out[g] = CandidateSet{Giver: names[g], Receivers: receivers}
	}

	return out, nil
}

// buildProblem validates the input, computes candidate sets, fails fast on the
// first giver without any candidate and orders givers most-constrained-first.
func buildProblem(names []string, exclusions []Exclusion) (*problem, error) {
	if err := validateNames(names); err != nil {
		return nil, err
	}

	p := &problem{
		names: names,
		cand:  candidateLists(names, exclusionSet(exclusions)),
	}

	for g, row := range p.cand {
		if len(row) == 0 {
			return nil, &ParticipantError{Giver: names[g]}
		}
	}

	p.order = make([]int, len(names))
	for g := range p.order {
		p.order[g] = g
	}
	sort.SliceStable(p.order, func(i, j int) bool {
		return len(p.cand[p.order[i]]) < len(p.cand[p.order[j]])
	})

	return p, nil
}

// feasible reports whether the candidate graph admits a perfect matching.
func (p *problem) feasible() bool {
	n := len(p.names)
	g, err := bipartite.New(n, n)
	if err != nil {
		return false
	}
	for u, row := range p.cand {
		for _, v := range row {
			if err = g.AddEdge(u, v); err != nil {
				return false
			}
		}
	}

	return g.MaxMatching().Perfect()
}

func validateNames(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("%w: names must be a non-empty list", ErrInvalidInput)
	}
	for i, name := range names {
		if name == "" {
			return fmt.Errorf("%w: empty participant name at position %d", ErrInvalidInput, i)
		}
	}

	return nil
}

// exclusionSet drops records with a missing field and self-exclusions.
func exclusionSet(exclusions []Exclusion) map[Exclusion]struct{} {
	set := make(map[Exclusion]struct{}, len(exclusions))
	for _, ex := range exclusions {
		if ex.Giver == "" || ex.Receiver == "" || ex.Giver == ex.Receiver {
			continue
		}
		set[ex] = struct{}{}
	}

	return set
}

// candidateLists returns, for every giver position, the receiver positions
// other than itself that the giver does not exclude.
//
// Complexity: O(n²) time and space.
func candidateLists(names []string, excluded map[Exclusion]struct{}) [][]int {
	n := len(names)
	cand := make([][]int, n)

	var (
		g, r int
		ok   bool
	)
	for g = 0; g < n; g++ {
		row := make([]int, 0, n-1)
		for r = 0; r < n; r++ {
			if r == g {
				continue
			}
			if _, ok = excluded[Exclusion{Giver: names[g], Receiver: names[r]}]; ok {
				continue
			}
			row = append(row, r)
		}
		cand[g] = row
	}

	return cand
}
