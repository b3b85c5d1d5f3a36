package matching_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/secretsanta/matching"
)

// randomInstance builds n participants with each ordered pair excluded with
// probability p. Seeded, so failures reproduce.
func randomInstance(r *rand.Rand, n int, p float64) ([]string, []matching.Exclusion) {
	ns := names(n)
	var ex []matching.Exclusion
	for _, g := range ns {
		for _, v := range ns {
			if g != v && r.Float64() < p {
				ex = append(ex, matching.Exclusion{Giver: g, Receiver: v})
			}
		}
	}

	return ns, ex
}

// TestRepeatedDrawsStayValid runs the same feasible input 1000 times: every
// result is a bijection without self-matches or excluded pairs.
func TestRepeatedDrawsStayValid(t *testing.T) {
	ns := []string{"Ann", "Ben", "Cat", "Dan", "Eve", "Fay", "Gus"}
	ex := []matching.Exclusion{
		{Giver: "Ann", Receiver: "Ben"}, {Giver: "Ben", Receiver: "Ann"},
		{Giver: "Cat", Receiver: "Dan"}, {Giver: "Dan", Receiver: "Cat"},
		{Giver: "Eve", Receiver: "Fay"}, {Giver: "Gus", Receiver: "Ann"},
	}
	for i := 0; i < 1000; i++ {
		a, err := matching.Generate(ns, ex)
		require.NoError(t, err)
		requireValid(t, ns, ex, a)
	}
}

// TestSearchAgreesWithPreCheck: on random instances the exhaustive search and
// the bipartite pre-check reach the same verdict, and every success is valid.
func TestSearchAgreesWithPreCheck(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for i := 0; i < 300; i++ {
		n := 2 + r.Intn(7)
		ns, ex := randomInstance(r, n, 0.55)

		withCheck, errCheck := matching.Generate(ns, ex, matching.WithSeed(int64(i)))
		searchOnly, errSearch := matching.Generate(ns, ex, matching.WithSeed(int64(i)), matching.WithFeasibilityCheck(false))

		require.Equal(t, errCheck == nil, errSearch == nil, "instance %d: verdicts differ (%v vs %v)", i, errCheck, errSearch)
		if errors.Is(errCheck, matching.ErrUnsatisfiableParticipant) {
			require.ErrorIs(t, errSearch, matching.ErrUnsatisfiableParticipant, "instance %d", i)
			continue
		}
		if errCheck != nil {
			require.ErrorIs(t, errCheck, matching.ErrNoValidMatching, "instance %d", i)
			require.ErrorIs(t, errSearch, matching.ErrNoValidMatching, "instance %d", i)
			require.NotErrorIs(t, errSearch, matching.ErrSearchBudget)
			continue
		}
		requireValid(t, ns, ex, withCheck)
		requireValid(t, ns, ex, searchOnly)
	}
}

// TestChainsWithRepeatedNames: nobody draws their own position, so chains of
// any generated draw cover everyone and none has length one, even when names
// repeat.
func TestChainsWithRepeatedNames(t *testing.T) {
	ns := []string{"Sam", "Bob", "Sam", "Ann", "Sam", "Bob"}
	for seed := int64(0); seed < 200; seed++ {
		a, err := matching.Generate(ns, nil, matching.WithSeed(seed))
		require.NoError(t, err)

		total := 0
		for _, c := range a.Chains() {
			require.Greater(t, len(c), 1, "seed %d: false self-gift in %v", seed, a)
			total += len(c)
		}
		require.Equal(t, len(ns), total, "seed %d", seed)
	}
}
