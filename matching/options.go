package matching

import (
	"math/rand"
	"time"
)

// Rand is the random source used to shuffle candidate lists.
// *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform integer in [0, n). n is always > 0.
	Intn(n int) int
}

// Option configures Generate.
type Option func(*Options)

// Options holds the knobs of a single Generate call.
type Options struct {
	// Rand shuffles candidate lists. nil means a fresh time-seeded source per call.
	Rand Rand

	// MaxSteps bounds the number of search nodes expanded; 0 means unlimited.
	MaxSteps int

	// TimeLimit bounds the wall-clock search time; 0 means unlimited.
	TimeLimit time.Duration

	// FeasibilityCheck runs a maximum bipartite matching before the search so
	// that globally infeasible inputs fail in polynomial time.
	FeasibilityCheck bool
}

// DefaultOptions returns:
//   - a per-call time-seeded random source
//   - no step or time budget
//   - the feasibility check enabled
func DefaultOptions() Options {
	return Options{
		Rand:             nil,
		MaxSteps:         0,
		TimeLimit:        0,
		FeasibilityCheck: true,
	}
}

// WithRand injects the random source. Panics on nil.
func WithRand(r Rand) Option {
	if r == nil {
		panic("matching: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed uses a deterministic *rand.Rand seeded with seed. The same seed and
// input always produce the same assignment.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithMaxSteps bounds the number of search nodes. Panics on negative n.
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic("matching: WithMaxSteps(n<0)")
	}
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithTimeLimit bounds the search time. Panics on negative d.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("matching: WithTimeLimit(d<0)")
	}
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithFeasibilityCheck toggles the bipartite pre-check.
func WithFeasibilityCheck(enabled bool) Option {
	return func(o *Options) {
		o.FeasibilityCheck = enabled
	}
}

func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}
