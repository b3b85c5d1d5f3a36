// Depth-first backtracking over the most-constrained-first giver order.
//
// State is kept in a dedicated engine struct instead of closures so the hot path
// touches only preallocated slices:
//   - used[r]   receiver r is already consumed
//   - assign[g] receiver chosen for giver g, or -1
//   - buf[d]    scratch copy of the candidate list tried at depth d
//
// Budgets: MaxSteps is checked on every node, the deadline every 1024 nodes.
// Once a budget trips, stopped is set and every frame unwinds without trying
// further candidates.

package matching

import "time"

// deadlineMask spaces out time.Now calls in the search loop.
const deadlineMask = 1023

type searchEngine struct {
	cand  [][]int
	order []int
	rng   Rand

	used   []bool
	assign []int
	buf    [][]int

	maxSteps    int
	steps       int
	useDeadline bool
	deadline    time.Time
	stopped     bool
}

func newSearchEngine(p *problem, o Options) *searchEngine {
	n := len(p.names)
	e := &searchEngine{
		cand:     p.cand,
		order:    p.order,
		rng:      o.Rand,
		used:     make([]bool, n),
		assign:   make([]int, n),
		buf:      make([][]int, n),
		maxSteps: o.MaxSteps,
	}
	for g := range e.assign {
		e.assign[g] = -1
	}
	for d, g := range e.order {
		e.buf[d] = make([]int, len(p.cand[g]))
	}
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}

	return e
}

// run reports whether a complete assignment was found.
func (e *searchEngine) run() bool {
	return e.backtrack(0)
}

func (e *searchEngine) backtrack(depth int) bool {
	if depth == len(e.order) {
		return true
	}
	if e.budgetExceeded() {
		return false
	}

	g := e.order[depth]
	options := e.buf[depth]
	copy(options, e.cand[g])
	shuffleInPlace(options, e.rng)

	for _, r := range options {
		if e.used[r] {
			continue
		}
		e.assign[g] = r
		e.used[r] = true
		if e.backtrack(depth + 1) {
			return true
		}
		e.assign[g] = -1
		e.used[r] = false
		if e.stopped {
			return false
		}
	}

	return false
}

func (e *searchEngine) budgetExceeded() bool {
	if e.stopped {
		return true
	}
	e.steps++
	if e.maxSteps > 0 && e.steps > e.maxSteps {
		e.stopped = true
		return true
	}
	if e.useDeadline && e.steps&deadlineMask == 0 && time.Now().After(e.deadline) {
		e.stopped = true
		return true
	}

	return false
}
