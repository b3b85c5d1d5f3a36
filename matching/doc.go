// Package matching draws Secret Santa assignments: a one-to-one giver → receiver
// mapping over a group of participants in which nobody buys for themselves and
// no declared exclusion is violated.
//
// The problem is a derangement with forbidden positions. Generate solves it as a
// constraint-satisfaction search:
//
//  1. Candidate sets. For every giver, compute the legal receivers (everyone but
//     itself, minus its explicit exclusions). An empty set fails immediately with
//     a *ParticipantError naming the giver.
//  2. Ordering. Givers are processed by ascending candidate count
//     (most-constrained-first); ties keep input order.
//  3. Feasibility. Unless disabled, a maximum bipartite matching over the
//     candidate graph (package bipartite) proves that a complete assignment exists
//     before any exponential work is done.
//  4. Search. Depth-first backtracking over the ordered givers. The candidate list
//     of each giver is shuffled before it is tried, so repeated draws of the same
//     input yield different (but always valid) assignments.
//
// The search is exhaustive within the constraint graph: randomness changes which
// assignment is returned, never whether one is found.
//
// Errors:
//
//	ErrInvalidInput             - nil/empty names or an empty participant name.
//	ErrUnsatisfiableParticipant - a giver has no legal receiver (see ParticipantError).
//	ErrNoValidMatching          - the constraint graph admits no perfect matching,
//	                              or a configured search budget ran out.
//	ErrSearchBudget             - additionally matched when a budget ran out.
//
// Duplicate names. Uniqueness of participant names is the caller's concern. The
// generator does not deduplicate: repeated strings are distinct identities (by
// position) that share the same label, so two "Sam" entries may well be assigned
// to each other. Deduplicate before calling if that is not what you want.
//
// Concurrency. Generate holds no state between calls and is safe to call from
// many goroutines. A Rand supplied through WithRand is used as-is; *rand.Rand is
// not goroutine-safe, so do not share one between concurrent calls.
//
// Complexity: O(n²) to build candidate sets, O(E·√n) for the feasibility check
// and exponential worst case for the search, which is fast in practice for tens
// of participants with sparse exclusions.
package matching
