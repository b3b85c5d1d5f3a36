// Package secretsanta draws Secret Santa assignments: everyone in a group
// buys a present for exactly one other member, nobody draws themselves, and
// declared exclusions ("Ada must not draw Ben") are honoured.
//
// The module is organised in small packages:
//
//	matching/  - the generator: candidate sets, feasibility check, randomised backtracking, Verify
//	bipartite/ - Hopcroft–Karp maximum bipartite matching used by the feasibility check
//	roster/    - participants and exclusions as application state, with validation
//	storage/   - Store interface with Badger and in-memory implementations
//	export/    - JSON, CSV and table output, share messages
//	reveal/    - the pass-the-device reveal sequence
//	cmd/secretsanta - command-line front end
//
// Quick start:
//
//	pairs, err := matching.Generate(
//		[]string{"Alice", "Bob", "Carol"},
//		[]matching.Exclusion{{Giver: "Alice", Receiver: "Bob"}},
//	)
//
// With Alice unable to draw Bob, the only valid assignment is the ring
// Alice → Carol → Bob → Alice.
package secretsanta
