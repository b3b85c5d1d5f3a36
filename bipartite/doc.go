// Package bipartite computes maximum matchings in bipartite graphs with the
// Hopcroft–Karp algorithm.
//
// Vertices are dense integer indices: left vertices 0..Left-1, right vertices
// 0..Right-1. Edges always run left → right.
//
// Hopcroft–Karp is Dinic's max-flow specialised to unit capacities:
//
//   - BFS from every free left vertex builds a level graph of alternating paths.
//   - DFS pushes vertex-disjoint shortest augmenting paths through that level
//     graph (a blocking flow), each one growing the matching by one.
//   - Phases repeat until no augmenting path remains.
//
// Complexity:
//
//	Time:   O(E · √V)
//	Memory: O(V + E)
//
// The matching package uses it to prove, before any backtracking, that a
// complete Secret Santa assignment exists (Hall's condition holds).
package bipartite
