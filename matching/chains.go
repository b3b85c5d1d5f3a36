package matching

// Chains decomposes the assignment into gift cycles. A→B, B→C, C→A yields
// [A B C]. Each cycle starts at its earliest position in the assignment and
// cycles are ordered by that position.
//
// Receivers are resolved to giver positions label by label, so duplicate names
// are handled. On an invalid assignment the walk stops at the first receiver it
// cannot resolve and the affected chain is returned open.
//
// Complexity: O(n) time and space.
func (a Assignment) Chains() [][]string {
	n := len(a)
	if n == 0 {
		return nil
	}

	// Queue of giver positions per label, consumed as receivers claim them.
	positions := make(map[string][]int, n)
	for i, p := range a {
		positions[p.Giver] = append(positions[p.Giver], i)
	}
	// claimedBy[label]: pairs already linked to a giver carrying label.
	claimedBy := make(map[string][]int, n)
	next := make([]int, n)
	for i, p := range a {
		q := positions[p.Receiver]
		if len(q) == 0 {
			next[i] = -1
			continue
		}
		// Prefer another holder of the label over i itself.
		k := 0
		for k < len(q)-1 && q[k] == i {
			k++
		}
		positions[p.Receiver] = append(q[:k:k], q[k+1:]...)
		if q[k] == i {
			// Only i is left. Splice it behind an earlier pair that claimed
			// the same label, so no false self-gift appears.
			if js := claimedBy[p.Receiver]; len(js) > 0 {
				j := js[0]
				next[i], next[j] = next[j], i
				continue
			}
		}
		next[i] = q[k]
		claimedBy[p.Receiver] = append(claimedBy[p.Receiver], i)
	}

	visited := make([]bool, n)
	var chains [][]string
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		var chain []string
		for cur := start; cur >= 0 && !visited[cur]; cur = next[cur] {
			visited[cur] = true
			chain = append(chain, a[cur].Giver)
		}
		chains = append(chains, chain)
	}

	return chains
}
