package matching

// shuffleInPlace performs a Fisher–Yates shuffle of a using r.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, r Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
