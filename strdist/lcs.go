package strdist

// LongestCommonSubstring returns the longest run of runes that appears
// contiguously in both a and b. On ties the run encountered first in a
// row-major scan of the DP table wins. The table tracks, with two rolling
// rows, the length of the common run ending at each pair of positions.
func LongestCommonSubstring(a, b string) string {
	if a == "" || b == "" {
		return ""
	}

	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	best, bestEnd := 0, 0
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > best {
					best, bestEnd = curr[j], i
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}

	return string(ra[bestEnd-best : bestEnd])
}
