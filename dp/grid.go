package dp

// UniquePaths counts right/down lattice paths from the top-left to the
// bottom-right corner of an m×n grid. Non-positive dimensions yield 0.
func UniquePaths(m, n int) int {
	t := Tabulate2D(m, n, func(t [][]int, i, j int) int {
		if i == 0 || j == 0 {
			return 1
		}
		return t[i-1][j] + t[i][j-1]
	})
	if t == nil {
		return 0
	}

	return t[m-1][n-1]
}

// CountPalindromes counts palindromic substrings of s (by position, so
// "aaa" has six) by expanding around each of the 2n-1 centers.
func CountPalindromes(s string) int {
	rs := []rune(s)
	count := 0
	for c := 0; c < 2*len(rs)-1; c++ {
		lo, hi := c/2, c/2+c%2
		for lo >= 0 && hi < len(rs) && rs[lo] == rs[hi] {
			count++
			lo--
			hi++
		}
	}

	return count
}

// IsMatch reports whether the whole of s matches pattern p, where '.'
// matches any single rune and '*' matches zero or more of the preceding
// token. A '*' with nothing before it matches nothing.
//
// t[i][j] reports whether s[:i] matches p[:j].
func IsMatch(s, p string) bool {
	sr, pr := []rune(s), []rune(p)
	matches := func(c, tok rune) bool { return tok == '.' || tok == c }

	t := Tabulate2D(len(sr)+1, len(pr)+1, func(t [][]bool, i, j int) bool {
		switch {
		case j == 0:
			return i == 0
		case pr[j-1] == '*' && j == 1:
			return t[i][0]
		case pr[j-1] == '*':
			// zero copies of the token, or one more copy of it
			return t[i][j-2] || (i > 0 && matches(sr[i-1], pr[j-2]) && t[i-1][j])
		default:
			return i > 0 && matches(sr[i-1], pr[j-1]) && t[i-1][j-1]
		}
	})

	return t[len(sr)][len(pr)]
}
