package strmatch

// LongestPalindrome returns the longest palindromic substring of s. Centers
// are tried left to right (odd center before the even center that follows
// it) and a later palindrome replaces the best only when strictly longer, so
// ties go to the leftmost.
func LongestPalindrome(s string) string {
	rs := []rune(s)
	bestLo, bestHi := 0, 0 // half-open rune range
	expand := func(lo, hi int) {
		for lo >= 0 && hi < len(rs) && rs[lo] == rs[hi] {
			lo--
			hi++
		}
		if hi-lo-1 > bestHi-bestLo {
			bestLo, bestHi = lo+1, hi
		}
	}
	for i := range rs {
		expand(i, i)
		expand(i, i+1)
	}

	return string(rs[bestLo:bestHi])
}
