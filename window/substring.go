package window

// LongestUniqueSubstring returns the length, in runes, of the longest
// substring of s with no repeated rune.
//
// last maps a rune to the index just past its latest occurrence; when the
// incoming rune was seen inside the window, the left edge jumps past it.
func LongestUniqueSubstring(s string) int {
	rs := []rune(s)
	last := make(map[rune]int, len(rs))

	best, left := 0, 0
	for right, r := range rs {
		if next, ok := last[r]; ok && next > left {
			left = next
		}
		last[r] = right + 1
		best = max(best, right-left+1)
	}

	return best
}

// CharacterReplacement returns the length of the longest substring of s that
// can be turned into a run of one repeated rune by replacing at most k runes.
//
// A window is valid while (width - count of its most frequent rune) <= k.
// maxCount is never decreased when the window shrinks: a stale maximum only
// keeps the window from growing, which cannot produce a wrong answer.
func CharacterReplacement(s string, k int) int {
	if k < 0 {
		k = 0
	}
	rs := []rune(s)
	counts := make(map[rune]int)

	best, left, maxCount := 0, 0, 0
	for right, r := range rs {
		counts[r]++
		maxCount = max(maxCount, counts[r])

		for right-left+1-maxCount > k {
			counts[rs[left]]--
			left++
		}
		best = max(best, right-left+1)
	}

	return best
}

// MinWindow returns the shortest substring of s containing every rune of t
// with at least its multiplicity in t. It returns "" when no such window
// exists or t is empty. Among equally short windows the leftmost is returned.
//
// Steps:
//  1. need counts the runes of t; missing counts how many are still absent.
//  2. Advance right, consuming runes; when missing hits 0 the window is valid.
//  3. While valid, record it if strictly shorter, then advance left.
func MinWindow(s, t string) string {
	if t == "" || s == "" {
		return ""
	}

	need := make(map[rune]int)
	for _, r := range t {
		need[r]++
	}
	missing := len([]rune(t))

	rs := []rune(s)
	bestLeft, bestLen := 0, -1
	left := 0
	for right, r := range rs {
		if need[r] > 0 {
			missing--
		}
		need[r]-- // runes outside t go negative and never count

		for missing == 0 {
			if width := right - left + 1; bestLen < 0 || width < bestLen {
				bestLeft, bestLen = left, width
			}
			out := rs[left]
			need[out]++
			if need[out] > 0 {
				missing++
			}
			left++
		}
	}

	if bestLen < 0 {
		return ""
	}

	return string(rs[bestLeft : bestLeft+bestLen])
}

// FindAnagrams returns, in ascending order, every rune index in s at which a
// permutation of p begins. Empty p, or p longer than s, yields nil.
//
// A window of width len(p) slides over s while diff counts how many distinct
// runes still disagree between the window and p.
func FindAnagrams(s, p string) []int {
	rs, rp := []rune(s), []rune(p)
	if len(rp) == 0 || len(rp) > len(rs) {
		return nil
	}

	balance := make(map[rune]int) // window count minus p count
	for _, r := range rp {
		balance[r]--
	}
	diff := len(balance)

	adjust := func(r rune, delta int) {
		before := balance[r]
		balance[r] = before + delta
		switch {
		case before == 0:
			diff++
		case balance[r] == 0:
			diff--
		}
	}

	var out []int
	for i, r := range rs {
		adjust(r, +1)
		if i >= len(rp) {
			adjust(rs[i-len(rp)], -1)
		}
		if i >= len(rp)-1 && diff == 0 {
			out = append(out, i-len(rp)+1)
		}
	}

	return out
}
