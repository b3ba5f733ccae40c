package strmatch

import (
	"slices"
	"strings"
)

// GroupAnagrams partitions strs into groups of anagrams. Groups appear in
// the order their first member appears in strs, and members keep input
// order.
func GroupAnagrams(strs []string) [][]string {
	index := make(map[string]int, len(strs))
	var groups [][]string
	for _, s := range strs {
		rs := []rune(s)
		slices.Sort(rs)
		key := string(rs)
		if i, ok := index[key]; ok {
			groups[i] = append(groups[i], s)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, []string{s})
	}

	return groups
}

// WordPattern reports whether the space-separated words of s follow
// pattern: a bijection between pattern runes and words.
func WordPattern(pattern, s string) bool {
	words := strings.Fields(s)
	letters := []rune(pattern)
	if len(words) != len(letters) {
		return false
	}
	toWord := make(map[rune]string, len(letters))
	toLetter := make(map[string]rune, len(words))
	for i, r := range letters {
		w := words[i]
		if prev, ok := toWord[r]; ok && prev != w {
			return false
		}
		if prev, ok := toLetter[w]; ok && prev != r {
			return false
		}
		toWord[r] = w
		toLetter[w] = r
	}

	return true
}
