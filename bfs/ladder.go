package bfs

import "slices"

// LadderLength returns the number of words in the shortest transformation
// sequence from begin to end, where consecutive words differ in exactly one
// character and every word after begin comes from words. begin itself need
// not be in the dictionary. It returns 0 when end is not in the dictionary
// or cannot be reached.
func LadderLength(begin, end string, words []string) int {
	// 1) Index the dictionary and collect its alphabet
	dict := make(map[string]struct{}, len(words))
	var alphabet []rune
	seen := make(map[rune]struct{})
	for _, w := range words {
		dict[w] = struct{}{}
		for _, r := range w {
			if _, ok := seen[r]; !ok {
				seen[r] = struct{}{}
				alphabet = append(alphabet, r)
			}
		}
	}
	if _, ok := dict[end]; !ok {
		return 0
	}
	slices.Sort(alphabet)

	// 2) Neighbours are generated lazily: one substitution per position
	expand := func(w string) []string {
		rs := []rune(w)
		var out []string
		for i, orig := range rs {
			for _, r := range alphabet {
				if r == orig {
					continue
				}
				rs[i] = r
				if cand := string(rs); cand != w {
					if _, ok := dict[cand]; ok {
						out = append(out, cand)
					}
				}
			}
			rs[i] = orig
		}

		return out
	}

	// 3) BFS distance counts edges; the ladder counts words
	d, err := ShortestPath(begin, end, expand)
	if err != nil {
		return 0 // ErrUnreachable is the only possible error here
	}

	return d + 1
}
