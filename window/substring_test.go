package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algokit/window"
)

func TestLongestUniqueSubstring(t *testing.T) {
	cases := map[string]int{
		"abcabcbb": 3,
		"pwwkew":   3,
		"bbbbb":    1,
		"abba":     2,
		"":         0,
		"héllo wö": 5,
	}
	for s, want := range cases {
		assert.Equal(t, want, window.LongestUniqueSubstring(s), "s=%q", s)
	}
}

func TestCharacterReplacement(t *testing.T) {
	assert.Equal(t, 4, window.CharacterReplacement("AABABBA", 1))
	assert.Equal(t, 4, window.CharacterReplacement("ABAB", 2))
	assert.Equal(t, 2, window.CharacterReplacement("ABCD", 1))
	assert.Equal(t, 1, window.CharacterReplacement("ABCD", -3))
	assert.Equal(t, 0, window.CharacterReplacement("", 2))
}

func TestMinWindow(t *testing.T) {
	assert.Equal(t, "BANC", window.MinWindow("ADOBECODEBANC", "ABC"))
	assert.Equal(t, "a", window.MinWindow("a", "a"))
	assert.Equal(t, "", window.MinWindow("a", "aa"), "multiplicity must be honoured")
	assert.Equal(t, "", window.MinWindow("abc", ""))
	assert.Equal(t, "", window.MinWindow("", "a"))
	// "ab" and "ba" are both shortest; the leftmost wins.
	assert.Equal(t, "ab", window.MinWindow("abba", "ab"))
}

func TestFindAnagrams(t *testing.T) {
	assert.Equal(t, []int{0, 6}, window.FindAnagrams("cbaebabacd", "abc"))
	assert.Equal(t, []int{0, 1, 2}, window.FindAnagrams("abab", "ab"))
	assert.Nil(t, window.FindAnagrams("ab", "abc"))
	assert.Nil(t, window.FindAnagrams("abc", ""))
	assert.Nil(t, window.FindAnagrams("xyz", "ab"))
}
