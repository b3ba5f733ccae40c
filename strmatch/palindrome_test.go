package strmatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algokit/strmatch"
)

func TestLongestPalindrome(t *testing.T) {
	tests := []struct {
		s, want string
	}{
		{"babad", "bab"},
		{"cbbd", "bb"},
		{"a", "a"},
		{"", ""},
		{"abc", "a"},
		{"forgeeksskeegfor", "geeksskeeg"},
		{"xyzyx", "xyzyx"},
		{"añña", "añña"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, strmatch.LongestPalindrome(tc.s), "s=%q", tc.s)
	}
}
