// Package strmatch holds string pattern solvers: bracket balancing,
// palindromes, anagram grouping, word-pattern bijection and a
// length-prefixed framing for lists of strings.
//
// All functions scan runes, so multi-byte text is handled character by
// character. The framing codec is the exception: its length prefixes count
// bytes, which keeps Decode a single forward pass over the input.
//
// Framing format, one frame per string:
//
//	<decimal byte length> "#" <content>
//
// e.g. []string{"Hello", "World"} encodes as "5#Hello5#World". Content may
// itself contain '#' and digits.
package strmatch
