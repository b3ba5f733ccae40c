package strmatch

// closers maps each closing bracket to its opener.
var closers = map[rune]rune{')': '(', ']': '[', '}': '{'}

// IsValidBrackets reports whether s consists only of ()[]{} and every
// bracket is closed by the matching type in the right order. The empty
// string is valid; any other rune makes s invalid.
func IsValidBrackets(s string) bool {
	stack := make([]rune, 0, len(s)/2)
	for _, r := range s {
		switch r {
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != closers[r] {
				return false
			}
			stack = stack[:len(stack)-1]
		default:
			return false
		}
	}

	return len(stack) == 0
}
