package strmatch

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode joins strs into one string that Decode splits back exactly.
func Encode(strs []string) string {
	var b strings.Builder
	for _, s := range strs {
		b.WriteString(strconv.Itoa(len(s)))
		b.WriteByte('#')
		b.WriteString(s)
	}

	return b.String()
}

// Decode splits Encode output back into its strings. The empty input
// decodes to no strings. A missing '#', a non-numeric length or a length
// running past the end of data is ErrMalformedFrame.
func Decode(data string) ([]string, error) {
	var out []string
	for i := 0; i < len(data); {
		// 1) length prefix up to the next '#'
		hash := strings.IndexByte(data[i:], '#')
		if hash <= 0 {
			return nil, fmt.Errorf("%w: no length prefix at offset %d", ErrMalformedFrame, i)
		}
		n, err := strconv.ParseUint(data[i:i+hash], 10, 31)
		if err != nil {
			return nil, fmt.Errorf("%w: length %q at offset %d", ErrMalformedFrame, data[i:i+hash], i)
		}

		// 2) content of exactly n bytes
		start := i + hash + 1
		end := start + int(n)
		if end > len(data) {
			return nil, fmt.Errorf("%w: frame at offset %d needs %d bytes, %d left",
				ErrMalformedFrame, i, n, len(data)-start)
		}
		out = append(out, data[start:end])
		i = end
	}

	return out, nil
}
