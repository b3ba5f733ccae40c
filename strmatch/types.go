package strmatch

import "errors"

// ErrMalformedFrame indicates input that Encode could not have produced.
var ErrMalformedFrame = errors.New("strmatch: malformed frame")
