package savefile

import "errors"

// ErrFormat marks structurally malformed input: bad JSON, a missing required
// field, a value of the wrong type, or a duplicated object key. The legacy
// decoder tags binary layout violations with the same sentinel.
var ErrFormat = errors.New("format error")
