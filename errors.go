package vec

import "github.com/pkg/errors"

// ErrOutOfRange is returned by the checked accessors (At, SetAt) when the
// index is not in [0, Len()). Test for it with errors.Is; the returned error
// carries the offending index and the current length as context.
var ErrOutOfRange = errors.New("vec: index out of range")
