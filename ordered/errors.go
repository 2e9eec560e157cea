package ordered

import "errors"

var (
	// ErrDuplicate reports a write that would overwrite an existing key.
	ErrDuplicate = errors.New("ordered: key already present")
	// ErrMissing reports an operation on a key that is not present.
	ErrMissing = errors.New("ordered: key not present")
)
