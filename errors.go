package workq

import "github.com/pkg/errors"

// ErrUnhashable is returned when uniqueness tracking is enabled and a key
// cannot be used as a map key, such as an interface value holding a slice.
// The returned error wraps ErrUnhashable; match it with errors.Is.
var ErrUnhashable = errors.New("workq: key is not hashable")

// ErrNilKeyFunc is returned by the keyed constructors when key is nil.
var ErrNilKeyFunc = errors.New("workq: nil key function")
