package list

import (
	"github.com/pkg/errors"
)

// ErrCapacityExceeded is returned (or raised, under OverflowPanic) when a
// push does not fit in a Fixed list.
var ErrCapacityExceeded = errors.New("list: capacity exceeded")

// ErrUnknownBackend is returned by Make for an unrecognized backend name.
var ErrUnknownBackend = errors.New("list: unknown backend")

// ErrInvalidCapacity is returned by Make for a negative capacity.
var ErrInvalidCapacity = errors.New("list: invalid capacity")

// ErrUnknownOverflow is returned by ParseOverflow for an unrecognized policy.
var ErrUnknownOverflow = errors.New("list: unknown overflow policy")
