package list

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Backend names accepted by Make.
const (
	BackendNode  = "node"
	BackendArray = "array"
	BackendFixed = "fixed"
)

// Options selects and configures a backend for Make.
type Options struct {
	// Backend is one of BackendNode, BackendArray or BackendFixed. Empty
	// selects BackendNode.
	Backend string
	// Capacity is the capacity of a fixed backend (zero selects
	// DefaultCapacity), or the initial reservation of an array backend. It is
	// ignored by the node backend.
	Capacity int
	// Overflow is the overflow policy of a fixed backend.
	Overflow Overflow
	Log      *logrus.Entry
}

// Make returns an empty list using the backend described by opts.
func Make[T any](opts Options) (Forward[T], error) {
	if opts.Capacity < 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "%d", opts.Capacity)
	}
	switch opts.Backend {
	case "", BackendNode:
		return New[T](), nil
	case BackendArray:
		a := NewArray[T]()
		a.Reserve(opts.Capacity)
		return a, nil
	case BackendFixed:
		return NewFixed[T](FixedOptions{
			Capacity: opts.Capacity,
			Overflow: opts.Overflow,
			Log:      opts.Log,
		}), nil
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", opts.Backend)
	}
}
