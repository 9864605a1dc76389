// Package pkg contains standalone utility functions that do not depend on
// anything except themselves.
package pkg

import (
	"fmt"
)

// Panicf functions like printf, but for constructing a string sent to panic.
// It is used to report broken caller preconditions, such as dereferencing an
// end iterator. Do not use if you think that fmt.Sprintf would also panic.
func Panicf(msg string, args ...interface{}) {
	s := fmt.Sprintf(msg, args...)
	panic(s)
}
