package internal

import "github.com/pkg/errors"

// Threading errors through the recursive QuickHull and the worker goroutines
// would add a lot of noise to the code. Instead, we use panics for broken
// invariants and bad input, and the public API recovers to convert to an
// error.

type HullError error

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(HullError(errors.Errorf(format, args...)))
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
