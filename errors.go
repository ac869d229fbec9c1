package intervalset

import "errors"

// ErrEmptySet is returned by First and Last when the set holds no intervals.
var ErrEmptySet = errors.New("intervalset: empty set")

// ErrIllegalInterval is wrapped by the panic payload raised when an
// operation receives a finite interval whose lower endpoint is not below its
// upper endpoint; the payload names the offending interval and matches
// ErrIllegalInterval under errors.Is.
var ErrIllegalInterval = errors.New("intervalset: illegal interval")

// ErrConcurrentModification is the panic payload raised by a fail-fast
// iterator that detects a structural modification of the set between steps.
var ErrConcurrentModification = errors.New("intervalset: concurrent modification")

// ErrIteratorState is the panic payload raised when an iterator's Remove is
// called before Next.  Iterator.Remove also raises it when called twice for
// the same element; ConcurrentIterator.Remove treats a repeat as a no-op.
var ErrIteratorState = errors.New("intervalset: Remove called out of sequence")

// ErrUnsupportedOperation is the panic payload of the sub-view navigation
// methods, which are not implemented.
var ErrUnsupportedOperation = errors.New("intervalset: unsupported operation")
