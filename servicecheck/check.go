package servicecheck

import "context"

// Check reports the health of a single managed component.  A nil error
// means the component is healthy.  Implementations receive the caller's
// context but this package never imposes deadlines of its own.
type Check interface {
	Check(ctx context.Context) error
}

// CheckFunc is a function type that implements Check.
type CheckFunc func(ctx context.Context) error

func (f CheckFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// AlwaysHealthy is a stub Check that reports success for any context.
// It performs no I/O and has no side effects.  It stands in for real
// validation logic, such as verifying that a broker process responds,
// until that logic exists.
var AlwaysHealthy Check = CheckFunc(func(context.Context) error {
	return nil
})
