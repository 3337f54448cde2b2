package runtime

import "fmt"

// TypeError: a null argument where non-null is required, an attribute
// type mismatch on an assertIsX check, or a duplicate insertion into a
// uniqueness-bearing collection.
type TypeError struct {
	Message string
	Err     error
}

func (e *TypeError) Error() string {
	if e.Err != nil {
		return fmt.Errorf("TypeError: %s: %w", e.Message, e.Err).Error()
	}
	return "TypeError: " + e.Message
}

func (e *TypeError) Unwrap() error { return e.Err }

func NewTypeError(format string, args ...any) error {
	return &TypeError{Message: fmt.Sprintf(format, args...)}
}

// WrapTypeError builds a TypeError around cause using %w, so
// errors.As can still recover a *TypeError from the chain and
// errors.Unwrap reaches cause.
func WrapTypeError(cause error, format string, args ...any) error {
	return &TypeError{Message: fmt.Sprintf(format, args...), Err: cause}
}

// RangeError: a numeric value outside its required range.
type RangeError struct {
	Message string
	Err     error
}

func (e *RangeError) Error() string {
	if e.Err != nil {
		return fmt.Errorf("RangeError: %s: %w", e.Message, e.Err).Error()
	}
	return "RangeError: " + e.Message
}

func (e *RangeError) Unwrap() error { return e.Err }

func NewRangeError(format string, args ...any) error {
	return &RangeError{Message: fmt.Sprintf(format, args...)}
}

func WrapRangeError(cause error, format string, args ...any) error {
	return &RangeError{Message: fmt.Sprintf(format, args...), Err: cause}
}

// StateError: an illegal state transition, e.g. a Sound event that
// doesn't apply from its current state, or play() before game.running.
type StateError struct {
	Message string
	Err     error
}

func (e *StateError) Error() string {
	if e.Err != nil {
		return fmt.Errorf("StateError: %s: %w", e.Message, e.Err).Error()
	}
	return "StateError: " + e.Message
}

func (e *StateError) Unwrap() error { return e.Err }

func NewStateError(format string, args ...any) error {
	return &StateError{Message: fmt.Sprintf(format, args...)}
}

func WrapStateError(cause error, format string, args ...any) error {
	return &StateError{Message: fmt.Sprintf(format, args...), Err: cause}
}
