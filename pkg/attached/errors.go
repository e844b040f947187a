package attached

import (
	"errors"
	"fmt"
)

// ErrInvalidOwner is returned when an owner cannot be used as a store key.
// Owners must be non-nil pointers to non-zero-sized values.
var ErrInvalidOwner = errors.New("invalid owner")

// ErrNotFound is returned by typed reads when the property has no value.
var ErrNotFound = errors.New("property not found")

// ErrNotNotifier is returned when a DataContext value was expected to support
// property change notification but does not.
var ErrNotNotifier = errors.New("value does not support property change notification")

// TypeError reports a stored value read back as the wrong type.
type TypeError struct {
	Property string
	Want     string
	Value    any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("property %q holds %T, want %s", e.Property, e.Value, e.Want)
}

// CapabilityError reports a DataContext value lacking the Notifier capability.
type CapabilityError struct {
	Value any
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("data context of type %T: %s", e.Value, ErrNotNotifier)
}

func (e *CapabilityError) Unwrap() error {
	return ErrNotNotifier
}
