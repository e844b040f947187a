package attached

import (
	"fmt"
	"reflect"
)

// Key is a typed descriptor for an attached property.
//
//	var Theme = attached.NewInheritedKey[string]("Theme")
//
//	theme, err := Theme.Get(props, widget)
type Key[T any] struct {
	name     string
	inherits bool
}

// NewKey declares a property read directly from its owner.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// NewInheritedKey declares a property read through the inheritance chain.
func NewInheritedKey[T any](name string) Key[T] {
	return Key[T]{name: name, inherits: true}
}

// Name returns the property name.
func (k Key[T]) Name() string {
	return k.name
}

// Inherits reports whether reads walk the inheritance chain.
func (k Key[T]) Inherits() bool {
	return k.inherits
}

// Get reads the property on owner. It returns ErrNotFound when no value is
// set and a *TypeError when the stored value is not a T.
func (k Key[T]) Get(p *Properties, owner any) (T, error) {
	var (
		v  any
		ok bool
	)
	if k.inherits {
		v, ok = p.GetInheritedValue(owner, k.name)
	} else {
		v, ok = p.GetValue(owner, k.name)
	}
	return cast[T](k.name, v, ok)
}

// GetOr reads the property on owner and returns fallback on any error.
func (k Key[T]) GetOr(p *Properties, owner any, fallback T) T {
	v, err := k.Get(p, owner)
	if err != nil {
		return fallback
	}
	return v
}

// Set writes the property on owner.
func (k Key[T]) Set(p *Properties, owner any, value T) error {
	return p.SetValue(owner, k.name, value)
}

// SetNotify writes the property on owner and calls onChanged on change.
func (k Key[T]) SetNotify(p *Properties, owner any, value T, onChanged ChangeHandler) error {
	return p.SetValueNotify(owner, k.name, value, onChanged)
}

// Clear removes the property from owner.
func (k Key[T]) Clear(p *Properties, owner any) bool {
	return p.ClearValue(owner, k.name)
}

// GetAs reads name directly from owner as a T.
func GetAs[T any](p *Properties, owner any, name string) (T, error) {
	v, ok := p.GetValue(owner, name)
	return cast[T](name, v, ok)
}

// GetInheritedAs reads name through the inheritance chain as a T.
func GetInheritedAs[T any](p *Properties, visual any, name string) (T, error) {
	v, ok := p.GetInheritedValue(visual, name)
	return cast[T](name, v, ok)
}

func cast[T any](name string, v any, ok bool) (T, error) {
	var zero T
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if v == nil {
		// An explicit nil is a valid value for pointer and interface types.
		switch reflect.TypeFor[T]().Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return zero, nil
		}
		return zero, &TypeError{Property: name, Want: reflect.TypeFor[T]().String(), Value: v}
	}
	t, isT := v.(T)
	if !isT {
		return zero, &TypeError{Property: name, Want: reflect.TypeFor[T]().String(), Value: v}
	}
	return t, nil
}
