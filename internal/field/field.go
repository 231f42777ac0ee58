// Package field provides typed attribute slots that validate every assignment.
package field

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrTypeMismatch is wrapped by every *TypeError.
var ErrTypeMismatch = errors.New("type mismatch")

// TypeError is returned when a value of the wrong type is assigned to a Field.
type TypeError struct {
	Expected reflect.Type
	Actual   reflect.Type
	Field    string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("expected an instance of `%s` for attribute `%s`, got %s instead",
		typeName(e.Expected), e.Field, typeName(e.Actual))
}

// Unwrap lets callers match with errors.Is(err, ErrTypeMismatch).
func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}

// Store is the per-instance storage that fields read from and write to.
// The owner allocates it; a nil Store can be read but not written.
type Store map[string]any

// Field is a named value slot that only accepts values of type T.
type Field[T any] struct {
	typ  reflect.Type
	name string
}

// New binds a field of type T to the attribute name.
func New[T any](name string) Field[T] {
	return Field[T]{
		typ:  reflect.TypeFor[T](),
		name: name,
	}
}

// Name returns the attribute name the field is bound to.
func (f Field[T]) Name() string {
	return f.name
}

// Type returns the accepted type.
func (f Field[T]) Type() reflect.Type {
	return f.typ
}

// Get returns the stored value, or the zero T and false if it was never set.
func (f Field[T]) Get(s Store) (T, bool) {
	var zero T

	raw, ok := s[f.name]
	if !ok {
		return zero, false
	}

	v, ok := raw.(T)
	if !ok {
		return zero, false
	}

	return v, true
}

// Set stores value after checking that it is a T.
// Nothing is written when the check fails.
func (f Field[T]) Set(s Store, value any) error {
	v, ok := value.(T)
	if !ok {
		return &TypeError{
			Expected: f.typ,
			Actual:   reflect.TypeOf(value),
			Field:    f.name,
		}
	}

	s[f.name] = v

	return nil
}

// MustSet is like Set but panics on a type mismatch.
func (f Field[T]) MustSet(s Store, value any) {
	if err := f.Set(s, value); err != nil {
		panic(err)
	}
}
