package maybe

import (
	"fmt"
	"reflect"

	"github.com/zeebo/errs"
)

// Error is the class of errors raised by invalid use of a Maybe.
var Error = errs.Class("maybe")

var (
	// ErrNoValue is returned when a value is extracted from None.
	ErrNoValue = Error.New("no value present")
	// ErrNilValue is the panic value of Some called with a nil reference.
	ErrNilValue = Error.New("some cannot hold a nil value")
)

// Maybe holds either exactly one value (Some) or nothing (None).
// The zero value is None.
type Maybe[T any] struct {
	value   T
	present bool
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Some wraps v. It panics with ErrNilValue if v is a nil reference.
func Some[T any](v T) Maybe[T] {
	if IsNil(v) {
		panic(ErrNilValue)
	}
	return Maybe[T]{value: v, present: true}
}

// ToMaybe lifts v into a Maybe. Nil references become None.
func ToMaybe[T any](v T) Maybe[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Maybe[T]{value: v, present: true}
}

func (m Maybe[T]) IsSome() bool {
	return m.present
}

func (m Maybe[T]) IsNone() bool {
	return !m.present
}

// Get returns the value, or ErrNoValue when m is None.
func (m Maybe[T]) Get() (T, error) {
	if !m.present {
		var zero T
		return zero, ErrNoValue
	}
	return m.value, nil
}

func (m Maybe[T]) MustGet() T {
	if !m.present {
		panic(ErrNoValue)
	}
	return m.value
}

func (m Maybe[T]) OrElse(fallback T) T {
	if m.present {
		return m.value
	}
	return fallback
}

// OrElseGet calls produce only when m is None.
func (m Maybe[T]) OrElseGet(produce func() T) T {
	if m.present {
		return m.value
	}
	return produce()
}

func (m Maybe[T]) Match(onSome func(T), onNone func()) {
	if m.present {
		if onSome != nil {
			onSome(m.value)
		}
		return
	}
	if onNone != nil {
		onNone()
	}
}

// Equal compares two Maybe values with eq. Two Nones are always equal.
func (m Maybe[T]) Equal(other Maybe[T], eq func(a, b T) bool) bool {
	if m.present != other.present {
		return false
	}
	if !m.present {
		return true
	}
	return eq(m.value, other.value)
}

func (m Maybe[T]) String() string {
	if !m.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", m.value)
}

// IsNil reports whether v is nil or a nil pointer, interface, map, slice,
// chan or func.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
