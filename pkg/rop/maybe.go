package rop

import "github.com/ib-77/craftingtools/pkg/maybe"

// FromMaybe moves an optional value onto the railway: Some becomes a success,
// None becomes a failure carrying err.
func FromMaybe[T any](m maybe.Maybe[T], err Error, id string) Result[T] {
	v, getErr := m.Get()
	if getErr != nil {
		return Fail[T](err, id)
	}
	return Succeed(v, id)
}

// ToMaybe drops the failure details of r.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	if r.IsFailure() {
		return maybe.None[T]()
	}
	return maybe.ToMaybe(r.Value())
}
