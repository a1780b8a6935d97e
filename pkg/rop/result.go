package rop

// Base is the outcome shared by every result kind: a status, an error value
// and an optional identifier. It is immutable once built.
//
// The base does not check that a failure carries a non-empty error or that a
// success carries an empty one. Result kinds that need that rule enforce it.
type Base struct {
	status Status
	err    Error
	id     string
}

// NewBase validates status and builds a Base. An empty id means no id.
func NewBase(status Status, err Error, id string) (Base, error) {
	if vErr := validateStatus(status); vErr != nil {
		return Base{}, vErr
	}

	return Base{
		status: status,
		err:    err,
		id:     id,
	}, nil
}

// validateStatus is the check every result constructor goes through.
func validateStatus(status Status) error {
	if !status.IsValid() {
		return invalidArgument("status", status, "must be success or failure")
	}
	return nil
}

func (b Base) Status() Status {
	return b.status
}

func (b Base) Err() Error {
	return b.err
}

// ID returns the identifier of the produced entity, or "" when there is none.
func (b Base) ID() string {
	return b.id
}

func (b Base) IsSuccess() bool {
	return b.status == Success
}

func (b Base) IsFailure() bool {
	return b.status == Failure
}

// Result is a Base carrying the value produced by a successful operation.
type Result[T any] struct {
	Base
	value T
}

func New[T any](status Status, err Error, id string, value T) (Result[T], error) {
	base, vErr := NewBase(status, err, id)
	if vErr != nil {
		return Result[T]{}, vErr
	}

	return Result[T]{Base: base, value: value}, nil
}

// MustNew is like New but panics when the arguments are invalid.
func MustNew[T any](status Status, err Error, id string, value T) Result[T] {
	r, vErr := New(status, err, id, value)
	if vErr != nil {
		panic(vErr)
	}
	return r
}

func Succeed[T any](value T, id string) Result[T] {
	return MustNew(Success, EmptyError, id, value)
}

func Fail[T any](err Error, id string) Result[T] {
	var zero T
	return MustNew(Failure, err, id, zero)
}

// FailFrom carries the error and id of a failed result onto a result of a
// different payload type. Anything but a failure is rejected.
func FailFrom[In, Out any](from Result[In]) (Result[Out], error) {
	if vErr := validateStatus(from.Status()); vErr != nil {
		return Result[Out]{}, vErr
	}
	if !from.IsFailure() {
		return Result[Out]{}, invalidArgument("from", from.Status(), "must be a failure")
	}
	return Fail[Out](from.Err(), from.ID()), nil
}

// Value returns the payload. It is the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Unwrap returns the payload on success and the error value on failure.
func (r Result[T]) Unwrap() (T, error) {
	if r.IsFailure() {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

func (r Result[T]) MustUnwrap() T {
	v, err := r.Unwrap()
	if err != nil {
		panic(err)
	}
	return v
}
