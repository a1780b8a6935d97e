package rop

// StatusProvider is implemented by every result kind.
type StatusProvider interface {
	// Status returns Success or Failure, never Unknown
	Status() Status
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

// WithError adds the error value and the optional identifier
type WithError interface {
	StatusProvider
	// Err returns EmptyError unless the operation reported one
	Err() Error
	// ID returns the identifier or an empty string
	ID() string
}

// ValueProvider is a result that carries a payload
type ValueProvider[T any] interface {
	WithError
	// Value returns the successful result value
	Value() T
}

var (
	_ WithError          = Base{}
	_ ValueProvider[int] = Result[int]{}
)
