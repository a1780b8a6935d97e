package rop

import (
	"errors"
	"fmt"

	"github.com/ib-77/craftingtools/pkg/maybe"
)

const genericCode = "error"

// Error describes a domain failure. The zero value is EmptyError and means
// "no error". Two errors with the same code and message are equal.
type Error struct {
	Code    string
	Message string
}

// EmptyError is the canonical "no error" value.
var EmptyError = Error{}

func NewError(code string, format string, args ...any) Error {
	return Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorFrom adapts a Go error to an Error. A nil error becomes EmptyError.
func ErrorFrom(err error) Error {
	if maybe.IsNil(err) {
		return EmptyError
	}

	var e Error
	if errors.As(err, &e) {
		return e
	}

	return Error{Code: genericCode, Message: err.Error()}
}

func (e Error) IsEmpty() bool {
	return e == EmptyError
}

func (e Error) Error() string {
	if e.IsEmpty() {
		return ""
	}
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}
