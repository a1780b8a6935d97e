package rop

import (
	"fmt"

	"github.com/zeebo/errs"
)

// ValidationError is the class of errors returned when a result is built
// from invalid arguments. These are programmer errors, not domain failures.
var ValidationError = errs.Class("rop validation")

// ArgumentError names the constructor parameter that was rejected.
type ArgumentError struct {
	Param  string
	Value  any
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %q (%v): %s", e.Param, e.Value, e.Reason)
}

func invalidArgument(param string, value any, reason string) error {
	return ValidationError.Wrap(&ArgumentError{Param: param, Value: value, Reason: reason})
}
