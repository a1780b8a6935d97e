package profession

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/ib-77/craftingtools/pkg/rop"
)

const (
	CodeInvalidID         = "invalid_id"
	CodeInvalidName       = "invalid_name"
	CodeInvalidParameters = "invalid_parameters"

	MaxNameLength = 64
)

// Profession is a crafting profession, e.g. Cook or Blacksmith.
type Profession struct {
	ID   uuid.UUID
	Name string
}

type parameters struct {
	ID   string `validate:"required"`
	Name string `validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		p := sl.Current().Interface().(parameters)
		if utf8.RuneCountInString(p.Name) > MaxNameLength {
			sl.ReportError(p.Name, "Name", "Name", "max", strconv.Itoa(MaxNameLength))
		}
	}, parameters{})
	return v
}

// FromParameters builds a Profession from raw input. Invalid input is
// reported as a failed result, never as a panic.
func FromParameters(id, name string) rop.Result[Profession] {
	p := parameters{
		ID:   strings.TrimSpace(id),
		Name: strings.TrimSpace(name),
	}

	var failures []rop.Error
	if err := validate.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return rop.Fail[Profession](rop.ErrorFrom(err), p.ID)
		}
		for _, fe := range fieldErrs {
			failures = append(failures, fieldFailure(fe))
		}
	}

	var parsed uuid.UUID
	if !hasCode(failures, CodeInvalidID) {
		var err error
		parsed, err = uuid.Parse(p.ID)
		switch {
		case err != nil:
			failures = append(failures, rop.NewError(CodeInvalidID, "id %q is not a uuid", p.ID))
		case parsed == uuid.Nil:
			failures = append(failures, rop.NewError(CodeInvalidID, "id must not be the nil uuid"))
		}
	}

	switch len(failures) {
	case 0:
		return rop.Succeed(Profession{ID: parsed, Name: p.Name}, parsed.String())
	case 1:
		return rop.Fail[Profession](failures[0], p.ID)
	default:
		var merr *multierror.Error
		for _, f := range failures {
			merr = multierror.Append(merr, f)
		}
		merr.ErrorFormat = joinMessages
		return rop.Fail[Profession](rop.NewError(CodeInvalidParameters, "%s", merr.Error()), p.ID)
	}
}

func fieldFailure(fe validator.FieldError) rop.Error {
	if fe.Field() == "ID" {
		return rop.NewError(CodeInvalidID, "id is required")
	}
	if fe.Tag() == "max" {
		return rop.NewError(CodeInvalidName, "name must be at most %d characters", MaxNameLength)
	}
	return rop.NewError(CodeInvalidName, "name is required")
}

func hasCode(errs []rop.Error, code string) bool {
	for _, e := range errs {
		if e.Code == code {
			return true
		}
	}
	return false
}

func joinMessages(es []error) string {
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}
