package dto

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidDTO = errors.New("invalid dto")

// InvalidDTOError reports the first field of a record that failed validation.
// Code is 400 for a structural problem in the record itself and 422 when the
// record is rejected because one of its nested records is invalid.
type InvalidDTOError struct {
	Entity  string
	Field   string
	Message string
	Code    int
	Err     error
}

func (e *InvalidDTOError) Error() string {
	return e.Message
}

func (e *InvalidDTOError) Unwrap() error {
	return e.Err
}

func (e *InvalidDTOError) Is(target error) bool {
	return target == ErrInvalidDTO
}

func missingField(entity, field string) *InvalidDTOError {
	return &InvalidDTOError{
		Entity:  entity,
		Field:   field,
		Message: fmt.Sprintf("missing %q in %s", field, entity),
		Code:    http.StatusBadRequest,
	}
}

func invalidField(entity, field, reason string) *InvalidDTOError {
	return &InvalidDTOError{
		Entity:  entity,
		Field:   field,
		Message: fmt.Sprintf("field %q in %s %s", field, entity, reason),
		Code:    http.StatusBadRequest,
	}
}

func ruleFailed(entity, field string, err error) *InvalidDTOError {
	reason := "is invalid"

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch fe := verrs[0]; fe.Tag() {
		case "required":
			reason = "must not be empty"
		case "oneof":
			reason = fmt.Sprintf("must be one of [%s]", fe.Param())
		case "datetime":
			reason = fmt.Sprintf("must match layout %s", fe.Param())
		default:
			reason = fmt.Sprintf("failed %q rule", fe.Tag())
		}
	}

	e := invalidField(entity, field, reason)
	e.Err = err
	return e
}

func nestedInvalid(entity, field string, inner error) *InvalidDTOError {
	return &InvalidDTOError{
		Entity:  entity,
		Field:   field,
		Message: fmt.Sprintf("invalid %s: %s: %v", entity, field, inner),
		Code:    http.StatusUnprocessableEntity,
		Err:     inner,
	}
}
