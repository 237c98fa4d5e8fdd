package api

import (
	"errors"
	"fmt"
)

const InvalidJSONMessage = "Invalid JSON response from API"

var ErrResponse = errors.New("upstream response error")

// ResponseError is a transport or decoding failure talking to the upstream
// API. Code is 500 for transport failures and non-2xx answers and 400 for a
// body that is not JSON. Status holds the upstream HTTP status when there was one.
type ResponseError struct {
	URI     string
	Message string
	Code    int
	Status  int
	Err     error
}

func (e *ResponseError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

func (e *ResponseError) Is(target error) bool {
	return target == ErrResponse
}
