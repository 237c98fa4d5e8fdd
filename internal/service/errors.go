package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	ErrParsing = errors.New("parsing failed")

	// ErrEmptyResult is the cause of a ParsingError when upstream returned
	// an empty collection.
	ErrEmptyResult = errors.New("upstream returned no items")
)

// ParsingError wraps whatever stopped one parse operation: a transport
// failure, an invalid payload or a storage error. ID is the upstream
// identifier of the entity being parsed, empty for collection-level failures.
type ParsingError struct {
	Entity string
	ID     string
	Err    error
}

func (e *ParsingError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("failed to parse %s: %v", e.Entity, e.Err)
	}
	return fmt.Sprintf("failed to parse %s %s: %v", e.Entity, e.ID, e.Err)
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}

func (e *ParsingError) Is(target error) bool {
	return target == ErrParsing
}

func fail(logger zerolog.Logger, entity, id string, err error) error {
	logger.Error().
		Err(err).
		Str("entity", entity).
		Str("id", id).
		Msg("parsing failed")
	return &ParsingError{Entity: entity, ID: id, Err: err}
}
