package domain

import (
	"errors"
	"strings"
)

// ErrValidation is matched by every ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError reports a single rejected input field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Invalid builds a ValidationError for field.
func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// ValidationMessage renders one or more validation failures the way clients
// see them.
func ValidationMessage(err error) string {
	var msgs []string
	for _, e := range unwrapAll(err) {
		var ve *ValidationError
		if errors.As(e, &ve) {
			msgs = append(msgs, ve.Msg)
		}
	}
	if len(msgs) == 0 {
		return "Invalid input data."
	}
	return "Invalid input data. " + strings.Join(msgs, ". ")
}

// unwrapAll flattens nested errors.Join trees.
func unwrapAll(err error) []error {
	j, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var out []error
	for _, e := range j.Unwrap() {
		out = append(out, unwrapAll(e)...)
	}
	return out
}
