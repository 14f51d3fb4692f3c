package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is matches both wrapped causes and marks attached via Mark. Marks are not
// part of the Unwrap chain, so the standard library errors.Is cannot see
// them; classification of marked errors must go through this.
func Is(err error, ref error) bool {
	return cr.Is(err, ref)
}
