package leveldata

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFile is returned when the level file does not exist.
	ErrMissingFile = errors.New("level file not found")
	// ErrMalformedDocument is returned when the document cannot be parsed.
	ErrMalformedDocument = errors.New("malformed level document")
	// ErrMissingOrInvalidField is returned when a record has an absent or
	// ill-typed field.
	ErrMissingOrInvalidField = errors.New("missing or invalid level field")
)

// FieldError pinpoints the offending field, e.g. "enemies[2].size.x".
type FieldError struct {
	Source string
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Source, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Source, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrMissingOrInvalidField
}
