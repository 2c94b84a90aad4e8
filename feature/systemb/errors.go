package systemb

import (
	"errors"
	"fmt"
)

// ErrMalformed is wrapped by every error caused by invalid export content.
var ErrMalformed = errors.New("malformed system B export")

// RowError reports a value in a data row that could not be converted.
type RowError struct {
	// Row is the 1-indexed line of the record in the file (the header is row 1).
	Row int
	// Column is the header name of the offending field.
	Column string
	// Value is the raw field value.
	Value string
	// Err is the conversion error.
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, column '%s': invalid value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

// Unwrap exposes both ErrMalformed and the conversion error.
func (e *RowError) Unwrap() []error {
	return []error{ErrMalformed, e.Err}
}
