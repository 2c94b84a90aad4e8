package systema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformed is wrapped by every error caused by invalid export content.
var ErrMalformed = errors.New("malformed system A export")

// Read parses a System A export: a JSON array of order objects.
// A top-level null is treated as an empty export.
func Read(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)

	var records []Record
	if err := dec.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	// Reject trailing content after the array
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level array", ErrMalformed)
	}

	if records == nil {
		records = []Record{}
	}
	return records, nil
}
