package reconcile

import "io"

// Adapter defines the interface for source-specific ingestion.
// Each adapter knows how to parse one upstream export format and normalize
// its records into the canonical schema.
type Adapter interface {
	// Name returns a short unique name for logs (e.g., "system_a").
	Name() string

	// System returns the source system stamped on every normalized order.
	System() SourceSystem

	// ObjectName returns the export name passed to the Fetcher.
	ObjectName() string

	// Decode parses the export and returns its records normalized, in file order.
	// A syntactically malformed export must return an error; unmappable status
	// codes and unparseable dates are not errors.
	Decode(r io.Reader) ([]UnifiedOrder, error)
}
