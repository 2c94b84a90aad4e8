package reconcile

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// SourceStats summarizes what one source contributed to a snapshot.
type SourceStats struct {
	// System is the source system.
	System SourceSystem `json:"source_system"`

	// Location is where the export was read from.
	Location string `json:"location"`

	// Found is false when the export did not exist.
	Found bool `json:"found"`

	// Records is the number of orders contributed.
	Records int `json:"records"`

	// UnknownStatus counts orders whose source status code had no mapping.
	UnknownStatus int `json:"unknown_status"`

	// UnparsedDates counts orders whose raw date was passed through unchanged.
	UnparsedDates int `json:"unparsed_dates"`
}

// Snapshot is an immutable, sorted view of all unified orders.
// It must not be modified after it has been published.
type Snapshot struct {
	// Orders is sorted ascending by OrderDate, stable in source order.
	Orders []UnifiedOrder `json:"orders"`

	// Sources holds per-source statistics in adapter order.
	Sources []SourceStats `json:"sources"`

	// DuplicateIDs lists order ids (case-insensitive) that occur more than once.
	// Lookups resolve them by first match in Orders.
	DuplicateIDs []string `json:"duplicate_ids"`

	// Built is the time the snapshot was assembled.
	Built time.Time `json:"built"`
}

// Len returns the number of orders in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Orders)
}

// buildSnapshot concatenates per-source orders in adapter order and sorts them.
func buildSnapshot(parts [][]UnifiedOrder, stats []SourceStats, built time.Time) *Snapshot {
	total := 0
	for _, p := range parts {
		total += len(p)
	}

	orders := make([]UnifiedOrder, 0, total)
	for i, p := range parts {
		orders = append(orders, p...)
		stats[i].Records = len(p)
		for _, o := range p {
			if o.Status == StatusUnknown {
				stats[i].UnknownStatus++
			}
			if !IsCanonicalDate(o.OrderDate) {
				stats[i].UnparsedDates++
			}
		}
	}

	// Plain string ordering; raw passthrough dates interleave by their raw value.
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate < orders[j].OrderDate
	})

	return &Snapshot{
		Orders:       orders,
		Sources:      stats,
		DuplicateIDs: findDuplicateIDs(orders),
		Built:        built,
	}
}

// findDuplicateIDs returns ids seen more than once, in first-seen order,
// using the spelling of the first occurrence.
func findDuplicateIDs(orders []UnifiedOrder) []string {
	seen := make(map[string]int, len(orders))
	first := make(map[string]string, len(orders))
	var dupes []string

	for _, o := range orders {
		if o.OrderID == "" {
			continue
		}
		key := strings.ToLower(o.OrderID)
		seen[key]++
		if seen[key] == 1 {
			first[key] = o.OrderID
		}
		if seen[key] == 2 {
			dupes = append(dupes, first[key])
		}
	}
	return dupes
}

// String implements fmt.Stringer for log output.
func (s SourceStats) String() string {
	return fmt.Sprintf("%s(found=%t records=%d unknown_status=%d unparsed_dates=%d)",
		s.System, s.Found, s.Records, s.UnknownStatus, s.UnparsedDates)
}
