package systema

import (
	"io"

	"order-hub/core/reconcile"
)

// Adapter implements reconcile.Adapter for System A JSON exports.
type Adapter struct {
	objectName string
}

// NewAdapter creates an adapter reading the named export.
func NewAdapter(objectName string) *Adapter {
	return &Adapter{objectName: objectName}
}

// Name returns the adapter name.
func (a *Adapter) Name() string {
	return "system_a"
}

// System returns reconcile.SystemA.
func (a *Adapter) System() reconcile.SourceSystem {
	return reconcile.SystemA
}

// ObjectName returns the export name.
func (a *Adapter) ObjectName() string {
	return a.objectName
}

// Decode reads the export and normalizes every record.
func (a *Adapter) Decode(r io.Reader) ([]reconcile.UnifiedOrder, error) {
	records, err := Read(r)
	if err != nil {
		return nil, err
	}

	orders := make([]reconcile.UnifiedOrder, 0, len(records))
	for _, rec := range records {
		orders = append(orders, Normalize(rec))
	}
	return orders, nil
}
