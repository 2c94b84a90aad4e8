package orders

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"order-hub/core/reconcile"

	"go.uber.org/zap"
)

var (
	// ErrInvalidID is returned for a blank order id.
	ErrInvalidID = errors.New("order id is required")
	// ErrNotFound is returned when no order has the requested id.
	ErrNotFound = errors.New("order not found")
	// ErrInvalidStatus is returned for a status that is not a canonical token.
	ErrInvalidStatus = errors.New("invalid status")
)

// Store is the read side of the reconciliation engine.
type Store interface {
	GetAll() []reconcile.UnifiedOrder
	GetByID(id string) (reconcile.UnifiedOrder, bool)
	SearchByStatus(status string) []reconcile.UnifiedOrder
	Snapshot() *reconcile.Snapshot
}

// Service answers order queries from the current snapshot.
type Service struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new orders service.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// List returns every order in snapshot order.
func (s *Service) List() []reconcile.UnifiedOrder {
	return s.store.GetAll()
}

// Get returns the order with the given id (case-insensitive, first match).
func (s *Service) Get(id string) (reconcile.UnifiedOrder, error) {
	if strings.TrimSpace(id) == "" {
		return reconcile.UnifiedOrder{}, ErrInvalidID
	}
	order, ok := s.store.GetByID(id)
	if !ok {
		return reconcile.UnifiedOrder{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return order, nil
}

// Search returns the orders with the given status. A blank status returns all
// orders; anything other than a canonical token is rejected.
func (s *Service) Search(status string) ([]reconcile.UnifiedOrder, error) {
	if strings.TrimSpace(status) != "" {
		if _, ok := reconcile.ParseStatus(status); !ok {
			return nil, fmt.Errorf("%w '%s'", ErrInvalidStatus, status)
		}
	}
	return s.store.SearchByStatus(status), nil
}

// Health reports liveness and the size of the current snapshot.
func (s *Service) Health() HealthResponse {
	return HealthResponse{
		Status:    "ok",
		Timestamp: s.now().UTC(),
		Orders:    s.store.Snapshot().Len(),
	}
}

// ValidStatuses returns the canonical tokens accepted by Search.
func ValidStatuses() []string {
	out := make([]string, 0, len(reconcile.Statuses))
	for _, st := range reconcile.Statuses {
		out = append(out, string(st))
	}
	return out
}
