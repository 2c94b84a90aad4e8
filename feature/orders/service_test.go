package orders

import (
	"testing"
	"time"

	"order-hub/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetAll() []reconcile.UnifiedOrder {
	return m.Called().Get(0).([]reconcile.UnifiedOrder)
}

func (m *mockStore) GetByID(id string) (reconcile.UnifiedOrder, bool) {
	args := m.Called(id)
	return args.Get(0).(reconcile.UnifiedOrder), args.Bool(1)
}

func (m *mockStore) SearchByStatus(status string) []reconcile.UnifiedOrder {
	return m.Called(status).Get(0).([]reconcile.UnifiedOrder)
}

func (m *mockStore) Snapshot() *reconcile.Snapshot {
	return m.Called().Get(0).(*reconcile.Snapshot)
}

func TestService_Get(t *testing.T) {
	store := new(mockStore)
	store.On("GetByID", "A1").Return(reconcile.UnifiedOrder{OrderID: "A1"}, true)
	store.On("GetByID", "zz").Return(reconcile.UnifiedOrder{}, false)
	svc := NewService(store, nil)

	order, err := svc.Get("A1")
	require.NoError(t, err)
	assert.Equal(t, "A1", order.OrderID)

	_, err = svc.Get("zz")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get("  ")
	assert.ErrorIs(t, err, ErrInvalidID)

	store.AssertNotCalled(t, "GetByID", "  ")
	store.AssertExpectations(t)
}

func TestService_Search(t *testing.T) {
	store := new(mockStore)
	store.On("SearchByStatus", "pending").Return([]reconcile.UnifiedOrder{{OrderID: "A1"}})
	store.On("SearchByStatus", "").Return([]reconcile.UnifiedOrder{{OrderID: "A1"}, {OrderID: "B1"}})
	svc := NewService(store, nil)

	got, err := svc.Search("pending")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.Search("")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = svc.Search("Refunded")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	store.AssertNotCalled(t, "SearchByStatus", "Refunded")
}

func TestService_Health(t *testing.T) {
	store := new(mockStore)
	store.On("Snapshot").Return(&reconcile.Snapshot{Orders: make([]reconcile.UnifiedOrder, 3)})
	svc := NewService(store, nil)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600)) }

	h := svc.Health()
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, 3, h.Orders)
	assert.Equal(t, time.UTC, h.Timestamp.Location())
	assert.Equal(t, 11, h.Timestamp.Hour())
}

func TestValidStatuses(t *testing.T) {
	assert.Equal(t, []string{"Pending", "Processing", "Shipped", "Completed", "Cancelled", "Unknown"}, ValidStatuses())
}
