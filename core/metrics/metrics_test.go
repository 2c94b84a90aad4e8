package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"order-hub/core/reconcile"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *reconcile.Snapshot {
	return &reconcile.Snapshot{
		Orders: make([]reconcile.UnifiedOrder, 5),
		Sources: []reconcile.SourceStats{
			{System: reconcile.SystemA, Found: false},
			{System: reconcile.SystemB, Found: true, Records: 5, UnknownStatus: 2, UnparsedDates: 1},
		},
		DuplicateIDs: []string{"B1"},
		Built:        time.Unix(1700000000, 0),
	}
}

func TestRegistry_ObserveLoad(t *testing.T) {
	r := NewRegistry()
	r.ObserveLoad(testSnapshot(), 250*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.Loads))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.Orders))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.DuplicateIDs))
	assert.Equal(t, 1700000000.0, testutil.ToFloat64(r.LastLoadSecond))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.SourceFound.WithLabelValues("SystemA")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.SourceFound.WithLabelValues("SystemB")))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.SourceOrders.WithLabelValues("SystemB")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.UnknownStatus.WithLabelValues("SystemB")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.UnparsedDates.WithLabelValues("SystemB")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.LoadDuration))
}

func TestRegistry_ObserveLoadFailure(t *testing.T) {
	r := NewRegistry()
	r.ObserveLoadFailure(errors.New("boom"))
	r.ObserveLoadFailure(errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.LoadFailures))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.Loads))
}

func TestRegistry_Handler(t *testing.T) {
	r := NewRegistry()
	r.ObserveLoad(testSnapshot(), time.Second)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), "order_hub_orders 5")
	assert.Contains(t, string(body), `order_hub_source_orders{source_system="SystemB"} 5`)
}
