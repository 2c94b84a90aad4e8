package metrics

import (
	"net/http"
	"time"

	"order-hub/core/reconcile"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "order_hub"

// Registry holds the order hub collectors on a private prometheus registry.
// It implements reconcile.Observer.
type Registry struct {
	reg *prometheus.Registry

	Orders         prometheus.Gauge
	SourceOrders   *prometheus.GaugeVec
	SourceFound    *prometheus.GaugeVec
	UnknownStatus  *prometheus.GaugeVec
	UnparsedDates  *prometheus.GaugeVec
	DuplicateIDs   prometheus.Gauge
	Loads          prometheus.Counter
	LoadFailures   prometheus.Counter
	LoadDuration   prometheus.Histogram
	LastLoadSecond prometheus.Gauge
}

// NewRegistry creates and registers all collectors.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	orders := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "orders",
		Help:      "Number of orders in the current snapshot.",
	})
	sourceOrders := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "source_orders",
		Help:      "Number of orders contributed by each source system.",
	}, []string{"source_system"})
	sourceFound := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "source_found",
		Help:      "Whether the source export existed during the last load (1) or not (0).",
	}, []string{"source_system"})
	unknown := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "source_unknown_status_orders",
		Help:      "Orders whose source status code had no canonical mapping.",
	}, []string{"source_system"})
	unparsed := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "source_unparsed_date_orders",
		Help:      "Orders whose raw date could not be normalized.",
	}, []string{"source_system"})
	dupes := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "duplicate_order_ids",
		Help:      "Order ids occurring more than once in the current snapshot.",
	})
	loads := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loads_total",
		Help:      "Successful snapshot loads.",
	})
	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "load_failures_total",
		Help:      "Snapshot loads aborted by a source error.",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "load_duration_seconds",
		Help:      "Time spent reading and reconciling all sources.",
		Buckets:   prometheus.DefBuckets,
	})
	lastLoad := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_load_timestamp_seconds",
		Help:      "Unix time the current snapshot was built.",
	})

	r.MustRegister(orders, sourceOrders, sourceFound, unknown, unparsed, dupes, loads, failures, duration, lastLoad)
	return &Registry{
		reg:            r,
		Orders:         orders,
		SourceOrders:   sourceOrders,
		SourceFound:    sourceFound,
		UnknownStatus:  unknown,
		UnparsedDates:  unparsed,
		DuplicateIDs:   dupes,
		Loads:          loads,
		LoadFailures:   failures,
		LoadDuration:   duration,
		LastLoadSecond: lastLoad,
	}
}

// ObserveLoad implements reconcile.Observer.
func (r *Registry) ObserveLoad(snap *reconcile.Snapshot, elapsed time.Duration) {
	r.Loads.Inc()
	r.LoadDuration.Observe(elapsed.Seconds())
	r.Orders.Set(float64(snap.Len()))
	r.DuplicateIDs.Set(float64(len(snap.DuplicateIDs)))
	r.LastLoadSecond.Set(float64(snap.Built.Unix()))

	for _, s := range snap.Sources {
		system := string(s.System)
		r.SourceOrders.WithLabelValues(system).Set(float64(s.Records))
		r.UnknownStatus.WithLabelValues(system).Set(float64(s.UnknownStatus))
		r.UnparsedDates.WithLabelValues(system).Set(float64(s.UnparsedDates))
		found := 0.0
		if s.Found {
			found = 1
		}
		r.SourceFound.WithLabelValues(system).Set(found)
	}
}

// ObserveLoadFailure implements reconcile.Observer.
func (r *Registry) ObserveLoadFailure(error) {
	r.LoadFailures.Inc()
}

// Handler returns the HTTP handler exposing the registry in text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
