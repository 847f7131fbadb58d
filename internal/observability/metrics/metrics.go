package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	analytics "ispdesk/internal/analytics/domain"
	catalog "ispdesk/internal/catalog/domain"
	clients "ispdesk/internal/clients/domain"
)

const metricPrefix = "ispdesk_"

// Metrics bundles desk instrumentation.
type Metrics struct {
	ClientsByClass   *prometheus.GaugeVec
	ActiveClients    prometheus.Gauge
	ServicesByKind   *prometheus.GaugeVec
	TotalRevenue     prometheus.Gauge
	AverageBalance   prometheus.Gauge
	PaymentsTotal    prometheus.Counter
	SnapshotDuration prometheus.Histogram
}

// New constructs and registers metrics on the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith constructs metrics and registers them on reg.
func NewWith(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ClientsByClass: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metricPrefix + "clients",
				Help: "Registered clients by account class",
			},
			[]string{"class"},
		),
		ActiveClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "active_clients",
			Help: "Clients with the active flag set",
		}),
		ServicesByKind: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metricPrefix + "service_subscriptions",
				Help: "Service subscriptions by offering kind",
			},
			[]string{"kind"},
		),
		TotalRevenue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "revenue_total",
			Help: "Sum of all payment amounts across all clients",
		}),
		AverageBalance: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "average_balance",
			Help: "Average client balance",
		}),
		PaymentsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "payments_total",
			Help: "Total payment records appended",
		}),
		SnapshotDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    metricPrefix + "snapshot_duration_seconds",
			Help:    "Statistics snapshot recomputation duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(
		m.ClientsByClass,
		m.ActiveClients,
		m.ServicesByKind,
		m.TotalRevenue,
		m.AverageBalance,
		m.PaymentsTotal,
		m.SnapshotDuration,
	)
	return m
}

// ObserveSnapshot records the snapshot-derived gauges. Classes and kinds
// absent from the snapshot are reset to zero.
func (m *Metrics) ObserveSnapshot(snap analytics.Snapshot, took time.Duration) {
	if m == nil {
		return
	}
	for _, class := range []clients.AccountClass{clients.ClassHome, clients.ClassBusiness, clients.ClassVIP} {
		m.ClientsByClass.WithLabelValues(string(class)).Set(float64(snap.ClientsByClass[class]))
	}
	for _, kind := range []catalog.ServiceKind{catalog.ServiceInternet, catalog.ServiceTV, catalog.ServicePhone} {
		m.ServicesByKind.WithLabelValues(string(kind)).Set(float64(snap.ServicesByKind[kind]))
	}
	m.ActiveClients.Set(float64(snap.ActiveClients))
	m.TotalRevenue.Set(snap.TotalRevenue)
	m.AverageBalance.Set(snap.AverageBalance)
	m.SnapshotDuration.Observe(took.Seconds())
}

// RecordPayment counts an appended payment record.
func (m *Metrics) RecordPayment() {
	if m == nil {
		return
	}
	m.PaymentsTotal.Inc()
}
