package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Record metrics
	RecordsAdded   *prometheus.CounterVec
	RecordsUpdated *prometheus.CounterVec
	RecordsDeleted *prometheus.CounterVec
	RecordAmount   *prometheus.HistogramVec

	// Ledger metrics
	LedgerSaves   prometheus.Counter
	LedgerLoads   prometheus.Counter
	LedgerBalance prometheus.Gauge
	LedgerRecords prometheus.Gauge

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates all metrics on the default registerer.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates all metrics on reg.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Record metrics
		RecordsAdded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetbook_records_added_total",
				Help: "Total number of records added by kind",
			},
			[]string{"kind"},
		),
		RecordsUpdated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetbook_records_updated_total",
				Help: "Total number of records edited by kind",
			},
			[]string{"kind"},
		),
		RecordsDeleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetbook_records_deleted_total",
				Help: "Total number of records deleted by kind",
			},
			[]string{"kind"},
		),
		RecordAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "budgetbook_record_amount",
				Help:    "Amounts of added records",
				Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000, 10000},
			},
			[]string{"kind"},
		),

		// Ledger metrics
		LedgerSaves: factory.NewCounter(prometheus.CounterOpts{
			Name: "budgetbook_ledger_saves_total",
			Help: "Total number of ledger saves",
		}),
		LedgerLoads: factory.NewCounter(prometheus.CounterOpts{
			Name: "budgetbook_ledger_loads_total",
			Help: "Total number of ledger loads",
		}),
		LedgerBalance: factory.NewGauge(prometheus.GaugeOpts{
			Name: "budgetbook_ledger_balance",
			Help: "All-time income minus expense",
		}),
		LedgerRecords: factory.NewGauge(prometheus.GaugeOpts{
			Name: "budgetbook_ledger_records",
			Help: "Number of records in the live ledger",
		}),

		// API metrics
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetbook_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "budgetbook_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}
