package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Catalog writes
	CatalogWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_writes_total",
			Help: "Total successful catalog writes",
		},
		[]string{"entity", "action"}, // segment|brand|vehicle|user x created|updated|deleted
	)
	CascadeDeletedVehicles = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cascade_deleted_vehicles_total",
			Help: "Vehicles removed by segment/brand/user cascade deletes",
		},
	)

	// Audit queue
	AuditQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "audit_queue_depth",
			Help: "Pending audit log writes",
		},
	)
)

// handler for the /metrics endpoint
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(CatalogWritesTotal)
	prometheus.MustRegister(CascadeDeletedVehicles)
	prometheus.MustRegister(AuditQueueDepth)
}
