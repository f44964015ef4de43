package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus instruments the lending engine maintains.
type Metrics struct {
	SimulationsTotal    prometheus.Counter
	ApplicationsTotal   prometheus.Counter
	ApprovalsTotal      prometheus.Counter
	RejectionsTotal     prometheus.Counter
	RepaymentsTotal     *prometheus.CounterVec
	OverdueScansTotal   prometheus.Counter
	OverdueInstallments prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics registers the lending instruments on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())

	factory := promauto.With(reg)

	return &Metrics{
		SimulationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "lending_simulations_total",
			Help: "Number of loan simulations computed.",
		}),
		ApplicationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "lending_applications_total",
			Help: "Number of loan applications created.",
		}),
		ApprovalsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "lending_approvals_total",
			Help: "Number of loans approved and activated.",
		}),
		RejectionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "lending_rejections_total",
			Help: "Number of loan applications rejected.",
		}),
		RepaymentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lending_repayments_total",
			Help: "Number of repayments recorded, by payment type.",
		}, []string{"payment_type"}),
		OverdueScansTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "lending_overdue_scans_total",
			Help: "Number of overdue-detection sweeps executed.",
		}),
		OverdueInstallments: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lending_overdue_installments",
			Help: "Overdue installments found by the most recent sweep.",
		}),
		registry: reg,
	}
}

// Handler exposes the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
