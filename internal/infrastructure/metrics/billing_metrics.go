package metrics

import (
	"strings"
	"sync"
	"time"

	"billing_scheduler/internal/domain/entities"
	"billing_scheduler/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	TickResultOK          = "ok"
	TickResultFetchFailed = "fetch_failed"
)

// Config holds the constant labels attached to every billing metric.
type Config struct {
	ServiceName string
	Environment string
}

// BillingMetrics records billing cycle activity in Prometheus.
type BillingMetrics struct {
	charges      *prometheus.CounterVec
	ticks        *prometheus.CounterVec
	tickDuration *prometheus.HistogramVec
	tickInvoices *prometheus.CounterVec
	updateErrors *prometheus.CounterVec
	stage        *prometheus.GaugeVec
	nextRun      prometheus.Gauge
}

var _ interfaces.IBillingRecorder = (*BillingMetrics)(nil)

var (
	billingMetricsOnce sync.Once
	billingMetrics     *BillingMetrics
)

// Billing returns the singleton billing metrics registered on the default registerer.
func Billing(cfg Config) *BillingMetrics {
	billingMetricsOnce.Do(func() {
		billingMetrics = NewBillingMetrics(prometheus.DefaultRegisterer, cfg)
	})
	return billingMetrics
}

func NewBillingMetrics(registerer prometheus.Registerer, cfg Config) *BillingMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "billing-scheduler"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	m := &BillingMetrics{
		charges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "billing_charges_total",
			Help:        "Charge attempts by stage, outcome and resulting invoice status.",
			ConstLabels: constLabels,
		}, []string{"stage", "outcome", "status"}),
		ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "billing_ticks_total",
			Help:        "Billing passes by stage and result.",
			ConstLabels: constLabels,
		}, []string{"stage", "result"}),
		tickDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "billing_tick_duration_seconds",
			Help:        "Wall time of one billing pass.",
			Buckets:     []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
			ConstLabels: constLabels,
		}, []string{"stage"}),
		tickInvoices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "billing_tick_invoices_total",
			Help:        "Invoices fetched per billing pass.",
			ConstLabels: constLabels,
		}, []string{"stage"}),
		updateErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "billing_invoice_update_errors_total",
			Help:        "Invoice status updates the store rejected.",
			ConstLabels: constLabels,
		}, []string{"stage"}),
		stage: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "billing_cycle_stage",
			Help:        "1 for the stage the billing cycle will run next.",
			ConstLabels: constLabels,
		}, []string{"stage"}),
		nextRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "billing_cycle_next_run_timestamp_seconds",
			Help:        "Unix time of the next scheduled billing pass.",
			ConstLabels: constLabels,
		}),
	}

	registerer.MustRegister(
		m.charges,
		m.ticks,
		m.tickDuration,
		m.tickInvoices,
		m.updateErrors,
		m.stage,
		m.nextRun,
	)
	return m
}

func (m *BillingMetrics) ObserveCharge(stage entities.BillingStage, outcome string, status entities.InvoiceStatus) {
	if m == nil {
		return
	}
	m.charges.WithLabelValues(string(stage), outcome, string(status)).Inc()
}

func (m *BillingMetrics) ObserveTick(report entities.TickReport) {
	if m == nil {
		return
	}
	stage := string(report.Stage)
	result := TickResultOK
	if report.FetchFailed {
		result = TickResultFetchFailed
	}
	m.ticks.WithLabelValues(stage, result).Inc()
	m.tickDuration.WithLabelValues(stage).Observe(report.Duration.Seconds())
	m.tickInvoices.WithLabelValues(stage).Add(float64(report.Fetched))
	if report.UpdateErrors > 0 {
		m.updateErrors.WithLabelValues(stage).Add(float64(report.UpdateErrors))
	}
}

func (m *BillingMetrics) SetStage(stage entities.BillingStage, nextRunAt time.Time) {
	if m == nil {
		return
	}
	for _, s := range entities.BillingStages {
		v := 0.0
		if s == stage {
			v = 1
		}
		m.stage.WithLabelValues(string(s)).Set(v)
	}
	m.nextRun.Set(float64(nextRunAt.Unix()))
}
