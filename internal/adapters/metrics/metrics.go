package metrics

import (
	"net/http"

	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/norman-ai/norman-cli/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "norman"

var flagValues = []domain.FlagValue{
	domain.FlagPending,
	domain.FlagRunning,
	domain.FlagFinished,
	domain.FlagError,
}

// Metrics collects Prometheus counters for transfers and status polling.
type Metrics struct {
	registry           *prometheus.Registry
	transfersTotal     *prometheus.CounterVec
	transferBytesTotal *prometheus.CounterVec
	pollTicksTotal     *prometheus.CounterVec
	flags              *prometheus.GaugeVec
}

var _ ports.TransferMetrics = (*Metrics)(nil)

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	transfersTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transfer",
			Name:      "total",
			Help:      "Total number of asset and input transfers by outcome.",
		},
		[]string{"kind", "transport", "result"},
	)
	transferBytesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transfer",
			Name:      "bytes_total",
			Help:      "Bytes streamed through allocated channels.",
		},
		[]string{"kind", "transport"},
	)
	pollTicksTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "poll",
			Name:      "ticks_total",
			Help:      "Status flag polls issued.",
		},
		[]string{"operation"},
	)
	flags := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "poll",
			Name:      "flags",
			Help:      "Status flags seen on the latest poll by value.",
		},
		[]string{"operation", "value"},
	)

	registry.MustRegister(transfersTotal, transferBytesTotal, pollTicksTotal, flags)

	return &Metrics{
		registry:           registry,
		transfersTotal:     transfersTotal,
		transferBytesTotal: transferBytesTotal,
		pollTicksTotal:     pollTicksTotal,
		flags:              flags,
	}
}

// Handler returns an HTTP handler that serves the metrics registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveTransfer(kind domain.TargetKind, transport domain.Transport, bytes int64, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.transfersTotal.WithLabelValues(string(kind), string(transport), result).Inc()
	if bytes > 0 {
		m.transferBytesTotal.WithLabelValues(string(kind), string(transport)).Add(float64(bytes))
	}
}

func (m *Metrics) ObservePoll(operation domain.Operation, flags []domain.StatusFlag) {
	if m == nil {
		return
	}
	m.pollTicksTotal.WithLabelValues(string(operation)).Inc()

	counts := make(map[domain.FlagValue]int, len(flagValues))
	for _, flag := range flags {
		counts[flag.Value]++
	}
	for _, value := range flagValues {
		m.flags.WithLabelValues(string(operation), string(value)).Set(float64(counts[value]))
	}
}
