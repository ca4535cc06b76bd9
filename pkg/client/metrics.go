package client

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Operation results used as the "result" label.
const (
	resultOK    = "ok"
	resultError = "error"
)

// clientMetrics holds the Prometheus collectors of a Client.
type clientMetrics struct {
	operations      *prometheus.CounterVec // By op and result
	pendingWrites   prometheus.Gauge
	events          prometheus.Counter
	connectionState prometheus.Gauge
}

// newClientMetrics creates and registers the client collectors. A nil
// registerer disables metrics and returns nil.
func newClientMetrics(reg prometheus.Registerer) (*clientMetrics, error) {
	if reg == nil {
		return nil, nil
	}

	m := &clientMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "edgedata",
			Subsystem: "client",
			Name:      "operations_total",
			Help:      "Total number of client operations",
		}, []string{"op", "result"}),

		pendingWrites: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "edgedata",
			Subsystem: "client",
			Name:      "pending_writes",
			Help:      "Number of staged write handles awaiting sync",
		}),

		events: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "edgedata",
			Subsystem: "client",
			Name:      "events_total",
			Help:      "Total number of change events received from the runtime",
		}),

		connectionState: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "edgedata",
			Subsystem: "client",
			Name:      "connection_state",
			Help:      "Current connection state (0=disconnected, 1=connecting, 2=connected)",
		}),
	}

	for _, c := range []prometheus.Collector{m.operations, m.pendingWrites, m.events, m.connectionState} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// recordOp counts a finished operation.
func (m *clientMetrics) recordOp(op string, ok bool) {
	if m == nil {
		return
	}
	result := resultOK
	if !ok {
		result = resultError
	}
	m.operations.WithLabelValues(op, result).Inc()
}

func (m *clientMetrics) setPending(n int) {
	if m == nil {
		return
	}
	m.pendingWrites.Set(float64(n))
}

func (m *clientMetrics) recordEvent() {
	if m == nil {
		return
	}
	m.events.Inc()
}

func (m *clientMetrics) setState(s State) {
	if m == nil {
		return
	}
	m.connectionState.Set(float64(s))
}
