package agent

import "github.com/prometheus/client_golang/prometheus"

// Submission result labels.
const (
	resultOK       = "ok"
	resultRejected = "rejected"
	resultError    = "error"
)

// Metrics counts submission outcomes for the agent loop.
type Metrics struct {
	Submissions *prometheus.CounterVec
	LastSubmit  prometheus.Gauge
}

// NewMetrics builds the agent metrics and registers them when reg is non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lcore",
			Name:      "submissions_total",
			Help:      "Telemetry submissions by result (ok, rejected, error).",
		}, []string{"result"}),
		LastSubmit: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lcore",
			Name:      "last_accepted_submit_timestamp_seconds",
			Help:      "Unix time of the last submission the attestor accepted.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Submissions, m.LastSubmit)
	}
	return m
}

func (m *Metrics) observe(result string, at int64) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(result).Inc()
	if result == resultOK {
		m.LastSubmit.Set(float64(at))
	}
}
