package devguard

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts supervision events. Attach via WithMetrics; a nil *Metrics
// is valid and records nothing.
type Metrics struct {
	// ResetChecks counts reset-capability decisions observed.
	ResetChecks prometheus.Counter

	// Recreations counts unrecoverable post-load device recreations.
	// In practice this reaches at most 1: the first recreation terminates
	// the process.
	Recreations prometheus.Counter

	// AffinityViolations counts resource-creation calls rejected by the
	// thread-affinity guard.
	AffinityViolations prometheus.Counter
}

// NewMetrics creates the supervision metrics and registers them with reg.
// Pass nil to skip registration (useful in tests).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ResetChecks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "devguard",
			Name:      "reset_checks_total",
			Help:      "Number of device reset-capability decisions observed.",
		}),
		Recreations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "devguard",
			Name:      "device_recreations_total",
			Help:      "Number of unrecoverable post-load device recreations detected.",
		}),
		AffinityViolations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "devguard",
			Name:      "affinity_violations_total",
			Help:      "Number of resource creations rejected by the thread-affinity guard.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.ResetChecks, m.Recreations, m.AffinityViolations)
	}
	return m
}

func (m *Metrics) incResetChecks() {
	if m != nil {
		m.ResetChecks.Inc()
	}
}

func (m *Metrics) incRecreations() {
	if m != nil {
		m.Recreations.Inc()
	}
}

func (m *Metrics) incAffinityViolations() {
	if m != nil {
		m.AffinityViolations.Inc()
	}
}
