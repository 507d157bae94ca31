package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles the counters a facade reports on. A Metrics built with
// New(nil) is fully functional but never registered with any registry, so
// it is safe to use even if the embedding application has no /metrics
// endpoint. A nil *Metrics is also safe: every method is then a no-op.
type Metrics struct {
	documentsAppended  *prometheus.CounterVec
	verificationResult *prometheus.CounterVec
	forksDetected      prometheus.Counter
}

// New constructs Metrics and, if reg is non-nil, registers its collectors
// with reg. Pass nil to get working-but-unregistered (no-op) metrics.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		documentsAppended: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nzcore",
			Name:      "documents_appended_total",
			Help:      "Documents appended to a chain, labeled by type.",
		}, []string{"type"}),
		verificationResult: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nzcore",
			Name:      "verification_result_total",
			Help:      "Document verification outcomes, labeled by result.",
		}, []string{"result"}),
		forksDetected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nzcore",
			Name:      "forks_detected_total",
			Help:      "Forks reported by fork-detection scans; a fork still present at a later scan is counted again.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.documentsAppended, m.verificationResult, m.forksDetected)
	}
	return m
}

// DocumentAppended records an append of a document of the given type.
func (m *Metrics) DocumentAppended(docType string) {
	if m == nil {
		return
	}
	m.documentsAppended.WithLabelValues(docType).Inc()
}

// VerificationOutcome records a verify_document result ("pass" or "fail").
func (m *Metrics) VerificationOutcome(passed bool) {
	if m == nil {
		return
	}
	result := "fail"
	if passed {
		result = "pass"
	}
	m.verificationResult.WithLabelValues(result).Inc()
}

// ForkDetected records one fork reported by a fork-detection scan.
func (m *Metrics) ForkDetected() {
	if m == nil {
		return
	}
	m.forksDetected.Inc()
}
