package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNew_Unregistered_DoesNotPanic(t *testing.T) {
	m := New(nil)
	m.DocumentAppended("genesis")
	m.VerificationOutcome(true)
	m.ForkDetected()
}

func TestNilMetrics_IsSafeToUse(t *testing.T) {
	var m *Metrics
	m.DocumentAppended("genesis")
	m.VerificationOutcome(false)
	m.ForkDetected()
}

func TestNew_RegistersAndIncrementsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.DocumentAppended("genesis")
	m.DocumentAppended("genesis")

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	var found bool
	for _, fam := range families {
		if fam.GetName() != "nzcore_documents_appended_total" {
			continue
		}
		found = true
		var total float64
		for _, metric := range fam.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
		if total != 2 {
			t.Fatalf("counter total = %v, want 2", total)
		}
	}
	if !found {
		t.Fatal("expected nzcore_documents_appended_total to be registered")
	}
}
