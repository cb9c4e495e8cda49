package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestBookingMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)
	m.ObserveDraftStarted()
	m.ObserveSubmission("success", 0.2)
	m.ObserveSubmission("error", 1.5)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	var found *dto.MetricFamily
	for _, mf := range mfs {
		if mf.GetName() == "saphir_booking_submissions_total" {
			found = mf
		}
	}
	if found == nil {
		t.Fatal("submissions counter not registered")
	}
	if len(found.GetMetric()) != 2 {
		t.Errorf("expected 2 label combinations, got %d", len(found.GetMetric()))
	}
}

func TestRealtimeMetricsGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRealtimeMetrics(reg)
	m.ConnectionOpened()
	m.ConnectionOpened()
	m.ConnectionClosed()
	m.ObserveBroadcast("insert")
}

func TestMetricsNilSafe(t *testing.T) {
	var b *BookingMetrics
	b.ObserveDraftStarted()
	b.ObserveSubmission("success", 0.1)

	var r *RealtimeMetrics
	r.ConnectionOpened()
	r.ConnectionClosed()
	r.ObserveBroadcast("update")
}
