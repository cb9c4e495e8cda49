package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking flow.
type BookingMetrics struct {
	draftsStarted    prometheus.Counter
	submissionsTotal *prometheus.CounterVec
	submitLatency    prometheus.Histogram
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		draftsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "saphir",
			Subsystem: "booking",
			Name:      "drafts_started_total",
			Help:      "Total booking drafts opened",
		}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "saphir",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Total booking submissions by outcome",
		}, []string{"status"}),
		submitLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "saphir",
			Subsystem: "booking",
			Name:      "submit_latency_seconds",
			Help:      "Latency of the reservation persistence call",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.draftsStarted, m.submissionsTotal, m.submitLatency)
	return m
}

func (m *BookingMetrics) ObserveDraftStarted() {
	if m == nil {
		return
	}
	m.draftsStarted.Inc()
}

func (m *BookingMetrics) ObserveSubmission(status string, seconds float64) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(status).Inc()
	m.submitLatency.Observe(seconds)
}

// RealtimeMetrics tracks the admin change-feed websocket.
type RealtimeMetrics struct {
	connections prometheus.Gauge
	events      *prometheus.CounterVec
}

func NewRealtimeMetrics(reg prometheus.Registerer) *RealtimeMetrics {
	m := &RealtimeMetrics{
		connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "saphir",
			Subsystem: "realtime",
			Name:      "connections",
			Help:      "Currently connected back-office feed clients",
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "saphir",
			Subsystem: "realtime",
			Name:      "events_broadcast_total",
			Help:      "Change events broadcast to the back-office feed",
		}, []string{"type"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.connections, m.events)
	return m
}

func (m *RealtimeMetrics) ConnectionOpened() {
	if m == nil {
		return
	}
	m.connections.Inc()
}

func (m *RealtimeMetrics) ConnectionClosed() {
	if m == nil {
		return
	}
	m.connections.Dec()
}

func (m *RealtimeMetrics) ObserveBroadcast(eventType string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(eventType).Inc()
}
