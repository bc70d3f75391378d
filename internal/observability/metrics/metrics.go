package metrics

import "github.com/prometheus/client_golang/prometheus"

// SessionMetrics exposes counters/gauges for the activity monitor and the
// live session lifecycle.
type SessionMetrics struct {
	pollsTotal     prometheus.Counter
	joinableGauge  prometheus.Gauge
	liveSessions   prometheus.Gauge
	sessionsEnded  *prometheus.CounterVec
	chatMessages   *prometheus.CounterVec
	malformedSlots prometheus.Counter
}

func NewSessionMetrics(reg prometheus.Registerer) *SessionMetrics {
	m := &SessionMetrics{
		pollsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "daymaker",
			Subsystem: "monitor",
			Name:      "polls_total",
			Help:      "Total activity-window evaluation passes",
		}),
		joinableGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "daymaker",
			Subsystem: "monitor",
			Name:      "joinable_session",
			Help:      "1 when a scheduled session is currently joinable",
		}),
		liveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "daymaker",
			Subsystem: "live",
			Name:      "open_sessions",
			Help:      "Live session views currently open",
		}),
		sessionsEnded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "daymaker",
			Subsystem: "live",
			Name:      "sessions_ended_total",
			Help:      "Live sessions ended, by terminal phase reached",
		}, []string{"from_phase"}),
		chatMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "daymaker",
			Subsystem: "live",
			Name:      "chat_messages_total",
			Help:      "Chat messages appended to live session transcripts",
		}, []string{"role"}),
		malformedSlots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "daymaker",
			Subsystem: "monitor",
			Name:      "malformed_time_slots_total",
			Help:      "Scheduled sessions skipped because their time slot did not parse",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.pollsTotal, m.joinableGauge, m.liveSessions, m.sessionsEnded, m.chatMessages, m.malformedSlots)
	return m
}

func (m *SessionMetrics) ObservePoll(joinable bool) {
	if m == nil {
		return
	}
	m.pollsTotal.Inc()
	if joinable {
		m.joinableGauge.Set(1)
	} else {
		m.joinableGauge.Set(0)
	}
}

func (m *SessionMetrics) ObserveSessionOpened() {
	if m == nil {
		return
	}
	m.liveSessions.Inc()
}

func (m *SessionMetrics) ObserveSessionEnded(fromPhase string) {
	if m == nil {
		return
	}
	m.liveSessions.Dec()
	m.sessionsEnded.WithLabelValues(fromPhase).Inc()
}

func (m *SessionMetrics) ObserveChatMessage(role string) {
	if m == nil {
		return
	}
	m.chatMessages.WithLabelValues(role).Inc()
}

func (m *SessionMetrics) ObserveMalformedSlot() {
	if m == nil {
		return
	}
	m.malformedSlots.Inc()
}

// ConciergeMetrics tracks recommendation requests against the LLM collaborator.
type ConciergeMetrics struct {
	requestsTotal *prometheus.CounterVec
}

func NewConciergeMetrics(reg prometheus.Registerer) *ConciergeMetrics {
	m := &ConciergeMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "daymaker",
			Subsystem: "concierge",
			Name:      "requests_total",
			Help:      "Concierge recommendation requests, by outcome",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal)
	return m
}

func (m *ConciergeMetrics) ObserveRequest(outcome string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(outcome).Inc()
}
