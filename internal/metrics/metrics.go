package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SweepsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "centerdocs", Name: "expiration_sweeps_total", Help: "Number of completed expiration sweeps."},
	)
	SweepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Namespace: "centerdocs", Name: "expiration_sweep_duration_seconds", Help: "Duration of expiration sweeps."},
	)
	RemindersSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "centerdocs", Name: "expiration_reminders_total", Help: "Number of expiration reminder notifications by tier."},
		[]string{"tier"},
	)
	IncidentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "centerdocs", Name: "expiration_incidents_total", Help: "Number of incidents auto-created for expired documents."},
	)
	VersionDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "centerdocs", Name: "version_decisions_total", Help: "Number of version approvals and rejections."},
		[]string{"decision"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(SweepsTotal)
	reg.MustRegister(SweepDuration)
	reg.MustRegister(RemindersSent)
	reg.MustRegister(IncidentsCreated)
	reg.MustRegister(VersionDecisions)
}
