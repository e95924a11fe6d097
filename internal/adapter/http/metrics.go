package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics
var (
	flowStepTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "credfacil_flow_step_submissions_total",
		Help: "Flow step submissions by step and outcome",
	}, []string{"step", "outcome"})

	adminSavesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "credfacil_admin_settings_saves_total",
		Help: "Admin settings saves by outcome",
	}, []string{"outcome"})
)

func stepOutcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
