package api

import (
	"net/http"
	"strings"

	"sillah/internal/logs"
)

// HealthStatus represents overall service health.
type HealthStatus string

const (
	StatusOK       HealthStatus = "OK"
	StatusDegraded HealthStatus = "DEGRADED"
)

// HealthReport summarizes recent log activity.
type HealthReport struct {
	OverallStatus HealthStatus `json:"overall_status"`
	Summary       string       `json:"summary"`
	Signals       []string     `json:"signals"`
}

// validationBurst is how many rejected requests in the recent window are
// reported as a signal.
const validationBurst = 10

// Health inspects the newest log entries. Errors degrade the service;
// rejected input is only reported.
func Health(logger *logs.Logger) HealthReport {
	var (
		signals    = []string{}
		status     = StatusOK
		rejected   = 0
		errorCount = 0
	)

	for _, entry := range logger.GetLast(100) {
		switch {
		case entry.Level == logs.ERROR:
			errorCount++
		case entry.Level == logs.WARN && strings.Contains(entry.Message, "validation failed"):
			rejected++
		}
	}

	if rejected >= validationBurst {
		signals = append(signals, "Many requests rejected by validation")
	}
	if errorCount > 0 {
		signals = append(signals, "Request failures detected in logs")
		status = StatusDegraded
	}

	summary := "Service is healthy"
	if status != StatusOK {
		summary = "Service health issues detected"
	}

	return HealthReport{
		OverallStatus: status,
		Summary:       summary,
		Signals:       signals,
	}
}

/* ---------------- GET /health ---------------- */

func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Health(h.logger))
}
