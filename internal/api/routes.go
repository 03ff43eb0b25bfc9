package api

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

func methods(allowed map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if fn, ok := allowed[r.Method]; ok {
			fn(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func RegisterRoutes(mux *http.ServeMux, h *Handler, access *logrus.Logger) http.Handler {
	// Advisory APIs
	mux.HandleFunc("/assessments", methods(map[string]http.HandlerFunc{
		http.MethodPost: h.CreateAssessment,
	}))
	mux.HandleFunc("/alerts", methods(map[string]http.HandlerFunc{
		http.MethodPost: h.CreateAlerts,
	}))
	mux.HandleFunc("/appointments", methods(map[string]http.HandlerFunc{
		http.MethodPost: h.CreateAppointment,
	}))
	mux.HandleFunc("/clinics", methods(map[string]http.HandlerFunc{
		http.MethodGet: h.GetClinic,
	}))

	// Awareness hub
	topics := methods(map[string]http.HandlerFunc{http.MethodGet: h.GetTopics})
	mux.HandleFunc("/awareness/topics", topics)
	mux.HandleFunc("/awareness/topics/", topics)
	mux.HandleFunc("/awareness/checklist", methods(map[string]http.HandlerFunc{
		http.MethodGet: h.GetChecklist,
	}))

	// Observability
	mux.HandleFunc("/metrics", methods(map[string]http.HandlerFunc{
		http.MethodGet: h.GetMetrics,
	}))
	mux.HandleFunc("/health", methods(map[string]http.HandlerFunc{
		http.MethodGet: h.GetHealth,
	}))

	return Chain(
		mux,
		RecoveryMiddleware(access),
		LoggingMiddleware(access),
	)
}
