package advisor

import (
	"fmt"

	"sillah/internal/alerts"
	"sillah/internal/booking"
	"sillah/internal/family"
	"sillah/internal/logs"
	"sillah/internal/message"
	"sillah/internal/metrics"
	"sillah/internal/risk"

	"github.com/google/uuid"
)

// Advisory is what a user is told after their family history is assessed.
type Advisory struct {
	UserID            uuid.UUID       `json:"user_id"`
	UserName          string          `json:"user_name"`
	Lang              message.Lang    `json:"lang"`
	Assessment        risk.Assessment `json:"assessment"`
	Message           string          `json:"message"`
	RecommendedClinic *booking.Clinic `json:"recommended_clinic,omitempty"`
	Alerts            []alerts.Alert  `json:"alerts"`
}

// Advisor turns a risk assessment into advice and, when warranted, a clinic
// recommendation.
type Advisor struct {
	evaluator     *risk.Evaluator
	generator     *alerts.Generator
	bookings      *booking.Service
	logger        *logs.Logger
	metrics       *metrics.Registry
	defaultClinic string
}

// NewAdvisor creates a new advisor. defaultClinic is the name looked up
// when a screening is recommended. Alerts use the evaluator's criteria.
func NewAdvisor(
	evaluator *risk.Evaluator,
	bookings *booking.Service,
	logger *logs.Logger,
	reg *metrics.Registry,
	defaultClinic string,
) *Advisor {
	return &Advisor{
		evaluator:     evaluator,
		generator:     alerts.NewGenerator(evaluator.Criteria()),
		bookings:      bookings,
		logger:        logger,
		metrics:       reg,
		defaultClinic: defaultClinic,
	}
}

// Advise assesses user and renders the result in lang.
func (a *Advisor) Advise(user *family.User, lang message.Lang) Advisory {
	catalog := message.New(lang)
	assessment := a.evaluator.Assess(user)

	adv := Advisory{
		Lang:       catalog.Lang(),
		Assessment: assessment,
		Message:    catalog.Risk(assessment.Level),
		Alerts:     a.Alerts(user),
	}
	if user != nil {
		adv.UserID = user.ID()
		adv.UserName = user.Name()
	}

	if assessment.Level.RecommendsScreening() {
		clinic := a.FindClinic(a.defaultClinic)
		adv.RecommendedClinic = &clinic
	}

	a.metrics.Inc(metrics.AdvisoriesTotal)
	a.metrics.Inc(metrics.LevelKey(assessment.Level))

	a.logger.InfoFields("advisory issued", map[string]any{
		"user_id":          adv.UserID.String(),
		"risk_level":       assessment.Level.String(),
		"early_case_count": assessment.EarlyCaseCount,
		"alert_count":      len(adv.Alerts),
	})

	return adv
}

// Alerts returns the health alerts for user's family history.
func (a *Advisor) Alerts(user *family.User) []alerts.Alert {
	out := a.generator.Generate(user)
	a.metrics.Add(metrics.AlertsGeneratedTotal, int64(len(out)))
	return out
}

// FindClinic looks up a clinic through the booking service.
func (a *Advisor) FindClinic(name string) booking.Clinic {
	a.metrics.Inc(metrics.ClinicLookupsTotal)
	return a.bookings.FindClinic(name)
}

// Book finds clinicName and books user into it. An empty name uses the
// default clinic.
func (a *Advisor) Book(user *family.User, clinicName string) (booking.Appointment, error) {
	if clinicName == "" {
		clinicName = a.defaultClinic
	}

	appt, err := a.bookings.Book(user, a.FindClinic(clinicName))
	if err != nil {
		return booking.Appointment{}, fmt.Errorf("book appointment: %w", err)
	}

	a.metrics.Inc(metrics.AppointmentsBookedTotal)
	return appt, nil
}
