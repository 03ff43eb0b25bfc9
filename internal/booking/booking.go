package booking

import (
	"strings"
	"time"

	"sillah/internal/family"
	"sillah/internal/logs"

	"github.com/google/uuid"
)

// Clinic is a place where a screening can be booked.
type Clinic struct {
	Name string `json:"name"`
	City string `json:"city"`
}

// Appointment is a booked visit.
type Appointment struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
	Clinic   Clinic    `json:"clinic"`
	BookedAt time.Time `json:"booked_at"`
}

const (
	RiyadhHeartCenter   = "Riyadh Heart Center"
	GeneralHealthClinic = "General Health Clinic"
)

// Service is a stand-in clinic directory and scheduler. It knows one named
// clinic and answers every other lookup with a general clinic.
type Service struct {
	logger *logs.Logger
	now    func() time.Time
}

// NewService creates a booking service. now defaults to time.Now when nil.
func NewService(logger *logs.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		logger: logger,
		now:    now,
	}
}

// FindClinic looks up a clinic by name, ignoring case.
func (s *Service) FindClinic(name string) Clinic {
	if strings.EqualFold(strings.TrimSpace(name), RiyadhHeartCenter) {
		return Clinic{Name: RiyadhHeartCenter, City: "Riyadh"}
	}
	return Clinic{Name: GeneralHealthClinic, City: "Riyadh"}
}

// Book creates an appointment for user at clinic. There is no calendar, so
// every request succeeds once its arguments are valid.
func (s *Service) Book(user *family.User, clinic Clinic) (Appointment, error) {
	if user == nil {
		return Appointment{}, &family.ValidationError{Field: "user", Message: "user is required"}
	}
	if strings.TrimSpace(clinic.Name) == "" {
		return Appointment{}, &family.ValidationError{Field: "clinic", Message: "clinic name is required"}
	}

	appt := Appointment{
		ID:       uuid.New(),
		UserID:   user.ID(),
		UserName: user.Name(),
		Clinic:   clinic,
		BookedAt: s.now().UTC(),
	}

	s.logger.InfoFields("appointment booked", map[string]any{
		"appointment_id": appt.ID.String(),
		"clinic":         clinic.Name,
	})

	return appt, nil
}
