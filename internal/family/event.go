package family

import (
	"fmt"
	"strings"
)

// Age bounds, inclusive, for both current age and age at diagnosis.
const (
	MinAge = 0
	MaxAge = 120
)

// HealthEvent is one diagnosed condition at a given age.
//
// Fields are unexported so an event cannot change after NewHealthEvent
// has validated it. The zero value is not a valid event.
type HealthEvent struct {
	condition      string
	ageAtDiagnosis int
	description    string
}

// NewHealthEvent validates and builds a HealthEvent.
// description is optional free text and may be empty.
func NewHealthEvent(condition string, ageAtDiagnosis int, description string) (HealthEvent, error) {
	condition = strings.TrimSpace(condition)
	if condition == "" {
		return HealthEvent{}, invalid("condition", "condition is required")
	}
	if err := validateAge("age_at_diagnosis", ageAtDiagnosis); err != nil {
		return HealthEvent{}, err
	}

	return HealthEvent{
		condition:      condition,
		ageAtDiagnosis: ageAtDiagnosis,
		description:    strings.TrimSpace(description),
	}, nil
}

func (e HealthEvent) Condition() string   { return e.condition }
func (e HealthEvent) AgeAtDiagnosis() int { return e.ageAtDiagnosis }
func (e HealthEvent) Description() string { return e.description }

// Is reports whether the event is for condition, ignoring case.
func (e HealthEvent) Is(condition string) bool {
	return strings.EqualFold(e.condition, strings.TrimSpace(condition))
}

func (e HealthEvent) valid() bool {
	return e.condition != ""
}

func validateAge(field string, age int) error {
	if age < MinAge || age > MaxAge {
		return invalid(field, fmt.Sprintf("must be between %d and %d, got %d", MinAge, MaxAge, age))
	}
	return nil
}
