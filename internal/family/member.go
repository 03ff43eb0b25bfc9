package family

import (
	"strings"

	"github.com/google/uuid"
)

// FamilyMember is a relative of the user together with their health history.
type FamilyMember struct {
	id       uuid.UUID
	relation string
	age      int
	events   []HealthEvent
}

// NewFamilyMember builds a member with zero or more health events.
// Events keep the order they are given in.
func NewFamilyMember(relation string, age int, events ...HealthEvent) (*FamilyMember, error) {
	if err := validateAge("age", age); err != nil {
		return nil, err
	}

	m := &FamilyMember{
		id:       uuid.New(),
		relation: strings.TrimSpace(relation),
		age:      age,
		events:   make([]HealthEvent, 0, len(events)),
	}
	for _, e := range events {
		if err := m.AddHealthEvent(e); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// NewFamilyMemberWithCondition is the single-condition shorthand: the member
// gets one HealthEvent for condition, diagnosed at their current age.
func NewFamilyMemberWithCondition(relation string, age int, condition string) (*FamilyMember, error) {
	event, err := NewHealthEvent(condition, age, "")
	if err != nil {
		return nil, err
	}
	return NewFamilyMember(relation, age, event)
}

// AddHealthEvent appends an event to the member's history.
func (m *FamilyMember) AddHealthEvent(e HealthEvent) error {
	if !e.valid() {
		return invalid("health_event", "event was not built with NewHealthEvent")
	}
	m.events = append(m.events, e)
	return nil
}

func (m *FamilyMember) ID() uuid.UUID    { return m.id }
func (m *FamilyMember) Relation() string { return m.relation }
func (m *FamilyMember) Age() int         { return m.age }

// HealthEvents returns a copy of the member's events in insertion order.
func (m *FamilyMember) HealthEvents() []HealthEvent {
	out := make([]HealthEvent, len(m.events))
	copy(out, m.events)
	return out
}
