package family

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHealthEvent(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		age       int
		wantErr   bool
		field     string
	}{
		{name: "valid", condition: "SCD", age: 45},
		{name: "lower bound", condition: "SCD", age: 0},
		{name: "upper bound", condition: "SCD", age: 120},
		{name: "blank condition", condition: "", age: 40, wantErr: true, field: "condition"},
		{name: "whitespace condition", condition: "   ", age: 40, wantErr: true, field: "condition"},
		{name: "age above range", condition: "SCD", age: 121, wantErr: true, field: "age_at_diagnosis"},
		{name: "negative age", condition: "SCD", age: -1, wantErr: true, field: "age_at_diagnosis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := NewHealthEvent(tt.condition, tt.age, "")
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.age, event.AgeAtDiagnosis())
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestHealthEvent_Fields(t *testing.T) {
	event, err := NewHealthEvent("  Hypertension ", 50, " Mild blood pressure increase ")
	require.NoError(t, err)

	assert.Equal(t, "Hypertension", event.Condition())
	assert.Equal(t, 50, event.AgeAtDiagnosis())
	assert.Equal(t, "Mild blood pressure increase", event.Description())
}

func TestHealthEvent_IsIgnoresCase(t *testing.T) {
	event, err := NewHealthEvent("Scd", 30, "")
	require.NoError(t, err)

	assert.True(t, event.Is("SCD"))
	assert.True(t, event.Is("scd"))
	assert.True(t, event.Is(" Scd "))
	assert.False(t, event.Is("Hypertension"))
}

func TestNewFamilyMember(t *testing.T) {
	t.Run("NoEvents", func(t *testing.T) {
		m, err := NewFamilyMember("Brother", 30)
		require.NoError(t, err)

		assert.Equal(t, "Brother", m.Relation())
		assert.Equal(t, 30, m.Age())
		assert.Empty(t, m.HealthEvents())
		assert.NotEqual(t, m.ID().String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("EventsKeepOrder", func(t *testing.T) {
		first, _ := NewHealthEvent("SCD", 20, "")
		second, _ := NewHealthEvent("Hypertension", 50, "")

		m, err := NewFamilyMember("Father", 55, first, second)
		require.NoError(t, err)

		events := m.HealthEvents()
		require.Len(t, events, 2)
		assert.Equal(t, "SCD", events[0].Condition())
		assert.Equal(t, "Hypertension", events[1].Condition())
	})

	t.Run("InvalidAge", func(t *testing.T) {
		_, err := NewFamilyMember("Grandfather", 121)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = NewFamilyMember("Sister", -1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("ZeroValueEventRejected", func(t *testing.T) {
		_, err := NewFamilyMember("Mother", 40, HealthEvent{})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestNewFamilyMemberWithCondition(t *testing.T) {
	m, err := NewFamilyMemberWithCondition("Father", 55, "SCD")
	require.NoError(t, err)

	events := m.HealthEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "SCD", events[0].Condition())
	assert.Equal(t, 55, events[0].AgeAtDiagnosis())

	_, err = NewFamilyMemberWithCondition("Father", 55, " ")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFamilyMember_HealthEventsIsCopy(t *testing.T) {
	event, _ := NewHealthEvent("SCD", 45, "")
	m, err := NewFamilyMember("Father", 55, event)
	require.NoError(t, err)

	events := m.HealthEvents()
	events[0] = HealthEvent{}

	assert.Equal(t, "SCD", m.HealthEvents()[0].Condition(),
		"mutating the returned slice should not affect the member")
}

func TestFamilyMember_AddHealthEvent(t *testing.T) {
	m, err := NewFamilyMember("Father", 55)
	require.NoError(t, err)

	event, _ := NewHealthEvent("Hypertension", 50, "")
	require.NoError(t, m.AddHealthEvent(event))
	assert.Len(t, m.HealthEvents(), 1)

	assert.ErrorIs(t, m.AddHealthEvent(HealthEvent{}), ErrInvalidArgument)
	assert.Len(t, m.HealthEvents(), 1)
}

func TestNewUser(t *testing.T) {
	t.Run("TrimsName", func(t *testing.T) {
		u, err := NewUser("  Shoug  ")
		require.NoError(t, err)
		assert.Equal(t, "Shoug", u.Name())
		assert.Empty(t, u.FamilyMembers())
	})

	t.Run("BlankName", func(t *testing.T) {
		for _, name := range []string{"", "   ", "\t"} {
			_, err := NewUser(name)
			assert.ErrorIs(t, err, ErrInvalidArgument, "name %q", name)
		}
	})
}

func TestUser_AddFamilyMember(t *testing.T) {
	u, err := NewUser("Shoug")
	require.NoError(t, err)

	father, _ := NewFamilyMember("Father", 55)
	brother, _ := NewFamilyMember("Brother", 30)

	require.NoError(t, u.AddFamilyMember(father))
	require.NoError(t, u.AddFamilyMember(brother))
	require.NoError(t, u.AddFamilyMember(father))

	members := u.FamilyMembers()
	require.Len(t, members, 3, "duplicates are allowed")
	assert.Equal(t, "Father", members[0].Relation())
	assert.Equal(t, "Brother", members[1].Relation())
	assert.Same(t, father, members[2])

	var verr *ValidationError
	err = u.AddFamilyMember(nil)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "member", verr.Field)
	assert.Len(t, u.FamilyMembers(), 3)
}

func TestUser_FamilyMembersIsReadOnlyView(t *testing.T) {
	u, _ := NewUser("Shoug")
	father, _ := NewFamilyMember("Father", 55)
	require.NoError(t, u.AddFamilyMember(father))

	view := u.FamilyMembers()
	view[0] = nil
	_ = append(view, father)

	members := u.FamilyMembers()
	require.Len(t, members, 1)
	assert.Same(t, father, members[0])
}

func TestValidationError_Message(t *testing.T) {
	_, err := NewHealthEvent("SCD", 121, "")
	require.Error(t, err)
	assert.Equal(t, "age_at_diagnosis: must be between 0 and 120, got 121", err.Error())
}
