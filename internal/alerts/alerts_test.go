package alerts

import (
	"testing"

	"sillah/internal/family"
	"sillah/internal/risk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type diagnosis struct {
	condition string
	age       int
}

type relative struct {
	relation string
	events   []diagnosis
}

func newUser(t *testing.T, relatives ...relative) *family.User {
	t.Helper()
	u, err := family.NewUser("Shoug")
	require.NoError(t, err)

	for _, r := range relatives {
		m, err := family.NewFamilyMember(r.relation, 60)
		require.NoError(t, err)
		for _, ev := range r.events {
			e, err := family.NewHealthEvent(ev.condition, ev.age, "")
			require.NoError(t, err)
			require.NoError(t, m.AddHealthEvent(e))
		}
		require.NoError(t, u.AddFamilyMember(m))
	}
	return u
}

func types(alerts []Alert) []Type {
	out := make([]Type, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, a.Type)
	}
	return out
}

func TestGenerate_NoFamily(t *testing.T) {
	g := NewGenerator(risk.DefaultCriteria())

	want := []Type{AddFamilyMembers, AnnualCheckup, Welcome}
	assert.Equal(t, want, types(g.Generate(newUser(t))))
	assert.Equal(t, want, types(g.Generate(nil)))
}

func TestGenerate_OriginalScenario(t *testing.T) {
	g := NewGenerator(risk.DefaultCriteria())

	u := newUser(t,
		relative{"Father", []diagnosis{{"SCD", 55}, {"Hypertension", 50}}},
		relative{"Brother", []diagnosis{{"Healthy", 0}}},
	)

	alerts := g.Generate(u)

	assert.Equal(t, []Type{FamilyDiagnosed, AddFamilyMembers, AnnualCheckup, HypertensionRisk}, types(alerts))
	assert.Equal(t,
		"1 family member(s) have been diagnosed with hereditary conditions including: SCD, Hypertension.",
		alerts[0].Message,
	)
}

func TestGenerate_HighRiskScenario(t *testing.T) {
	g := NewGenerator(risk.DefaultCriteria())

	u := newUser(t,
		relative{"Father", []diagnosis{{"SCD", 45}}},
		relative{"Brother", []diagnosis{{"scd", 30}}},
		relative{"Mother", []diagnosis{{"Healthy", 0}}},
	)

	alerts := g.Generate(u)

	assert.Equal(t, []Type{
		HighRiskFamily,
		FamilyDiagnosed,
		ScreeningRecommended,
		GeneticCounseling,
		AnnualCheckup,
		LifestyleTips,
	}, types(alerts))
	assert.Contains(t, alerts[0].Message, "You have 2 family members")
	assert.Contains(t, alerts[1].Message, "including: SCD.", "conditions are listed once")
	for _, a := range alerts[:4] {
		assert.Equal(t, PriorityHigh, a.Priority, a.Type)
	}
}

func TestGenerate_LateDiagnosisIsNotAtRisk(t *testing.T) {
	g := NewGenerator(risk.DefaultCriteria())

	u := newUser(t,
		relative{"Father", []diagnosis{{"SCD", 50}}},
		relative{"Mother", []diagnosis{{"SCD", 61}}},
	)

	got := types(g.Generate(u))

	assert.Contains(t, got, GeneticCounseling)
	assert.NotContains(t, got, HighRiskFamily)
	assert.NotContains(t, got, ScreeningRecommended)
	assert.NotContains(t, got, LifestyleTips)
}

func TestGenerate_CriteriaDecideAtRisk(t *testing.T) {
	u := newUser(t,
		relative{"Father", []diagnosis{{"Thalassemia", 20}}},
		relative{"Mother", []diagnosis{{"Thalassemia", 25}}},
	)

	withDefaults := types(NewGenerator(risk.Criteria{}).Generate(u))
	assert.NotContains(t, withDefaults, HighRiskFamily)

	thalassemia := types(NewGenerator(risk.Criteria{Condition: "Thalassemia", EarlyOnsetAge: 30, HighRiskThreshold: 2}).Generate(u))
	assert.Contains(t, thalassemia, HighRiskFamily)
}

func TestGenerate_ConditionAlertsIgnoreCase(t *testing.T) {
	g := NewGenerator(risk.DefaultCriteria())

	u := newUser(t,
		relative{"Father", []diagnosis{{"high cholesterol", 40}}},
		relative{"Mother", []diagnosis{{"TYPE 2 DIABETES", 45}}},
		relative{"Grandfather", []diagnosis{{"High Blood Pressure", 60}}},
	)

	got := types(g.Generate(u))

	assert.Contains(t, got, CholesterolRisk)
	assert.Contains(t, got, DiabetesRisk)
	assert.Contains(t, got, HypertensionRisk)
}

func TestSummarize(t *testing.T) {
	u := newUser(t,
		relative{"Father", []diagnosis{{"SCD", 40}, {"Hypertension", 50}}},
		relative{"Mother", []diagnosis{{"hypertension", 55}}},
		relative{"Sister", []diagnosis{{"Healthy", 0}}},
		relative{"Brother", nil},
	)

	f := Summarize(u, risk.DefaultCriteria())

	assert.Equal(t, 4, f.Members)
	assert.Equal(t, 2, f.Diagnosed)
	assert.Equal(t, 1, f.AtRisk)
	assert.Equal(t, []string{"SCD", "Hypertension"}, f.Conditions)
}

func TestRules(t *testing.T) {
	tests := []struct {
		name      string
		rule      Rule
		family    Family
		triggered bool
	}{
		{"HighRiskFamilyOne", HighRiskFamilyRule, Family{AtRisk: 1}, false},
		{"HighRiskFamilyTwo", HighRiskFamilyRule, Family{AtRisk: 2}, true},
		{"FamilyDiagnosedNone", FamilyDiagnosedRule, Family{}, false},
		{"FamilyDiagnosedOne", FamilyDiagnosedRule, Family{Diagnosed: 1, Conditions: []string{"SCD"}}, true},
		{"ScreeningNone", ScreeningRecommendedRule, Family{}, false},
		{"ScreeningOne", ScreeningRecommendedRule, Family{AtRisk: 1}, true},
		{"GeneticCounselingOne", GeneticCounselingRule, Family{Diagnosed: 1}, false},
		{"GeneticCounselingTwo", GeneticCounselingRule, Family{Diagnosed: 2}, true},
		{"AddMembersTwo", AddFamilyMembersRule, Family{Members: 2}, true},
		{"AddMembersThree", AddFamilyMembersRule, Family{Members: 3}, false},
		{"AnnualCheckupAlways", AnnualCheckupRule, Family{Members: 10}, true},
		{"LifestyleNone", LifestyleTipsRule, Family{}, false},
		{"LifestyleOne", LifestyleTipsRule, Family{AtRisk: 1}, true},
		{"Cholesterol", CholesterolRiskRule, Family{Conditions: []string{"High Cholesterol"}}, true},
		{"Diabetes", DiabetesRiskRule, Family{Conditions: []string{"Type 2 Diabetes"}}, true},
		{"DiabetesAbsent", DiabetesRiskRule, Family{Conditions: []string{"SCD"}}, false},
		{"Hypertension", HypertensionRiskRule, Family{Conditions: []string{"Hypertension (High Blood Pressure)"}}, true},
		{"WelcomeEmpty", WelcomeRule, Family{}, true},
		{"WelcomeWithMembers", WelcomeRule, Family{Members: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.rule(tt.family)
			assert.Equal(t, tt.triggered, result.Triggered)
			if tt.triggered {
				assert.NotEmpty(t, result.Alert.Type)
				assert.NotEmpty(t, result.Alert.Title)
				assert.NotEmpty(t, result.Alert.Recommendation)
				assert.NotEmpty(t, result.Alert.Link)
			} else {
				assert.Equal(t, RuleResult{}, result)
			}
		})
	}
}

func TestFamilyDiagnosedRule_TruncatesConditions(t *testing.T) {
	f := Family{
		Diagnosed:  4,
		Conditions: []string{"SCD", "Hypertension", "Asthma", "Type 2 Diabetes"},
	}

	result := FamilyDiagnosedRule(f)

	assert.Equal(t,
		"4 family member(s) have been diagnosed with hereditary conditions including: SCD, Hypertension, Asthma....",
		result.Alert.Message,
	)
}
