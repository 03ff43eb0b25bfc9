package alerts

import (
	"sillah/internal/family"
	"sillah/internal/risk"
)

// Generator runs every rule over a user's family history.
type Generator struct {
	criteria risk.Criteria
	rules    []Rule
}

// NewGenerator creates a generator. criteria decides which relatives are at
// risk; unusable fields fall back to risk.DefaultCriteria.
func NewGenerator(criteria risk.Criteria) *Generator {
	return &Generator{
		criteria: criteria.WithDefaults(),
		rules: []Rule{
			HighRiskFamilyRule,
			FamilyDiagnosedRule,
			ScreeningRecommendedRule,
			GeneticCounselingRule,
			AddFamilyMembersRule,
			AnnualCheckupRule,
			LifestyleTipsRule,
			CholesterolRiskRule,
			DiabetesRiskRule,
			HypertensionRiskRule,
			WelcomeRule,
		},
	}
}

// Generate returns the triggered alerts in rule order. It never returns nil.
func (g *Generator) Generate(user *family.User) []Alert {
	f := Summarize(user, g.criteria)

	out := []Alert{}
	for _, rule := range g.rules {
		result := rule(f)
		if !result.Triggered {
			continue
		}
		out = append(out, result.Alert)
	}
	return out
}
