package alerts

// Priority orders alerts for display.
type Priority string

const (
	PriorityHigh     Priority = "high"
	PriorityModerate Priority = "moderate"
)

// Type identifies an alert. At most one alert of each type is generated.
type Type string

const (
	HighRiskFamily       Type = "high_risk_family"
	FamilyDiagnosed      Type = "family_diagnosed"
	ScreeningRecommended Type = "screening_recommended"
	GeneticCounseling    Type = "genetic_counseling"
	AddFamilyMembers     Type = "add_family_members"
	AnnualCheckup        Type = "annual_checkup"
	LifestyleTips        Type = "lifestyle_tips"
	CholesterolRisk      Type = "cholesterol_risk"
	DiabetesRisk         Type = "diabetes_risk"
	HypertensionRisk     Type = "hypertension_risk"
	Welcome              Type = "welcome"
)

// Alert is one personalized health notice.
type Alert struct {
	Type           Type     `json:"type"`
	Title          string   `json:"title"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation"`
	Priority       Priority `json:"priority"`
	Link           string   `json:"link"`
}

// RuleResult represents the outcome of a single rule.
type RuleResult struct {
	Triggered bool
	Alert     Alert
}

// Rule evaluates a family summary.
type Rule func(f Family) RuleResult
