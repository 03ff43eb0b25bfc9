package alerts

import (
	"fmt"
	"strings"
)

// ---------- RULES ----------

// maxListedConditions bounds the conditions named in one message.
const maxListedConditions = 3

// Two or more at-risk relatives raise the user's own risk.
func HighRiskFamilyRule(f Family) RuleResult {
	if f.AtRisk < 2 {
		return RuleResult{}
	}
	return RuleResult{
		Triggered: true,
		Alert: Alert{
			Type:           HighRiskFamily,
			Title:          "High Hereditary Risk Detected",
			Message:        fmt.Sprintf(`You have %d family members identified as "At Risk" for hereditary conditions. This increases your personal risk for similar health issues.`, f.AtRisk),
			Recommendation: "Schedule a comprehensive health screening and genetic counseling session to assess your personal risk factors.",
			Priority:       PriorityHigh,
			Link:           "/risk-assessment",
		},
	}
}

// Any diagnosed relative.
func FamilyDiagnosedRule(f Family) RuleResult {
	if f.Diagnosed == 0 {
		return RuleResult{}
	}

	listed := f.Conditions
	more := ""
	if len(listed) > maxListedConditions {
		listed = listed[:maxListedConditions]
		more = "..."
	}

	return RuleResult{
		Triggered: true,
		Alert: Alert{
			Type:           FamilyDiagnosed,
			Title:          "Family Members with Hereditary Conditions",
			Message:        fmt.Sprintf("%d family member(s) have been diagnosed with hereditary conditions including: %s%s.", f.Diagnosed, strings.Join(listed, ", "), more),
			Recommendation: "Review your family health tree and discuss these conditions with your doctor during your next checkup.",
			Priority:       PriorityHigh,
			Link:           "/family-tree",
		},
	}
}

func ScreeningRecommendedRule(f Family) RuleResult {
	if f.AtRisk == 0 {
		return RuleResult{}
	}
	return RuleResult{
		Triggered: true,
		Alert: Alert{
			Type:           ScreeningRecommended,
			Title:          "Health Screening Recommended",
			Message:        "Based on your family health history, we recommend scheduling regular health screenings to monitor for early signs of hereditary conditions.",
			Recommendation: "Book a comprehensive health checkup with a general practitioner. Include cardiovascular screening, blood work, and genetic counseling if available.",
			Priority:       PriorityHigh,
			Link:           "/clinics",
		},
	}
}

// Several diagnosed relatives suggest a genetic component.
func GeneticCounselingRule(f Family) RuleResult {
	if f.Diagnosed < 2 {
		return RuleResult{}
	}
	return RuleResult{
		Triggered: true,
		Alert: Alert{
			Type:           GeneticCounseling,
			Title:          "Genetic Counseling Recommended",
			Message:        "Multiple family members with hereditary conditions suggest a strong genetic component. Genetic counseling can help you understand your personal risk.",
			Recommendation: "Schedule an appointment with a genetic counselor to discuss family planning and preventive measures.",
			Priority:       PriorityHigh,
			Link:           "/clinics",
		},
	}
}

// A family tree with fewer than three members is too thin to assess well.
func AddFamilyMembersRule(f Family) RuleResult {
	if f.Members >= 3 {
		return RuleResult{}
	}
	return RuleResult{
		Triggered: true,
		Alert: Alert{
			Type:           AddFamilyMembers,
			Title:          "Complete Your Family Health Tree",
			Message:        "Adding more family members helps us provide more accurate risk assessments. Try to include at least 3 generations (parents, grandparents, siblings).",
			Recommendation: "Add more family members to your health tree, including their ages, relationships, and any known health conditions.",
			Priority:       PriorityModerate,
			Link:           "/family-tree",
		},
	}
}

// Always fires.
func AnnualCheckupRule(Family) RuleResult {
	return RuleResult{
		Triggered: true,
		Alert: Alert{
			Type:           AnnualCheckup,
			Title:          "Annual Health Checkup Due",
			Message:        "It's important to schedule regular health checkups, especially with your family history of hereditary conditions.",
			Recommendation: "Book your annual health checkup. This should include blood pressure, cholesterol screening, and diabetes tests.",
			Priority:       PriorityModerate,
			Link:           "/appointments",
		},
	}
}

func LifestyleTipsRule(f Family) RuleResult {
	if f.AtRisk == 0 {
		return RuleResult{}
	}
	return RuleResult{
		Triggered: true,
		Alert: Alert{
			Type:           LifestyleTips,
			Title:          "Preventive Health Tips",
			Message:        "Given your family health history, lifestyle modifications can significantly reduce your risk of developing hereditary conditions.",
			Recommendation: "Focus on: regular exercise (30 min/day), balanced diet, stress management, adequate sleep, and avoiding smoking/excessive alcohol.",
			Priority:       PriorityModerate,
			Link:           "/awareness-hub",
		},
	}
}

func CholesterolRiskRule(f Family) RuleResult {
	if !f.HasCondition("cholesterol") {
		return RuleResult{}
	}
	return RuleResult{
		Triggered: true,
		Alert: Alert{
			Type:           CholesterolRisk,
			Title:          "Cholesterol Screening Recommended",
			Message:        "Family history of high cholesterol increases your risk. Early detection and management can prevent cardiovascular disease.",
			Recommendation: "Get a lipid panel blood test to check your cholesterol levels. If elevated, discuss diet changes and treatment options with your doctor.",
			Priority:       PriorityHigh,
			Link:           "/clinics",
		},
	}
}

func DiabetesRiskRule(f Family) RuleResult {
	if !f.HasCondition("diabetes") {
		return RuleResult{}
	}
	return RuleResult{
		Triggered: true,
		Alert: Alert{
			Type:           DiabetesRisk,
			Title:          "Diabetes Risk Alert",
			Message:        "Family history of Type 2 Diabetes significantly increases your risk. Prevention and early detection are key.",
			Recommendation: "Get an HbA1c or fasting glucose test. Maintain healthy weight, exercise regularly, and monitor your blood sugar levels.",
			Priority:       PriorityHigh,
			Link:           "/clinics",
		},
	}
}

func HypertensionRiskRule(f Family) RuleResult {
	if !f.HasCondition("hypertension", "high blood pressure") {
		return RuleResult{}
	}
	return RuleResult{
		Triggered: true,
		Alert: Alert{
			Type:           HypertensionRisk,
			Title:          "Blood Pressure Monitoring Needed",
			Message:        "Family history of hypertension puts you at increased risk for high blood pressure and heart disease.",
			Recommendation: "Monitor your blood pressure regularly. Reduce salt intake, maintain healthy weight, and exercise regularly.",
			Priority:       PriorityHigh,
			Link:           "/clinics",
		},
	}
}

// A user with no family recorded yet.
func WelcomeRule(f Family) RuleResult {
	if f.Members > 0 {
		return RuleResult{}
	}
	return RuleResult{
		Triggered: true,
		Alert: Alert{
			Type:           Welcome,
			Title:          "Welcome to Sillah",
			Message:        "Thank you for joining Sillah (صلة), your family health management system. Start by adding family members to build your health tree and identify potential hereditary risks.",
			Recommendation: "Add at least 3 family members (parents, siblings, grandparents) to get a comprehensive risk assessment.",
			Priority:       PriorityModerate,
			Link:           "/family-tree",
		},
	}
}
