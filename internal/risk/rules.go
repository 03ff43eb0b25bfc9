package risk

import "sillah/internal/family"

// ---------- RULES ----------

// IsEarlyCase reports whether a single event is an early case of the
// tracked condition.
func (c Criteria) IsEarlyCase(e family.HealthEvent) bool {
	return e.Is(c.Condition) && e.AgeAtDiagnosis() < c.EarlyOnsetAge
}

// Classify maps an early case count to a Level.
func (c Criteria) Classify(earlyCaseCount int) Level {
	switch {
	case earlyCaseCount <= 0:
		return NoRisk
	case earlyCaseCount >= c.HighRiskThreshold:
		return HighRisk
	default:
		return ModerateRisk
	}
}
