package risk

import "strings"

// Criteria controls which events count as early cases and where the
// high risk threshold sits.
type Criteria struct {
	Condition         string // tracked condition, matched case-insensitively
	EarlyOnsetAge     int    // diagnoses strictly below this age count
	HighRiskThreshold int    // early cases needed for HighRisk, at least 2
}

func DefaultCriteria() Criteria {
	return Criteria{
		Condition:         "SCD",
		EarlyOnsetAge:     50,
		HighRiskThreshold: 2,
	}
}

// WithDefaults replaces every unusable field with its DefaultCriteria
// value. A threshold below 2 would leave no room for ModerateRisk.
func (c Criteria) WithDefaults() Criteria {
	def := DefaultCriteria()
	if strings.TrimSpace(c.Condition) == "" {
		c.Condition = def.Condition
	}
	if c.EarlyOnsetAge <= 0 {
		c.EarlyOnsetAge = def.EarlyOnsetAge
	}
	if c.HighRiskThreshold < 2 {
		c.HighRiskThreshold = def.HighRiskThreshold
	}
	return c
}
