package alerts

import (
	"strings"

	"sillah/internal/family"
	"sillah/internal/risk"
)

// healthyCondition marks an event that records the absence of a diagnosis.
const healthyCondition = "Healthy"

// Family is what the rules see of a user's family history.
type Family struct {
	Members   int
	Diagnosed int // members with at least one condition other than Healthy
	AtRisk    int // members with at least one early case under the criteria

	// Conditions lists every diagnosed condition once, in family order.
	// Duplicates are detected case-insensitively; the first spelling wins.
	Conditions []string
}

// Summarize reduces user to the counts the rules need. A nil user has no
// family.
func Summarize(user *family.User, criteria risk.Criteria) Family {
	f := Family{Conditions: []string{}}
	if user == nil {
		return f
	}

	seen := make(map[string]bool)
	for _, member := range user.FamilyMembers() {
		f.Members++

		diagnosed, atRisk := false, false
		for _, event := range member.HealthEvents() {
			if event.Is(healthyCondition) {
				continue
			}
			diagnosed = true
			if criteria.IsEarlyCase(event) {
				atRisk = true
			}

			key := strings.ToLower(event.Condition())
			if !seen[key] {
				seen[key] = true
				f.Conditions = append(f.Conditions, event.Condition())
			}
		}

		if diagnosed {
			f.Diagnosed++
		}
		if atRisk {
			f.AtRisk++
		}
	}
	return f
}

// HasCondition reports whether any diagnosed condition contains one of the
// keywords, ignoring case.
func (f Family) HasCondition(keywords ...string) bool {
	for _, c := range f.Conditions {
		lc := strings.ToLower(c)
		for _, k := range keywords {
			if strings.Contains(lc, strings.ToLower(k)) {
				return true
			}
		}
	}
	return false
}
