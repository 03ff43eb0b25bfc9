package risk

import "sillah/internal/family"

// Evaluator classifies a user's hereditary risk from their family history.
// It holds no mutable state and is safe to share.
type Evaluator struct {
	criteria Criteria
}

// NewEvaluator creates a new evaluator. Blank or non-positive criteria
// fields fall back to DefaultCriteria.
func NewEvaluator(criteria Criteria) *Evaluator {
	return &Evaluator{criteria: criteria.WithDefaults()}
}

// Criteria returns the criteria in effect, after defaults are applied.
func (ev *Evaluator) Criteria() Criteria {
	if ev == nil {
		return DefaultCriteria()
	}
	return ev.criteria.WithDefaults()
}

// Evaluate returns the risk level for user. A nil user, or one without
// family history, is NoRisk.
func (ev *Evaluator) Evaluate(user *family.User) Level {
	return ev.Assess(user).Level
}

// Assess counts every qualifying (member, event) pair. A member with two
// early cases contributes two.
func (ev *Evaluator) Assess(user *family.User) Assessment {
	criteria := ev.Criteria()
	cases := []Case{}

	if user != nil {
		for _, member := range user.FamilyMembers() {
			for _, event := range member.HealthEvents() {
				if !criteria.IsEarlyCase(event) {
					continue
				}
				cases = append(cases, Case{
					Relation:       member.Relation(),
					Condition:      event.Condition(),
					AgeAtDiagnosis: event.AgeAtDiagnosis(),
					Description:    event.Description(),
				})
			}
		}
	}

	return Assessment{
		Level:          criteria.Classify(len(cases)),
		Condition:      criteria.Condition,
		EarlyCaseCount: len(cases),
		Cases:          cases,
	}
}
