package risk

// Case is one family event that counted towards the risk level.
type Case struct {
	Relation       string `json:"relation"`
	Condition      string `json:"condition"`
	AgeAtDiagnosis int    `json:"age_at_diagnosis"`
	Description    string `json:"description,omitempty"`
}

// Assessment is the evaluator's full result.
type Assessment struct {
	Level          Level  `json:"level"`
	Condition      string `json:"condition"`
	EarlyCaseCount int    `json:"early_case_count"`
	Cases          []Case `json:"cases"`
}
