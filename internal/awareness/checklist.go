package awareness

// ChecklistItem is one preventive step.
type ChecklistItem struct {
	Task string `json:"task"`
	Done bool   `json:"done"`
}

// Checklist tracks preventive steps in order.
type Checklist struct {
	Items []ChecklistItem `json:"items"`
}

// DefaultChecklist is the starting checklist for a user who has already
// entered their family.
func DefaultChecklist() Checklist {
	return Checklist{
		Items: []ChecklistItem{
			{Task: "Add family members to your health tree", Done: true},
			{Task: "Schedule your first screening"},
			{Task: "Read one Awareness article"},
		},
	}
}

// Progress returns how many items are done out of the total.
func (c Checklist) Progress() (done, total int) {
	for _, item := range c.Items {
		if item.Done {
			done++
		}
	}
	return done, len(c.Items)
}
