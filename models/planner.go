package models

// PlanItem is one priced line of a planner result.
type PlanItem struct {
	Name    string `json:"name"`
	Price   int64  `json:"price"`
	Details string `json:"details"`
}

// PlanResult is the outcome of a completed planner session. BudgetDiff
// is the stated budget minus Total; negative means over budget.
type PlanResult struct {
	Flight     PlanItem `json:"flight"`
	Hotel      PlanItem `json:"hotel"`
	Cab        PlanItem `json:"cab"`
	Total      int64    `json:"total"`
	BudgetDiff int64    `json:"budgetDiff"`
}

// QuestionView is the wire form of a planner question.
type QuestionView struct {
	ID          int      `json:"id"`
	Key         string   `json:"key"`
	Text        string   `json:"text"`
	Type        string   `json:"type"`
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}
