package dto

// GoalRead is the goal shape returned by the backend.
type GoalRead struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Quantity        float64 `json:"quantity"`
	GoalDate        ApiDate `json:"goalDate"`
	CurrentQuantity float64 `json:"currentQuantity"`
	Icon            string  `json:"icon"`
	State           string  `json:"state"`
	Note            string  `json:"note,omitempty"`
}

// GoalWrite is the create/update request body.
type GoalWrite struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	GoalDate ApiDate `json:"goalDate"`
	Icon     string  `json:"icon"`
	State    string  `json:"state"`
	Note     string  `json:"note,omitempty"`
}

// ContributionRead is an immutable goal contribution record.
type ContributionRead struct {
	ID          string  `json:"id"`
	GoalID      string  `json:"goalId"`
	Amount      float64 `json:"amount"`
	Date        ApiDate `json:"contributionDate"`
	Description string  `json:"description,omitempty"`
}

// ContributionWrite posts a new contribution. The server recomputes the
// goal's accumulated quantity and echoes the updated goal back.
type ContributionWrite struct {
	Amount      float64 `json:"amount"`
	Date        ApiDate `json:"contributionDate"`
	Description string  `json:"description,omitempty"`
}

// ContributionResult is the response to a contribution post.
type ContributionResult struct {
	Contribution ContributionRead `json:"contribution"`
	Goal         GoalRead         `json:"goal"`
}
