package domain

import "time"

// GoalState is the closed set of goal lifecycle states.
type GoalState string

const (
	GoalActive   GoalState = "Active"
	GoalPaused   GoalState = "Paused"
	GoalAchieved GoalState = "Achieved"
)

// Goal is a savings target. CurrentQuantity is accumulated by
// contributions and recomputed by the server; the client never derives it
// locally.
type Goal struct {
	ID              string
	Name            string
	Quantity        float64
	GoalDate        time.Time
	CurrentQuantity float64
	Icon            string
	State           GoalState
	Note            string
}

// GoalContribution is an immutable sub-record of a goal. Once created it
// is never edited or deleted.
type GoalContribution struct {
	ID          string
	GoalID      string
	Amount      float64
	Date        time.Time
	Description string
}
