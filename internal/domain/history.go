package domain

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the traffic-light verdict recorded when a session finishes.
type Outcome string

const (
	OutcomeComplete   Outcome = "complete"
	OutcomeIncomplete Outcome = "incomplete"
	OutcomeNotDone    Outcome = "not_done" // synthetic, for days without a workout
)

// HistoryEntry records one finished workout. PlanName is a snapshot taken at
// finish time, since the plan may later be renamed or deleted.
type HistoryEntry struct {
	ID       uuid.UUID
	Date     time.Time
	PlanID   int64
	PlanName string
	Outcome  Outcome
}
