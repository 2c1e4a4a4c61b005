package domain

import (
	"encoding/json"
	"time"
)

// Subscription mirrors the billing provider's state for one organization.
// It is written by the provider's webhook pipeline (out of scope here) and
// read-only for this service. Data carries the raw provider payload.
type Subscription struct {
	ID        string
	OrgID     string
	Plan      Plan
	Status    Status
	Data      json.RawMessage
	UpdatedAt time.Time
}

type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
	PlanTeam Plan = "team"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusPastDue  Status = "past_due"
	StatusCanceled Status = "canceled"
	StatusInactive Status = "inactive"
)
