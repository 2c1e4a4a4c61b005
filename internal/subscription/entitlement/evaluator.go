package entitlement

import (
	"context"

	"teamspace/backend/internal/subscription/domain"
)

// Result holds the outcome of an entitlement evaluation.
type Result struct {
	Allowed bool
	// Limit is the plan ceiling for the feature; 0 means unlimited.
	Limit int
	// Reason is set when Allowed is false (e.g. "plan_limit_reached", "subscription_inactive").
	Reason string
}

// Evaluator decides whether an organization's plan entitles it to a feature
// at its current usage level.
type Evaluator interface {
	// Evaluate checks feature (e.g. "todo.create", "org.members",
	// "notification.org_broadcast") against the org's subscription and the
	// current usage count for that feature.
	Evaluate(ctx context.Context, sub *domain.Subscription, feature string, usage int) (Result, error)
}
