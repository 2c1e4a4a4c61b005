package entitlement

import (
	"context"
	"testing"

	"teamspace/backend/internal/subscription/domain"
)

func activeSub(plan domain.Plan) *domain.Subscription {
	return &domain.Subscription{ID: "s1", OrgID: "org1", Plan: plan, Status: domain.StatusActive}
}

func TestHealthCheck(t *testing.T) {
	if err := NewOPAEvaluator().HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck: %v", err)
	}
}

func TestEvaluate_FreePlanWithinLimit(t *testing.T) {
	e := NewOPAEvaluator()
	res, err := e.Evaluate(context.Background(), nil, "todo.create", 10)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !res.Allowed {
		t.Fatalf("result = %+v, want allowed (free plan, under limit)", res)
	}
	if res.Limit != 100 {
		t.Errorf("Limit = %d, want 100", res.Limit)
	}
}

func TestEvaluate_FreePlanLimitReached(t *testing.T) {
	e := NewOPAEvaluator()
	res, err := e.Evaluate(context.Background(), nil, "todo.create", 100)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Allowed {
		t.Fatalf("result = %+v, want denied at the limit", res)
	}
	if res.Reason != "plan_limit_reached" {
		t.Errorf("Reason = %q, want plan_limit_reached", res.Reason)
	}
}

func TestEvaluate_TeamPlanUnlimited(t *testing.T) {
	e := NewOPAEvaluator()
	res, err := e.Evaluate(context.Background(), activeSub(domain.PlanTeam), "todo.create", 1_000_000)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !res.Allowed {
		t.Fatalf("result = %+v, want allowed (team plan is unlimited)", res)
	}
	if res.Limit != 0 {
		t.Errorf("Limit = %d, want 0 (unlimited)", res.Limit)
	}
}

func TestEvaluate_InactiveSubscription(t *testing.T) {
	e := NewOPAEvaluator()
	sub := &domain.Subscription{ID: "s1", OrgID: "org1", Plan: domain.PlanPro, Status: domain.StatusPastDue}
	res, err := e.Evaluate(context.Background(), sub, "todo.create", 1)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Allowed {
		t.Fatalf("result = %+v, want denied for past_due pro plan", res)
	}
	if res.Reason != "subscription_inactive" {
		t.Errorf("Reason = %q, want subscription_inactive", res.Reason)
	}
}

func TestEvaluate_OrgBroadcastNeedsPaidPlan(t *testing.T) {
	e := NewOPAEvaluator()

	res, err := e.Evaluate(context.Background(), nil, "notification.org_broadcast", 0)
	if err != nil {
		t.Fatalf("Evaluate free: %v", err)
	}
	if res.Allowed {
		t.Fatalf("result = %+v, want denied on free plan", res)
	}

	res, err = e.Evaluate(context.Background(), activeSub(domain.PlanPro), "notification.org_broadcast", 0)
	if err != nil {
		t.Fatalf("Evaluate pro: %v", err)
	}
	if !res.Allowed {
		t.Fatalf("result = %+v, want allowed on pro plan", res)
	}
}

func TestEvaluate_UnknownFeature(t *testing.T) {
	e := NewOPAEvaluator()
	res, err := e.Evaluate(context.Background(), activeSub(domain.PlanPro), "nonexistent.feature", 0)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Allowed {
		t.Fatalf("result = %+v, want denied for unknown feature", res)
	}
	if res.Reason != "feature_not_entitled" {
		t.Errorf("Reason = %q, want feature_not_entitled", res.Reason)
	}
}
