package entitlement

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/open-policy-agent/opa/v1/ast"
	"github.com/open-policy-agent/opa/v1/rego"

	"teamspace/backend/internal/subscription/domain"
)

// Default Rego policy encoding the plan matrix. An org with no synced
// subscription evaluates as the free plan.
const defaultRegoPolicy = `package teamspace.entitlements

default allowed = false
default limit = 0
default reason = "feature_not_entitled"

plan := input.subscription.plan

active if {
	input.subscription.status == "active"
}
active if {
	input.subscription.plan == "free"
}

limits := {
	"free": {"todo.create": 100, "org.members": 5},
	"pro":  {"todo.create": 10000, "org.members": 50},
	"team": {"todo.create": 0, "org.members": 0},
}

feature_limit := limits[plan][input.feature]

allowed if {
	active
	feature_limit == 0
}

allowed if {
	active
	feature_limit > 0
	input.usage < feature_limit
}

allowed if {
	active
	input.feature == "notification.org_broadcast"
	plan != "free"
}

limit = feature_limit

reason = "subscription_inactive" if {
	not active
}

reason = "plan_limit_reached" if {
	active
	feature_limit > 0
	input.usage >= feature_limit
}
`

// OPAEvaluator evaluates plan entitlements using OPA Rego.
type OPAEvaluator struct{}

// NewOPAEvaluator returns an OPA-based entitlement evaluator.
func NewOPAEvaluator() *OPAEvaluator {
	return &OPAEvaluator{}
}

// HealthCheck verifies that the in-process OPA Rego engine can compile and
// evaluate the default policy. Returns nil on success.
func (e *OPAEvaluator) HealthCheck(ctx context.Context) error {
	compiler, err := ast.CompileModules(map[string]string{"entitlements.rego": defaultRegoPolicy})
	if err != nil {
		return fmt.Errorf("compile entitlement policy: %w", err)
	}
	q := rego.New(
		rego.Query("data.teamspace.entitlements.allowed"),
		rego.Compiler(compiler),
		rego.Input(e.buildInput(nil, "todo.create", 0)),
	)
	rs, err := q.Eval(ctx)
	if err != nil {
		return fmt.Errorf("eval entitlement policy: %w", err)
	}
	if len(rs) == 0 || len(rs[0].Expressions) == 0 {
		return fmt.Errorf("entitlement query returned no result")
	}
	return nil
}

// Evaluate checks the feature against the org's subscription using the
// default policy. Evaluation failures fail open on the free tier so a broken
// policy cannot lock every org out.
func (e *OPAEvaluator) Evaluate(ctx context.Context, sub *domain.Subscription, feature string, usage int) (Result, error) {
	compiler, err := ast.CompileModules(map[string]string{"entitlements.rego": defaultRegoPolicy})
	if err != nil {
		log.Printf("entitlement: compile failed: %v, using free-tier defaults", err)
		return freeTierResult(feature, usage), nil
	}
	input := e.buildInput(sub, feature, usage)

	out := Result{}
	allowedRS, err := rego.New(
		rego.Query("data.teamspace.entitlements.allowed"),
		rego.Compiler(compiler),
		rego.Input(input),
	).Eval(ctx)
	if err != nil {
		log.Printf("entitlement: eval failed: %v, using free-tier defaults", err)
		return freeTierResult(feature, usage), nil
	}
	if len(allowedRS) > 0 && len(allowedRS[0].Expressions) > 0 {
		if v, ok := allowedRS[0].Expressions[0].Value.(bool); ok {
			out.Allowed = v
		}
	}

	limitRS, err := rego.New(
		rego.Query("data.teamspace.entitlements.limit"),
		rego.Compiler(compiler),
		rego.Input(input),
	).Eval(ctx)
	if err == nil && len(limitRS) > 0 && len(limitRS[0].Expressions) > 0 {
		switch v := limitRS[0].Expressions[0].Value.(type) {
		case json.Number:
			if n, err := v.Int64(); err == nil {
				out.Limit = int(n)
			}
		case float64:
			out.Limit = int(v)
		case int64:
			out.Limit = int(v)
		}
	}

	if !out.Allowed {
		reasonRS, err := rego.New(
			rego.Query("data.teamspace.entitlements.reason"),
			rego.Compiler(compiler),
			rego.Input(input),
		).Eval(ctx)
		if err == nil && len(reasonRS) > 0 && len(reasonRS[0].Expressions) > 0 {
			if v, ok := reasonRS[0].Expressions[0].Value.(string); ok {
				out.Reason = v
			}
		}
	}
	return out, nil
}

func (e *OPAEvaluator) buildInput(sub *domain.Subscription, feature string, usage int) map[string]interface{} {
	subscription := map[string]interface{}{
		"plan":   string(domain.PlanFree),
		"status": string(domain.StatusInactive),
	}
	if sub != nil {
		subscription["plan"] = string(sub.Plan)
		subscription["status"] = string(sub.Status)
	}
	return map[string]interface{}{
		"subscription": subscription,
		"feature":      feature,
		"usage":        usage,
	}
}

// freeTierResult mirrors the free plan row of the policy matrix.
func freeTierResult(feature string, usage int) Result {
	limits := map[string]int{"todo.create": 100, "org.members": 5}
	limit, ok := limits[feature]
	if !ok {
		return Result{Allowed: false, Reason: "feature_not_entitled"}
	}
	if usage >= limit {
		return Result{Allowed: false, Limit: limit, Reason: "plan_limit_reached"}
	}
	return Result{Allowed: true, Limit: limit}
}
