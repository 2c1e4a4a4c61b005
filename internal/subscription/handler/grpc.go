package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	subscriptionv1 "teamspace/backend/api/generated/subscription/v1"
	membershiprepo "teamspace/backend/internal/membership/repository"
	"teamspace/backend/internal/platform/rbac"
	"teamspace/backend/internal/subscription/domain"
	"teamspace/backend/internal/subscription/entitlement"
	subscriptionrepo "teamspace/backend/internal/subscription/repository"
)

// Server implements SubscriptionService (proto server) for billing state and
// entitlement checks.
// Proto: subscription/subscription.proto -> internal/subscription/handler.
type Server struct {
	subscriptionv1.UnimplementedSubscriptionServiceServer
	subRepo        subscriptionrepo.Repository
	membershipRepo membershiprepo.Repository
	evaluator      entitlement.Evaluator
}

// NewServer returns a new Subscription gRPC server.
func NewServer(subRepo subscriptionrepo.Repository, membershipRepo membershiprepo.Repository, evaluator entitlement.Evaluator) *Server {
	return &Server{subRepo: subRepo, membershipRepo: membershipRepo, evaluator: evaluator}
}

// GetSubscription returns the active org's subscription. Orgs with no synced
// subscription report the free plan.
func (s *Server) GetSubscription(ctx context.Context, req *subscriptionv1.GetSubscriptionRequest) (*subscriptionv1.GetSubscriptionResponse, error) {
	orgID, _, err := rbac.RequireOrgMember(ctx, s.membershipRepo)
	if err != nil {
		return nil, err
	}
	sub, err := s.subRepo.GetByOrg(ctx, orgID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to get subscription")
	}
	if sub == nil {
		return &subscriptionv1.GetSubscriptionResponse{Subscription: &subscriptionv1.Subscription{
			OrgId:  orgID,
			Plan:   string(domain.PlanFree),
			Status: string(domain.StatusInactive),
		}}, nil
	}
	return &subscriptionv1.GetSubscriptionResponse{Subscription: &subscriptionv1.Subscription{
		Id:        sub.ID,
		OrgId:     sub.OrgID,
		Plan:      string(sub.Plan),
		Status:    string(sub.Status),
		UpdatedAt: timestamppb.New(sub.UpdatedAt),
	}}, nil
}

// CheckEntitlement evaluates whether the active org's plan entitles it to a
// feature at the given usage level.
func (s *Server) CheckEntitlement(ctx context.Context, req *subscriptionv1.CheckEntitlementRequest) (*subscriptionv1.CheckEntitlementResponse, error) {
	orgID, _, err := rbac.RequireOrgMember(ctx, s.membershipRepo)
	if err != nil {
		return nil, err
	}
	feature := req.GetFeature()
	if feature == "" {
		return nil, status.Error(codes.InvalidArgument, "feature required")
	}
	sub, err := s.subRepo.GetByOrg(ctx, orgID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to get subscription")
	}
	res, err := s.evaluator.Evaluate(ctx, sub, feature, int(req.GetUsage()))
	if err != nil {
		return nil, status.Error(codes.Internal, "entitlement evaluation failed")
	}
	return &subscriptionv1.CheckEntitlementResponse{
		Allowed: res.Allowed,
		Limit:   int32(res.Limit),
		Reason:  res.Reason,
	}, nil
}
