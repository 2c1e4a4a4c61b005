package rbac

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"teamspace/backend/internal/membership/domain"
	"teamspace/backend/internal/platform/scope"
)

// OrgMembershipGetter returns a user's membership in an org. Used to resolve caller role.
type OrgMembershipGetter interface {
	GetByUserAndOrg(ctx context.Context, userID, orgID string) (*domain.Membership, error)
}

// RequireOrgAdmin ensures the caller is authenticated and has role owner or admin in the active org.
// Returns (orgID, userID, nil) on success; returns a gRPC error (Unauthenticated or PermissionDenied) on failure.
func RequireOrgAdmin(ctx context.Context, getter OrgMembershipGetter) (orgID, userID string, err error) {
	ident, ok := scope.FromContext(ctx)
	if !ok || ident.UserID == "" || ident.ActiveOrgID == "" {
		return "", "", status.Error(codes.Unauthenticated, "org and user context required")
	}
	m, err := getter.GetByUserAndOrg(ctx, ident.UserID, ident.ActiveOrgID)
	if err != nil {
		return "", "", status.Error(codes.Internal, "failed to resolve membership")
	}
	if m == nil {
		return "", "", status.Error(codes.PermissionDenied, "not a member of this organization")
	}
	if m.Role != domain.RoleOwner && m.Role != domain.RoleAdmin {
		return "", "", status.Error(codes.PermissionDenied, "organization admin or owner required")
	}
	return ident.ActiveOrgID, ident.UserID, nil
}
