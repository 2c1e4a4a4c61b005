package rbac

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"teamspace/backend/internal/platform/scope"
)

// RequireOrgMember ensures the caller is authenticated with an active org and
// is a member of it (any role). Record-level access does not need this — the
// ownership stamp carries the org — but org-surface RPCs (member listing,
// audit logs) do.
// Returns (orgID, userID, nil) on success; returns a gRPC error (Unauthenticated or PermissionDenied) on failure.
func RequireOrgMember(ctx context.Context, getter OrgMembershipGetter) (orgID, userID string, err error) {
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
	return ident.ActiveOrgID, ident.UserID, nil
}
