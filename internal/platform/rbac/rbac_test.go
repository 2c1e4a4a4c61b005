package rbac

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"teamspace/backend/internal/membership/domain"
	"teamspace/backend/internal/platform/scope"
)

type stubMembershipGetter struct {
	m   map[string]*domain.Membership // keyed by userID|orgID
	err error
}

func (g *stubMembershipGetter) GetByUserAndOrg(ctx context.Context, userID, orgID string) (*domain.Membership, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.m[userID+"|"+orgID], nil
}

func ctxWith(userID, orgID string) context.Context {
	return scope.WithIdentity(context.Background(), scope.Identity{UserID: userID, ActiveOrgID: orgID})
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("error is not a gRPC status: %v", err)
	}
	if st.Code() != code {
		t.Fatalf("status code = %v, want %v", st.Code(), code)
	}
}

func TestRequireOrgMember(t *testing.T) {
	getter := &stubMembershipGetter{m: map[string]*domain.Membership{
		"u1|org1": {UserID: "u1", OrgID: "org1", Role: domain.RoleMember},
	}}

	orgID, userID, err := RequireOrgMember(ctxWith("u1", "org1"), getter)
	if err != nil {
		t.Fatalf("RequireOrgMember: %v", err)
	}
	if orgID != "org1" || userID != "u1" {
		t.Fatalf("got (%q, %q), want (org1, u1)", orgID, userID)
	}

	_, _, err = RequireOrgMember(ctxWith("u2", "org1"), getter)
	wantCode(t, err, codes.PermissionDenied)

	_, _, err = RequireOrgMember(ctxWith("u1", ""), getter)
	wantCode(t, err, codes.Unauthenticated)

	_, _, err = RequireOrgMember(context.Background(), getter)
	wantCode(t, err, codes.Unauthenticated)

	_, _, err = RequireOrgMember(ctxWith("u1", "org1"), &stubMembershipGetter{err: errors.New("db down")})
	wantCode(t, err, codes.Internal)
}

func TestRequireOrgAdmin(t *testing.T) {
	getter := &stubMembershipGetter{m: map[string]*domain.Membership{
		"owner|org1":  {UserID: "owner", OrgID: "org1", Role: domain.RoleOwner},
		"admin|org1":  {UserID: "admin", OrgID: "org1", Role: domain.RoleAdmin},
		"member|org1": {UserID: "member", OrgID: "org1", Role: domain.RoleMember},
	}}

	for _, userID := range []string{"owner", "admin"} {
		if _, _, err := RequireOrgAdmin(ctxWith(userID, "org1"), getter); err != nil {
			t.Errorf("RequireOrgAdmin(%s): %v", userID, err)
		}
	}

	_, _, err := RequireOrgAdmin(ctxWith("member", "org1"), getter)
	wantCode(t, err, codes.PermissionDenied)

	_, _, err = RequireOrgAdmin(ctxWith("stranger", "org1"), getter)
	wantCode(t, err, codes.PermissionDenied)

	_, _, err = RequireOrgAdmin(context.Background(), getter)
	wantCode(t, err, codes.Unauthenticated)
}
