package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	membershipv1 "teamspace/backend/api/generated/membership/v1"
	"teamspace/backend/internal/membership/domain"
	membershiprepo "teamspace/backend/internal/membership/repository"
	"teamspace/backend/internal/platform/rbac"
)

// Server implements MembershipService (proto server) for org member management.
// Proto: membership/membership.proto -> internal/membership/handler.
type Server struct {
	membershipv1.UnimplementedMembershipServiceServer
	membershipRepo membershiprepo.Repository
}

// NewServer returns a new Membership gRPC server.
func NewServer(membershipRepo membershiprepo.Repository) *Server {
	return &Server{membershipRepo: membershipRepo}
}

// AddMember adds a user to the caller's active org. Admin or owner only.
func (s *Server) AddMember(ctx context.Context, req *membershipv1.AddMemberRequest) (*membershipv1.AddMemberResponse, error) {
	orgID, _, err := rbac.RequireOrgAdmin(ctx, s.membershipRepo)
	if err != nil {
		return nil, err
	}
	userID := req.GetUserId()
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id required")
	}
	role, err := parseRole(req.GetRole())
	if err != nil {
		return nil, err
	}
	existing, err := s.membershipRepo.GetByUserAndOrg(ctx, userID, orgID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to resolve membership")
	}
	if existing != nil {
		return nil, status.Error(codes.AlreadyExists, "user is already a member")
	}
	m := &domain.Membership{
		ID:        uuid.New().String(),
		UserID:    userID,
		OrgID:     orgID,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.membershipRepo.Create(ctx, m); err != nil {
		return nil, status.Error(codes.Internal, "failed to add member")
	}
	return &membershipv1.AddMemberResponse{Membership: domainMembershipToProto(m)}, nil
}

// RemoveMember removes a user from the caller's active org. Admin or owner
// only; owners cannot be removed.
func (s *Server) RemoveMember(ctx context.Context, req *membershipv1.RemoveMemberRequest) (*membershipv1.RemoveMemberResponse, error) {
	orgID, _, err := rbac.RequireOrgAdmin(ctx, s.membershipRepo)
	if err != nil {
		return nil, err
	}
	userID := req.GetUserId()
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id required")
	}
	m, err := s.membershipRepo.GetByUserAndOrg(ctx, userID, orgID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to resolve membership")
	}
	if m == nil {
		return nil, status.Error(codes.NotFound, "membership not found")
	}
	if m.Role == domain.RoleOwner {
		return nil, status.Error(codes.PermissionDenied, "owner cannot be removed")
	}
	if err := s.membershipRepo.Delete(ctx, userID, orgID); err != nil {
		return nil, status.Error(codes.Internal, "failed to remove member")
	}
	return &membershipv1.RemoveMemberResponse{}, nil
}

// UpdateRole changes a member's role in the caller's active org. Admin or
// owner only; the owner role cannot be granted or revoked here.
func (s *Server) UpdateRole(ctx context.Context, req *membershipv1.UpdateRoleRequest) (*membershipv1.UpdateRoleResponse, error) {
	orgID, _, err := rbac.RequireOrgAdmin(ctx, s.membershipRepo)
	if err != nil {
		return nil, err
	}
	userID := req.GetUserId()
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id required")
	}
	role, err := parseRole(req.GetRole())
	if err != nil {
		return nil, err
	}
	if role == domain.RoleOwner {
		return nil, status.Error(codes.InvalidArgument, "owner role cannot be assigned")
	}
	m, err := s.membershipRepo.GetByUserAndOrg(ctx, userID, orgID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to resolve membership")
	}
	if m == nil {
		return nil, status.Error(codes.NotFound, "membership not found")
	}
	if m.Role == domain.RoleOwner {
		return nil, status.Error(codes.PermissionDenied, "owner role cannot be changed")
	}
	if err := s.membershipRepo.UpdateRole(ctx, userID, orgID, role); err != nil {
		return nil, status.Error(codes.Internal, "failed to update role")
	}
	m.Role = role
	return &membershipv1.UpdateRoleResponse{Membership: domainMembershipToProto(m)}, nil
}

// ListMembers returns all memberships of the caller's active org. Any member
// may list.
func (s *Server) ListMembers(ctx context.Context, req *membershipv1.ListMembersRequest) (*membershipv1.ListMembersResponse, error) {
	orgID, _, err := rbac.RequireOrgMember(ctx, s.membershipRepo)
	if err != nil {
		return nil, err
	}
	list, err := s.membershipRepo.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to list members")
	}
	out := make([]*membershipv1.Membership, len(list))
	for i := range list {
		out[i] = domainMembershipToProto(list[i])
	}
	return &membershipv1.ListMembersResponse{Memberships: out}, nil
}

func parseRole(s string) (domain.Role, error) {
	switch domain.Role(s) {
	case domain.RoleAdmin, domain.RoleMember:
		return domain.Role(s), nil
	case domain.RoleOwner:
		return domain.RoleOwner, nil
	case "":
		return domain.RoleMember, nil
	}
	return "", status.Error(codes.InvalidArgument, "unknown role")
}

func domainMembershipToProto(m *domain.Membership) *membershipv1.Membership {
	return &membershipv1.Membership{
		Id:        m.ID,
		UserId:    m.UserID,
		OrgId:     m.OrgID,
		Role:      string(m.Role),
		CreatedAt: timestamppb.New(m.CreatedAt),
	}
}
