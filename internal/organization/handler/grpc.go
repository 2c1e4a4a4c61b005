package handler

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	organizationv1 "teamspace/backend/api/generated/organization/v1"
	membershipdomain "teamspace/backend/internal/membership/domain"
	membershiprepo "teamspace/backend/internal/membership/repository"
	"teamspace/backend/internal/organization/domain"
	orgrepo "teamspace/backend/internal/organization/repository"
	"teamspace/backend/internal/platform/scope"
)

// Server implements OrganizationService (proto server).
// Proto: organization/organization.proto -> internal/organization/handler.
type Server struct {
	organizationv1.UnimplementedOrganizationServiceServer
	orgRepo        orgrepo.Repository
	membershipRepo membershiprepo.Repository
}

// NewServer returns a new Organization gRPC server.
func NewServer(orgRepo orgrepo.Repository, membershipRepo membershiprepo.Repository) *Server {
	return &Server{orgRepo: orgRepo, membershipRepo: membershipRepo}
}

// CreateOrganization creates an org and makes the caller its owner. The new
// org does not become active; the client must SwitchOrganization into it.
func (s *Server) CreateOrganization(ctx context.Context, req *organizationv1.CreateOrganizationRequest) (*organizationv1.CreateOrganizationResponse, error) {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}
	o := &domain.Org{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.GetName()),
		Slug:      strings.TrimSpace(strings.ToLower(req.GetSlug())),
		Logo:      strings.TrimSpace(req.GetLogo()),
		CreatedAt: time.Now().UTC(),
	}
	if err := o.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	existing, err := s.orgRepo.GetBySlug(ctx, o.Slug)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to check slug")
	}
	if existing != nil {
		return nil, status.Error(codes.AlreadyExists, "slug already taken")
	}
	if err := s.orgRepo.Create(ctx, o); err != nil {
		return nil, status.Error(codes.Internal, "failed to create organization")
	}
	m := &membershipdomain.Membership{
		ID:        uuid.New().String(),
		UserID:    ident.UserID,
		OrgID:     o.ID,
		Role:      membershipdomain.RoleOwner,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.membershipRepo.Create(ctx, m); err != nil {
		return nil, status.Error(codes.Internal, "failed to create owner membership")
	}
	return &organizationv1.CreateOrganizationResponse{Organization: domainOrgToProto(o)}, nil
}

// GetOrganization returns an org the caller is a member of. Defaults to the
// active org when org_id is empty.
func (s *Server) GetOrganization(ctx context.Context, req *organizationv1.GetOrganizationRequest) (*organizationv1.GetOrganizationResponse, error) {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}
	orgID := req.GetOrgId()
	if orgID == "" {
		orgID = ident.ActiveOrgID
	}
	if orgID == "" {
		return nil, status.Error(codes.InvalidArgument, "org_id required")
	}
	m, err := s.membershipRepo.GetByUserAndOrg(ctx, ident.UserID, orgID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to resolve membership")
	}
	if m == nil {
		return nil, status.Error(codes.PermissionDenied, "not a member of this organization")
	}
	o, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to get organization")
	}
	if o == nil {
		return nil, status.Error(codes.NotFound, "organization not found")
	}
	return &organizationv1.GetOrganizationResponse{Organization: domainOrgToProto(o)}, nil
}

// ListMyOrganizations returns every org the caller belongs to.
func (s *Server) ListMyOrganizations(ctx context.Context, req *organizationv1.ListMyOrganizationsRequest) (*organizationv1.ListMyOrganizationsResponse, error) {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}
	orgs, err := s.orgRepo.ListByUser(ctx, ident.UserID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to list organizations")
	}
	out := make([]*organizationv1.Organization, len(orgs))
	for i := range orgs {
		out[i] = domainOrgToProto(orgs[i])
	}
	return &organizationv1.ListMyOrganizationsResponse{Organizations: out}, nil
}

func domainOrgToProto(o *domain.Org) *organizationv1.Organization {
	return &organizationv1.Organization{
		Id:        o.ID,
		Name:      o.Name,
		Slug:      o.Slug,
		Logo:      o.Logo,
		CreatedAt: timestamppb.New(o.CreatedAt),
	}
}
