package handler

import (
	"context"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	userv1 "teamspace/backend/api/generated/user/v1"
	"teamspace/backend/internal/platform/scope"
	"teamspace/backend/internal/user/domain"
	userrepo "teamspace/backend/internal/user/repository"
)

// Server implements UserService (proto server) for the caller's profile.
// Proto: user/user.proto -> internal/user/handler.
type Server struct {
	userv1.UnimplementedUserServiceServer
	userRepo userrepo.Repository
}

// NewServer returns a new User gRPC server.
func NewServer(userRepo userrepo.Repository) *Server {
	return &Server{userRepo: userRepo}
}

// GetMe returns the authenticated user's profile.
func (s *Server) GetMe(ctx context.Context, req *userv1.GetMeRequest) (*userv1.GetMeResponse, error) {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}
	u, err := s.userRepo.GetByID(ctx, ident.UserID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to get user")
	}
	if u == nil {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	return &userv1.GetMeResponse{User: domainUserToProto(u)}, nil
}

// UpdateMe updates the caller's profile fields.
func (s *Server) UpdateMe(ctx context.Context, req *userv1.UpdateMeRequest) (*userv1.UpdateMeResponse, error) {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}
	u, err := s.userRepo.GetByID(ctx, ident.UserID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to get user")
	}
	if u == nil {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	if name := strings.TrimSpace(req.GetName()); name != "" {
		u.Name = name
	}
	if image := strings.TrimSpace(req.GetImage()); image != "" {
		u.Image = image
	}
	u.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, status.Error(codes.Internal, "failed to update user")
	}
	return &userv1.UpdateMeResponse{User: domainUserToProto(u)}, nil
}

func domainUserToProto(u *domain.User) *userv1.User {
	return &userv1.User{
		Id:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Image:     u.Image,
		Status:    string(u.Status),
		CreatedAt: timestamppb.New(u.CreatedAt),
		UpdatedAt: timestamppb.New(u.UpdatedAt),
	}
}
