package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	authv1 "teamspace/backend/api/generated/auth/v1"
	"teamspace/backend/internal/audit"
	"teamspace/backend/internal/identity/service"
	"teamspace/backend/internal/server/interceptors"
)

// AuthServer implements AuthService (proto server) for register, login,
// refresh, logout, and org switching.
// Proto: auth/auth.proto -> internal/identity/handler.
type AuthServer struct {
	authv1.UnimplementedAuthServiceServer
	auth        *service.AuthService
	auditLogger audit.AuditLogger
}

// NewAuthServer returns a new Auth gRPC server. auditLogger may be nil.
func NewAuthServer(auth *service.AuthService, auditLogger audit.AuditLogger) *AuthServer {
	return &AuthServer{auth: auth, auditLogger: auditLogger}
}

// Register creates a user with a local email/password identity.
func (s *AuthServer) Register(ctx context.Context, req *authv1.RegisterRequest) (*authv1.RegisterResponse, error) {
	res, err := s.auth.Register(ctx, req.GetEmail(), req.GetPassword(), req.GetName())
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyRegistered) {
			return nil, status.Error(codes.AlreadyExists, err.Error())
		}
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &authv1.RegisterResponse{UserId: res.UserID}, nil
}

// Login authenticates and returns access and refresh tokens. org_id is
// optional; without it the session starts in the personal context.
func (s *AuthServer) Login(ctx context.Context, req *authv1.LoginRequest) (*authv1.LoginResponse, error) {
	res, err := s.auth.Login(ctx, req.GetEmail(), req.GetPassword(), req.GetOrgId(), interceptors.ClientIP(ctx))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			s.logEvent(ctx, "", "", "login_failure", "session")
			return nil, status.Error(codes.Unauthenticated, "invalid credentials")
		case errors.Is(err, service.ErrNotOrgMember):
			s.logEvent(ctx, req.GetOrgId(), "", "login_failure", "session")
			return nil, status.Error(codes.PermissionDenied, "not a member of this organization")
		}
		return nil, status.Error(codes.Internal, "login failed")
	}
	s.logEvent(ctx, res.OrgID, res.UserID, "login", "session")
	return &authv1.LoginResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    timestamppb.New(res.ExpiresAt),
		UserId:       res.UserID,
		OrgId:        res.OrgID,
	}, nil
}

// Refresh rotates the refresh token and returns a new token pair.
func (s *AuthServer) Refresh(ctx context.Context, req *authv1.RefreshRequest) (*authv1.RefreshResponse, error) {
	res, err := s.auth.Refresh(ctx, req.GetRefreshToken())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRefreshTokenReuse):
			s.logEvent(ctx, "", "", "refresh_reuse_detected", "session")
			return nil, status.Error(codes.Unauthenticated, "refresh token reuse detected")
		case errors.Is(err, service.ErrInvalidRefreshToken):
			return nil, status.Error(codes.Unauthenticated, "invalid or expired refresh token")
		}
		return nil, status.Error(codes.Internal, "refresh failed")
	}
	return &authv1.RefreshResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    timestamppb.New(res.ExpiresAt),
		UserId:       res.UserID,
		OrgId:        res.OrgID,
	}, nil
}

// Logout revokes the session behind the refresh token, or the Bearer session
// when no refresh token is given. Always succeeds.
func (s *AuthServer) Logout(ctx context.Context, req *authv1.LogoutRequest) (*authv1.LogoutResponse, error) {
	if err := s.auth.Logout(ctx, req.GetRefreshToken()); err != nil {
		return nil, status.Error(codes.Internal, "logout failed")
	}
	s.logEvent(ctx, "", "", "logout", "session")
	return &authv1.LogoutResponse{}, nil
}

// SwitchOrganization changes the session's active org and returns fresh
// tokens carrying the new org claim.
func (s *AuthServer) SwitchOrganization(ctx context.Context, req *authv1.SwitchOrganizationRequest) (*authv1.SwitchOrganizationResponse, error) {
	res, err := s.auth.SwitchOrganization(ctx, req.GetOrgId())
	if err != nil {
		if errors.Is(err, service.ErrNotOrgMember) {
			return nil, status.Error(codes.PermissionDenied, "not a member of this organization")
		}
		return nil, status.Error(codes.Internal, "organization switch failed")
	}
	s.logEvent(ctx, res.OrgID, res.UserID, "switch_org", "session")
	return &authv1.SwitchOrganizationResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    timestamppb.New(res.ExpiresAt),
		OrgId:        res.OrgID,
	}, nil
}

func (s *AuthServer) logEvent(ctx context.Context, orgID, userID, action, resource string) {
	if s.auditLogger == nil {
		return
	}
	s.auditLogger.LogEvent(ctx, orgID, userID, action, resource, "")
}
