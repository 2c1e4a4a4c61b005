package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	sessionv1 "teamspace/backend/api/generated/session/v1"
	"teamspace/backend/internal/platform/scope"
	"teamspace/backend/internal/session/domain"
	sessionrepo "teamspace/backend/internal/session/repository"
)

// Server implements SessionService (proto server): self-service session
// inspection and revocation.
// Proto: session/session.proto -> internal/session/handler.
type Server struct {
	sessionv1.UnimplementedSessionServiceServer
	sessionRepo sessionrepo.Repository
}

// NewServer returns a new Session gRPC server.
func NewServer(sessionRepo sessionrepo.Repository) *Server {
	return &Server{sessionRepo: sessionRepo}
}

// ListMySessions returns all of the caller's sessions, newest first. The
// session backing this request is flagged as current.
func (s *Server) ListMySessions(ctx context.Context, req *sessionv1.ListMySessionsRequest) (*sessionv1.ListMySessionsResponse, error) {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}
	currentID, _ := scope.SessionIDFromContext(ctx)
	list, err := s.sessionRepo.ListByUser(ctx, ident.UserID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to list sessions")
	}
	sessions := make([]*sessionv1.Session, len(list))
	for i := range list {
		sessions[i] = domainSessionToProto(list[i], currentID)
	}
	return &sessionv1.ListMySessionsResponse{Sessions: sessions}, nil
}

// RevokeSession revokes one of the caller's sessions. Another user's session
// id reports NotFound rather than revealing that it exists.
func (s *Server) RevokeSession(ctx context.Context, req *sessionv1.RevokeSessionRequest) (*sessionv1.RevokeSessionResponse, error) {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}
	sessionID := req.GetSessionId()
	if sessionID == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id required")
	}
	ses, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to get session")
	}
	if ses == nil || ses.UserID != ident.UserID {
		return nil, status.Error(codes.NotFound, "session not found")
	}
	if err := s.sessionRepo.Revoke(ctx, sessionID); err != nil {
		return nil, status.Error(codes.Internal, "failed to revoke session")
	}
	return &sessionv1.RevokeSessionResponse{}, nil
}

func domainSessionToProto(ses *domain.Session, currentID string) *sessionv1.Session {
	out := &sessionv1.Session{
		Id:          ses.ID,
		ActiveOrgId: ses.ActiveOrgID,
		IpAddress:   ses.IPAddress,
		Revoked:     ses.RevokedAt != nil,
		Current:     ses.ID == currentID,
		CreatedAt:   timestamppb.New(ses.CreatedAt),
		ExpiresAt:   timestamppb.New(ses.ExpiresAt),
	}
	if ses.LastSeenAt != nil {
		out.LastSeenAt = timestamppb.New(*ses.LastSeenAt)
	}
	return out
}
