package handler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sessionv1 "teamspace/backend/api/generated/session/v1"
	"teamspace/backend/internal/platform/scope"
	"teamspace/backend/internal/session/domain"
)

type memSessionRepo struct {
	mu      sync.Mutex
	m       map[string]*domain.Session
	listErr error
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{m: map[string]*domain.Session{}}
}

func (r *memSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.m[id]; ok {
		s2 := *s
		return &s2, nil
	}
	return nil, nil
}

func (r *memSessionRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.Session
	for _, s := range r.m {
		if s.UserID == userID {
			s2 := *s
			out = append(out, &s2)
		}
	}
	return out, nil
}

func (r *memSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s2 := *s
	r.m[s.ID] = &s2
	return nil
}

func (r *memSessionRepo) Revoke(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.m[id]; ok && s.RevokedAt == nil {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

func (r *memSessionRepo) RevokeAllByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, s := range r.m {
		if s.UserID == userID && s.RevokedAt == nil {
			s.RevokedAt = &now
		}
	}
	return nil
}

func (r *memSessionRepo) UpdateLastSeen(ctx context.Context, id string, at time.Time) error {
	return nil
}

func (r *memSessionRepo) UpdateRefreshToken(ctx context.Context, sessionID, jti, refreshTokenHash string) error {
	return nil
}

func (r *memSessionRepo) UpdateActiveOrg(ctx context.Context, sessionID, orgID string) error {
	return nil
}

func authedCtx(userID, sessionID string) context.Context {
	ctx := scope.WithIdentity(context.Background(), scope.Identity{UserID: userID})
	if sessionID != "" {
		ctx = scope.WithSessionID(ctx, sessionID)
	}
	return ctx
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

func liveSession(id, userID string) *domain.Session {
	return &domain.Session{
		ID:        id,
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
}

func TestListMySessions_MarksCurrent(t *testing.T) {
	repo := newMemSessionRepo()
	repo.m["s1"] = liveSession("s1", "u1")
	repo.m["s2"] = liveSession("s2", "u1")
	repo.m["s3"] = liveSession("s3", "u2")
	srv := NewServer(repo)

	resp, err := srv.ListMySessions(authedCtx("u1", "s2"), &sessionv1.ListMySessionsRequest{})
	if err != nil {
		t.Fatalf("ListMySessions: %v", err)
	}
	if len(resp.GetSessions()) != 2 {
		t.Fatalf("got %d sessions, want 2", len(resp.GetSessions()))
	}
	for _, s := range resp.GetSessions() {
		if s.GetCurrent() != (s.GetId() == "s2") {
			t.Errorf("session %s current = %v", s.GetId(), s.GetCurrent())
		}
	}
}

func TestListMySessions_ReportsRevoked(t *testing.T) {
	repo := newMemSessionRepo()
	ses := liveSession("s1", "u1")
	now := time.Now()
	ses.RevokedAt = &now
	repo.m["s1"] = ses
	srv := NewServer(repo)

	resp, err := srv.ListMySessions(authedCtx("u1", "s2"), &sessionv1.ListMySessionsRequest{})
	if err != nil {
		t.Fatalf("ListMySessions: %v", err)
	}
	if len(resp.GetSessions()) != 1 || !resp.GetSessions()[0].GetRevoked() {
		t.Fatalf("expected one revoked session, got %+v", resp.GetSessions())
	}
}

func TestListMySessions_Unauthenticated(t *testing.T) {
	srv := NewServer(newMemSessionRepo())
	_, err := srv.ListMySessions(context.Background(), &sessionv1.ListMySessionsRequest{})
	wantCode(t, err, codes.Unauthenticated)
}

func TestListMySessions_RepoError(t *testing.T) {
	repo := newMemSessionRepo()
	repo.listErr = errors.New("db down")
	srv := NewServer(repo)
	_, err := srv.ListMySessions(authedCtx("u1", "s1"), &sessionv1.ListMySessionsRequest{})
	wantCode(t, err, codes.Internal)
}

func TestRevokeSession_Own(t *testing.T) {
	repo := newMemSessionRepo()
	repo.m["s1"] = liveSession("s1", "u1")
	srv := NewServer(repo)

	_, err := srv.RevokeSession(authedCtx("u1", "s2"), &sessionv1.RevokeSessionRequest{SessionId: "s1"})
	if err != nil {
		t.Fatalf("RevokeSession: %v", err)
	}
	if repo.m["s1"].RevokedAt == nil {
		t.Fatal("session not revoked")
	}
}

func TestRevokeSession_OtherUsersSessionIsNotFound(t *testing.T) {
	repo := newMemSessionRepo()
	repo.m["s1"] = liveSession("s1", "u2")
	srv := NewServer(repo)

	_, err := srv.RevokeSession(authedCtx("u1", "s9"), &sessionv1.RevokeSessionRequest{SessionId: "s1"})
	wantCode(t, err, codes.NotFound)
	if repo.m["s1"].RevokedAt != nil {
		t.Fatal("other user's session was revoked")
	}
}

func TestRevokeSession_Missing(t *testing.T) {
	srv := NewServer(newMemSessionRepo())
	_, err := srv.RevokeSession(authedCtx("u1", "s1"), &sessionv1.RevokeSessionRequest{SessionId: "nope"})
	wantCode(t, err, codes.NotFound)
}

func TestRevokeSession_EmptyID(t *testing.T) {
	srv := NewServer(newMemSessionRepo())
	_, err := srv.RevokeSession(authedCtx("u1", "s1"), &sessionv1.RevokeSessionRequest{})
	wantCode(t, err, codes.InvalidArgument)
}
