package interceptors

import (
	"context"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"teamspace/backend/internal/platform/scope"
	"teamspace/backend/internal/security"
	sessiondomain "teamspace/backend/internal/session/domain"
)

type stubSessionGetter struct {
	mu sync.Mutex
	m  map[string]*sessiondomain.Session
}

func (g *stubSessionGetter) GetByID(ctx context.Context, id string) (*sessiondomain.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.m[id], nil
}

func liveSession(id, userID string) *sessiondomain.Session {
	return &sessiondomain.Session{
		ID:        id,
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
}

func TestAuthUnary_PublicMethod(t *testing.T) {
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	publicMethods := map[string]bool{
		"/test.Service/PublicMethod": true,
	}
	interceptor := AuthUnary(tokens, nil, publicMethods)

	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "success", nil
	}
	resp, err := interceptor(context.Background(), "request", &grpc.UnaryServerInfo{
		FullMethod: "/test.Service/PublicMethod",
	}, handler)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if resp != "success" {
		t.Errorf("response = %v, want %q", resp, "success")
	}
}

func TestAuthUnary_ProtectedMethod_NoToken(t *testing.T) {
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	interceptor := AuthUnary(tokens, nil, map[string]bool{})

	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "success", nil
	}
	_, err = interceptor(context.Background(), "request", &grpc.UnaryServerInfo{
		FullMethod: "/test.Service/ProtectedMethod",
	}, handler)
	if err == nil {
		t.Fatal("expected error for missing token")
	}
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("error is not a gRPC status: %v", err)
	}
	if st.Code() != codes.Unauthenticated {
		t.Errorf("status code = %v, want %v", st.Code(), codes.Unauthenticated)
	}
}

func TestAuthUnary_ProtectedMethod_ValidToken(t *testing.T) {
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	token, _, _, err := tokens.IssueAccess("session-1", "user-1", "org-1")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	sessions := &stubSessionGetter{m: map[string]*sessiondomain.Session{
		"session-1": liveSession("session-1", "user-1"),
	}}
	interceptor := AuthUnary(tokens, sessions, map[string]bool{})

	ctx := metadata.NewIncomingContext(context.Background(), metadata.New(map[string]string{
		"authorization": "Bearer " + token,
	}))
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		ident, ok := scope.FromContext(ctx)
		if !ok || ident.UserID != "user-1" || ident.ActiveOrgID != "org-1" {
			t.Errorf("identity = %+v, ok = %v, want user-1/org-1", ident, ok)
		}
		sessionID, ok := scope.SessionIDFromContext(ctx)
		if !ok || sessionID != "session-1" {
			t.Errorf("session_id = %q, ok = %v, want session-1", sessionID, ok)
		}
		return "success", nil
	}
	if _, err := interceptor(ctx, "request", &grpc.UnaryServerInfo{
		FullMethod: "/test.Service/ProtectedMethod",
	}, handler); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
}

func TestAuthUnary_GarbageToken(t *testing.T) {
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	interceptor := AuthUnary(tokens, nil, map[string]bool{})

	ctx := metadata.NewIncomingContext(context.Background(), metadata.New(map[string]string{
		"authorization": "Bearer not-a-jwt",
	}))
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "success", nil
	}
	_, err = interceptor(ctx, "request", &grpc.UnaryServerInfo{
		FullMethod: "/test.Service/ProtectedMethod",
	}, handler)
	st, _ := status.FromError(err)
	if st.Code() != codes.Unauthenticated {
		t.Errorf("status code = %v, want %v", st.Code(), codes.Unauthenticated)
	}
}

func TestAuthUnary_RevokedSession(t *testing.T) {
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	token, _, _, err := tokens.IssueAccess("session-1", "user-1", "")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	revoked := liveSession("session-1", "user-1")
	now := time.Now().UTC()
	revoked.RevokedAt = &now
	sessions := &stubSessionGetter{m: map[string]*sessiondomain.Session{"session-1": revoked}}
	interceptor := AuthUnary(tokens, sessions, map[string]bool{})

	ctx := metadata.NewIncomingContext(context.Background(), metadata.New(map[string]string{
		"authorization": "Bearer " + token,
	}))
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler called for revoked session")
		return nil, nil
	}
	_, err = interceptor(ctx, "request", &grpc.UnaryServerInfo{
		FullMethod: "/test.Service/ProtectedMethod",
	}, handler)
	st, _ := status.FromError(err)
	if st.Code() != codes.Unauthenticated {
		t.Errorf("status code = %v, want %v", st.Code(), codes.Unauthenticated)
	}
}

func TestAuthUnary_UnknownSession(t *testing.T) {
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	token, _, _, err := tokens.IssueAccess("session-gone", "user-1", "")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	sessions := &stubSessionGetter{m: map[string]*sessiondomain.Session{}}
	interceptor := AuthUnary(tokens, sessions, map[string]bool{})

	ctx := metadata.NewIncomingContext(context.Background(), metadata.New(map[string]string{
		"authorization": "Bearer " + token,
	}))
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "success", nil
	}
	_, err = interceptor(ctx, "request", &grpc.UnaryServerInfo{
		FullMethod: "/test.Service/ProtectedMethod",
	}, handler)
	st, _ := status.FromError(err)
	if st.Code() != codes.Unauthenticated {
		t.Errorf("status code = %v, want %v", st.Code(), codes.Unauthenticated)
	}
}

func TestExtractBearer(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"BEARER abc", "abc"},
		{"Basic abc", ""},
		{"Bearer", ""},
		{"", ""},
	}
	for _, c := range cases {
		md := metadata.MD{}
		if c.header != "" {
			md.Set("authorization", c.header)
		}
		ctx := metadata.NewIncomingContext(context.Background(), md)
		if got := extractBearer(ctx); got != c.want {
			t.Errorf("extractBearer(%q) = %q, want %q", c.header, got, c.want)
		}
	}
}
