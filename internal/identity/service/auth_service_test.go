package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	identitydomain "teamspace/backend/internal/identity/domain"
	membershipdomain "teamspace/backend/internal/membership/domain"
	"teamspace/backend/internal/platform/scope"
	"teamspace/backend/internal/security"
	sessiondomain "teamspace/backend/internal/session/domain"
	userdomain "teamspace/backend/internal/user/domain"
)

type memUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*userdomain.User
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byEmail[email], nil
}

func (r *memUserRepo) Create(ctx context.Context, u *userdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byEmail[u.Email] = u
	return nil
}

type memIdentityRepo struct {
	mu sync.Mutex
	m  map[string]*identitydomain.Identity
}

func (r *memIdentityRepo) GetByUserAndProvider(ctx context.Context, userID string, provider identitydomain.IdentityProvider) (*identitydomain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.m {
		if i.UserID == userID && i.Provider == provider {
			return i, nil
		}
	}
	return nil, nil
}

func (r *memIdentityRepo) Create(ctx context.Context, i *identitydomain.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[i.ID] = i
	return nil
}

type memSessionRepo struct {
	mu sync.Mutex
	m  map[string]*sessiondomain.Session
}

func (r *memSessionRepo) GetByID(ctx context.Context, id string) (*sessiondomain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.m[id]; ok {
		s2 := *s
		return &s2, nil
	}
	return nil, nil
}

func (r *memSessionRepo) Create(ctx context.Context, s *sessiondomain.Session) error {
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
		t := time.Now().UTC()
		s.RevokedAt = &t
	}
	return nil
}

func (r *memSessionRepo) RevokeAllByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := time.Now().UTC()
	for _, s := range r.m {
		if s.UserID == userID && s.RevokedAt == nil {
			s.RevokedAt = &t
		}
	}
	return nil
}

func (r *memSessionRepo) UpdateRefreshToken(ctx context.Context, sessionID, jti, refreshTokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.m[sessionID]; ok {
		s.RefreshJti = jti
		s.RefreshTokenHash = refreshTokenHash
	}
	return nil
}

func (r *memSessionRepo) UpdateLastSeen(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.m[id]; ok {
		s.LastSeenAt = &at
	}
	return nil
}

func (r *memSessionRepo) UpdateActiveOrg(ctx context.Context, sessionID, orgID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.m[sessionID]; ok {
		s.ActiveOrgID = orgID
	}
	return nil
}

type memMembershipRepo struct {
	mu sync.Mutex
	m  map[string]*membershipdomain.Membership // keyed by userID|orgID
}

func (r *memMembershipRepo) GetByUserAndOrg(ctx context.Context, userID, orgID string) (*membershipdomain.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.m[userID+"|"+orgID], nil
}

type testEnv struct {
	svc         *AuthService
	users       *memUserRepo
	sessions    *memSessionRepo
	memberships *memMembershipRepo
}

const testPassword = "Sup3r-Secret-Pass!"

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("test token provider: %v", err)
	}
	users := &memUserRepo{byEmail: map[string]*userdomain.User{}}
	identities := &memIdentityRepo{m: map[string]*identitydomain.Identity{}}
	sessions := &memSessionRepo{m: map[string]*sessiondomain.Session{}}
	memberships := &memMembershipRepo{m: map[string]*membershipdomain.Membership{}}
	svc := NewAuthService(users, identities, sessions, memberships, security.NewHasher(4), tokens, time.Hour)
	return &testEnv{svc: svc, users: users, sessions: sessions, memberships: memberships}
}

func (e *testEnv) register(t *testing.T, email string) string {
	t.Helper()
	res, err := e.svc.Register(context.Background(), email, testPassword, "Test User")
	if err != nil {
		t.Fatalf("Register(%s): %v", email, err)
	}
	return res.UserID
}

func (e *testEnv) addMembership(userID, orgID string) {
	e.memberships.m[userID+"|"+orgID] = &membershipdomain.Membership{
		ID: userID + "-" + orgID, UserID: userID, OrgID: orgID, Role: membershipdomain.RoleMember,
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@example.com")
	if _, err := env.svc.Register(context.Background(), "a@example.com", testPassword, ""); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	env := newTestEnv(t)
	for _, pw := range []string{"short", "alllowercaseletters1!", "ALLUPPERCASELETTERS1!", "NoNumbersHere!!!", "NoSymbolsHere1234"} {
		if _, err := env.svc.Register(context.Background(), "b@example.com", pw, ""); err == nil {
			t.Errorf("password %q accepted", pw)
		}
	}
}

func TestLogin_NoOrg(t *testing.T) {
	env := newTestEnv(t)
	userID := env.register(t, "a@example.com")

	res, err := env.svc.Login(context.Background(), "a@example.com", testPassword, "", "127.0.0.1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.UserID != userID || res.OrgID != "" {
		t.Fatalf("result = %+v, want personal session for %s", res, userID)
	}
	if res.AccessToken == "" || res.RefreshToken == "" {
		t.Fatal("missing tokens")
	}
}

func TestLogin_WithOrgRequiresMembership(t *testing.T) {
	env := newTestEnv(t)
	userID := env.register(t, "a@example.com")

	if _, err := env.svc.Login(context.Background(), "a@example.com", testPassword, "org1", ""); !errors.Is(err, ErrNotOrgMember) {
		t.Fatalf("err = %v, want ErrNotOrgMember", err)
	}

	env.addMembership(userID, "org1")
	res, err := env.svc.Login(context.Background(), "a@example.com", testPassword, "org1", "")
	if err != nil {
		t.Fatalf("Login with org: %v", err)
	}
	if res.OrgID != "org1" {
		t.Fatalf("OrgID = %q, want org1", res.OrgID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@example.com")
	if _, err := env.svc.Login(context.Background(), "a@example.com", "Wrong-Password-123!", "", ""); err == nil {
		t.Fatal("expected error")
	} else if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@example.com")
	login, err := env.svc.Login(context.Background(), "a@example.com", testPassword, "", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	first, err := env.svc.Refresh(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if first.RefreshToken == login.RefreshToken {
		t.Fatal("refresh token not rotated")
	}

	// The rotated token keeps working.
	if _, err := env.svc.Refresh(context.Background(), first.RefreshToken); err != nil {
		t.Fatalf("second Refresh: %v", err)
	}
}

func TestRefresh_ReuseRevokesAllSessions(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@example.com")
	login, err := env.svc.Login(context.Background(), "a@example.com", testPassword, "", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	other, err := env.svc.Login(context.Background(), "a@example.com", testPassword, "", "")
	if err != nil {
		t.Fatalf("second Login: %v", err)
	}

	if _, err := env.svc.Refresh(context.Background(), login.RefreshToken); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	// Presenting the already-rotated token is reuse.
	if _, err := env.svc.Refresh(context.Background(), login.RefreshToken); !errors.Is(err, ErrRefreshTokenReuse) {
		t.Fatalf("err = %v, want ErrRefreshTokenReuse", err)
	}

	// Every session of the user is now revoked, including the unrelated one.
	if _, err := env.svc.Refresh(context.Background(), other.RefreshToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("other session err = %v, want ErrInvalidRefreshToken", err)
	}
}

func TestSwitchOrganization_UpdatesSessionAndTokens(t *testing.T) {
	env := newTestEnv(t)
	userID := env.register(t, "a@example.com")
	env.addMembership(userID, "org1")
	login, err := env.svc.Login(context.Background(), "a@example.com", testPassword, "", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	var sessionID string
	for id := range env.sessions.m {
		sessionID = id
	}
	ctx := scope.WithSessionID(scope.WithIdentity(context.Background(), scope.Identity{UserID: userID}), sessionID)

	res, err := env.svc.SwitchOrganization(ctx, "org1")
	if err != nil {
		t.Fatalf("SwitchOrganization: %v", err)
	}
	if res.OrgID != "org1" {
		t.Fatalf("OrgID = %q, want org1", res.OrgID)
	}
	if env.sessions.m[sessionID].ActiveOrgID != "org1" {
		t.Fatal("session active org not updated")
	}

	// Refreshing the post-switch token carries the new org claim.
	next, err := env.svc.Refresh(context.Background(), res.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh after switch: %v", err)
	}
	if next.OrgID != "org1" {
		t.Fatalf("refreshed OrgID = %q, want org1", next.OrgID)
	}

	// The pre-switch refresh token was rotated away; presenting it is reuse.
	// This must come last: reuse detection revokes every session of the user.
	if _, err := env.svc.Refresh(context.Background(), login.RefreshToken); !errors.Is(err, ErrRefreshTokenReuse) {
		t.Fatalf("stale token err = %v, want ErrRefreshTokenReuse", err)
	}
}

func TestSwitchOrganization_NotMember(t *testing.T) {
	env := newTestEnv(t)
	userID := env.register(t, "a@example.com")
	ctx := scope.WithSessionID(scope.WithIdentity(context.Background(), scope.Identity{UserID: userID}), "sess-1")
	if _, err := env.svc.SwitchOrganization(ctx, "org1"); !errors.Is(err, ErrNotOrgMember) {
		t.Fatalf("err = %v, want ErrNotOrgMember", err)
	}
}

func TestSwitchOrganization_ToPersonalContext(t *testing.T) {
	env := newTestEnv(t)
	userID := env.register(t, "a@example.com")
	env.addMembership(userID, "org1")
	if _, err := env.svc.Login(context.Background(), "a@example.com", testPassword, "org1", ""); err != nil {
		t.Fatalf("Login: %v", err)
	}
	var sessionID string
	for id := range env.sessions.m {
		sessionID = id
	}
	ctx := scope.WithSessionID(scope.WithIdentity(context.Background(), scope.Identity{UserID: userID, ActiveOrgID: "org1"}), sessionID)

	res, err := env.svc.SwitchOrganization(ctx, "")
	if err != nil {
		t.Fatalf("SwitchOrganization to personal: %v", err)
	}
	if res.OrgID != "" {
		t.Fatalf("OrgID = %q, want empty", res.OrgID)
	}
	if env.sessions.m[sessionID].ActiveOrgID != "" {
		t.Fatal("session still carries an active org")
	}
}

func TestLogout_RevokesSession(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@example.com")
	login, err := env.svc.Login(context.Background(), "a@example.com", testPassword, "", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := env.svc.Logout(context.Background(), login.RefreshToken); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := env.svc.Refresh(context.Background(), login.RefreshToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("err = %v, want ErrInvalidRefreshToken after logout", err)
	}
}
