package security

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndValidateAccess(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	token, jti, expiresAt, err := p.IssueAccess("sess-1", "user-1", "org-1")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if token == "" || jti == "" {
		t.Fatal("empty token or jti")
	}
	if !expiresAt.After(time.Now()) {
		t.Errorf("expiresAt %v is not in the future", expiresAt)
	}
	sessionID, userID, orgID, err := p.ValidateAccess(token)
	if err != nil {
		t.Fatalf("ValidateAccess: %v", err)
	}
	if sessionID != "sess-1" || userID != "user-1" || orgID != "org-1" {
		t.Errorf("claims = %q %q %q", sessionID, userID, orgID)
	}
}

func TestIssueAccess_EmptyOrg(t *testing.T) {
	// Personal sessions carry no active org; the claim round-trips as empty.
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	token, _, _, err := p.IssueAccess("sess-1", "user-1", "")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	_, _, orgID, err := p.ValidateAccess(token)
	if err != nil {
		t.Fatalf("ValidateAccess: %v", err)
	}
	if orgID != "" {
		t.Errorf("orgID = %q, want empty", orgID)
	}
}

func TestIssueAndValidateRefresh(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	token, issuedJTI, _, err := p.IssueRefresh("sess-2", "user-2", "org-2")
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}
	sessionID, jti, userID, orgID, err := p.ValidateRefresh(token)
	if err != nil {
		t.Fatalf("ValidateRefresh: %v", err)
	}
	if sessionID != "sess-2" || userID != "user-2" || orgID != "org-2" {
		t.Errorf("claims = %q %q %q", sessionID, userID, orgID)
	}
	if jti != issuedJTI {
		t.Errorf("jti = %q, want %q", jti, issuedJTI)
	}
}

func TestValidate_KindMismatch(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	refresh, _, _, err := p.IssueRefresh("sess-1", "user-1", "")
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}
	if _, _, _, err := p.ValidateAccess(refresh); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateAccess(refresh token) = %v, want ErrInvalidToken", err)
	}
	access, _, _, err := p.IssueAccess("sess-1", "user-1", "")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, _, _, _, err := p.ValidateRefresh(access); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateRefresh(access token) = %v, want ErrInvalidToken", err)
	}
}

func TestValidate_Garbage(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	if _, _, _, err := p.ValidateAccess("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateAccess = %v, want ErrInvalidToken", err)
	}
}

func TestValidate_WrongIssuer(t *testing.T) {
	signer, err := ParsePrivateKey(testPrivateKeyPEM)
	if err != nil {
		t.Fatalf("ParsePrivateKey: %v", err)
	}
	pub, err := ParsePublicKey(testPublicKeyPEM)
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	issuing := NewTokenProvider(signer, pub, "other-issuer", "test-audience", time.Minute, time.Hour)
	validating := NewTokenProvider(signer, pub, "test-issuer", "test-audience", time.Minute, time.Hour)
	token, _, _, err := issuing.IssueAccess("s", "u", "o")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, _, _, err := validating.ValidateAccess(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateAccess = %v, want ErrInvalidToken", err)
	}
}

func TestHasher(t *testing.T) {
	h := NewHasher(4) // min cost keeps the test fast
	hash, err := h.Hash([]byte("password123"))
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if err := h.Compare(hash, []byte("password123")); err != nil {
		t.Errorf("Compare with correct password: %v", err)
	}
	if err := h.Compare(hash, []byte("wrong")); err == nil {
		t.Error("Compare with wrong password should fail")
	}
}

func TestRefreshTokenHash(t *testing.T) {
	hash := HashRefreshToken("some-token")
	if hash == "" || hash == "some-token" {
		t.Fatalf("unexpected hash %q", hash)
	}
	if !RefreshTokenHashEqual("some-token", hash) {
		t.Error("RefreshTokenHashEqual should match")
	}
	if RefreshTokenHashEqual("other-token", hash) {
		t.Error("RefreshTokenHashEqual should not match different token")
	}
}
