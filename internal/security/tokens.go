// Package security provides JWT issuance/validation, password hashing, and
// key parsing for the auth stack.
package security

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/rsa"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token is malformed, expired, or fails
// signature/claim checks.
var ErrInvalidToken = errors.New("invalid token")

// TokenKind distinguishes access tokens from refresh tokens so one cannot be
// presented in place of the other.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Claims holds the JWT claims shared by access and refresh tokens. OrgID is
// the session's active organization and may be empty for personal sessions.
type Claims struct {
	jwt.RegisteredClaims
	Kind      TokenKind `json:"kind"`
	SessionID string    `json:"session_id"`
	OrgID     string    `json:"org_id,omitempty"`
}

// TokenProvider issues and validates JWT access and refresh tokens using
// RS256 or ES256 (private/public key pair).
type TokenProvider struct {
	privateKey crypto.Signer
	publicKey  crypto.PublicKey
	issuer     string
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenProvider returns a TokenProvider that signs with the given private
// key (RS256 or ES256). issuer and audience are set on claims and checked on
// validation.
func NewTokenProvider(privateKey crypto.Signer, publicKey crypto.PublicKey, issuer, audience string, accessTTL, refreshTTL time.Duration) *TokenProvider {
	return &TokenProvider{
		privateKey: privateKey,
		publicKey:  publicKey,
		issuer:     issuer,
		audience:   audience,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccess issues a short-lived access JWT for the given session, user,
// and active org (orgID may be empty). Returns the token string, its jti, and
// expiration time.
func (p *TokenProvider) IssueAccess(sessionID, userID, orgID string) (token, jti string, expiresAt time.Time, err error) {
	return p.issue(TokenKindAccess, sessionID, userID, orgID, p.accessTTL)
}

// IssueRefresh issues a long-lived refresh JWT and returns the token, its jti
// (for rotation binding), and expiration time. Caller should store jti on the
// session.
func (p *TokenProvider) IssueRefresh(sessionID, userID, orgID string) (token, jti string, expiresAt time.Time, err error) {
	return p.issue(TokenKindRefresh, sessionID, userID, orgID, p.refreshTTL)
}

func (p *TokenProvider) issue(kind TokenKind, sessionID, userID, orgID string, ttl time.Duration) (string, string, time.Time, error) {
	jti, err := generateJTI()
	if err != nil {
		return "", "", time.Time{}, err
	}
	now := time.Now().UTC()
	expiresAt := now.Add(ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   userID,
			Issuer:    p.issuer,
			Audience:  jwt.ClaimStrings{p.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Kind:      kind,
		SessionID: sessionID,
		OrgID:     orgID,
	}
	var method jwt.SigningMethod
	switch p.privateKey.Public().(type) {
	case *rsa.PublicKey:
		method = jwt.SigningMethodRS256
	case *ecdsa.PublicKey:
		method = jwt.SigningMethodES256
	default:
		return "", "", time.Time{}, ErrInvalidToken
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString(p.privateKey)
	return token, jti, expiresAt, err
}

// ValidateAccess parses and validates an access token (signature, exp, iss,
// aud, kind). Returns the embedded session, user, and active org ids.
func (p *TokenProvider) ValidateAccess(tokenString string) (sessionID, userID, orgID string, err error) {
	claims, err := p.validate(tokenString, TokenKindAccess)
	if err != nil {
		return "", "", "", err
	}
	return claims.SessionID, claims.Subject, claims.OrgID, nil
}

// ValidateRefresh parses and validates a refresh token. Returns the session
// id, jti (for rotation checks), user id, and active org id.
func (p *TokenProvider) ValidateRefresh(tokenString string) (sessionID, jti, userID, orgID string, err error) {
	claims, err := p.validate(tokenString, TokenKindRefresh)
	if err != nil {
		return "", "", "", "", err
	}
	return claims.SessionID, claims.ID, claims.Subject, claims.OrgID, nil
}

func (p *TokenProvider) validate(tokenString string, kind TokenKind) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodRSA, *jwt.SigningMethodECDSA:
			return p.publicKey, nil
		}
		return nil, ErrInvalidToken
	}, jwt.WithIssuer(p.issuer), jwt.WithAudience(p.audience))
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Kind != kind {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func generateJTI() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
