package domain

import "time"

// Session represents an authenticated user session. ActiveOrgID is the
// organization the user has switched into for this session; empty means a
// personal (no-org) session. Records created during the session are stamped
// with this value.
type Session struct {
	ID               string
	UserID           string
	ActiveOrgID      string
	ExpiresAt        time.Time
	RevokedAt        *time.Time // nil when not revoked
	LastSeenAt       *time.Time
	IPAddress        string
	RefreshJti       string // current refresh token jti for rotation; empty if not set
	RefreshTokenHash string // SHA-256 hash of current refresh token
	CreatedAt        time.Time
}

// Active reports whether the session can still back requests at the given
// time: not revoked and not expired.
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
