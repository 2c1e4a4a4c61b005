// Package scope implements the session-scoped, organization-aware access
// policy shared by the record services (todos, notifications). An Identity is
// resolved once per request by the auth interceptor and passed explicitly;
// nothing in this package reads ambient state.
package scope

import (
	"context"
	"errors"
)

// Sentinel errors for the access policy. Handlers map these to gRPC codes
// (Unauthenticated, PermissionDenied, NotFound).
var (
	// ErrUnauthorized means there is no valid session behind the request.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the session is valid but the identity is neither the
	// record owner nor a member of the record's organization.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound means the record id does not exist (or no longer exists).
	ErrNotFound = errors.New("not found")
)

// Identity is the acting principal for one request: the authenticated user
// and the organization they have currently activated, if any. ActiveOrgID is
// empty for personal (no-org) sessions.
type Identity struct {
	UserID      string
	ActiveOrgID string
}

// Ownership is the immutable stamp written to a record at creation time.
// OrgID is empty when the record was created outside an organization context.
type Ownership struct {
	OwnerUserID string
	OrgID       string
}

// StampFor returns the ownership stamp for a record created by ident:
// owner is the acting user, org is the identity's active organization at
// creation time. The stamp never changes after creation.
func StampFor(ident Identity) Ownership {
	return Ownership{OwnerUserID: ident.UserID, OrgID: ident.ActiveOrgID}
}

// Authorize checks whether ident may mutate or delete a record carrying own.
// The owner comparison runs first; only when it fails does the organization
// comparison apply, and it requires both sides to be non-empty. Any member of
// the record's organization passes — roles are not consulted here.
func Authorize(ident Identity, own Ownership) error {
	if ident.UserID == "" {
		return ErrUnauthorized
	}
	if ident.UserID == own.OwnerUserID {
		return nil
	}
	if ident.ActiveOrgID != "" && ident.ActiveOrgID == own.OrgID {
		return nil
	}
	return ErrForbidden
}

type identityKey struct{}
type sessionIDKey struct{}

// WithIdentity returns a context carrying the resolved identity. Set by the
// auth interceptor after token validation; read by handlers via FromContext.
func WithIdentity(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, ident)
}

// FromContext returns the identity resolved for this request and true, or a
// zero Identity and false when the request was not authenticated.
func FromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(identityKey{}).(Identity)
	return ident, ok
}

// WithSessionID returns a context carrying the validated session id.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

// SessionIDFromContext returns the session id behind this request, if any.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(sessionIDKey{}).(string)
	return v, ok
}
