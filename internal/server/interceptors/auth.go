package interceptors

import (
	"context"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"teamspace/backend/internal/platform/scope"
	"teamspace/backend/internal/security"
	sessiondomain "teamspace/backend/internal/session/domain"
)

const bearerPrefix = "bearer "

// SessionGetter resolves a session by id; used to reject tokens whose session
// was revoked or expired after issuance.
type SessionGetter interface {
	GetByID(ctx context.Context, id string) (*sessiondomain.Session, error)
}

// AuthUnary returns a unary server interceptor that validates the Bearer
// (access) token from gRPC metadata, checks the backing session is still
// live, and stores the resolved identity and session id in context for
// protected RPCs. publicMethods is the set of full method names that do not
// require a Bearer token (e.g. AuthService Register, Login, Refresh;
// HealthService HealthCheck).
//
// The identity's active org comes from the token claim; a token issued before
// an org switch keeps authorizing against its original org until refreshed.
func AuthUnary(tokens *security.TokenProvider, sessions SessionGetter, publicMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		token := extractBearer(ctx)
		public := publicMethods[info.FullMethod]

		if token == "" {
			if public {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
		}

		sessionID, userID, orgID, err := tokens.ValidateAccess(token)
		if err != nil {
			if public {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
		}

		if sessions != nil {
			sess, err := sessions.GetByID(ctx, sessionID)
			if err != nil {
				return nil, status.Error(codes.Internal, "failed to resolve session")
			}
			if sess == nil || !sess.Active(time.Now().UTC()) {
				if public {
					return handler(ctx, req)
				}
				return nil, status.Error(codes.Unauthenticated, "session revoked or expired")
			}
		}

		ctx = scope.WithIdentity(ctx, scope.Identity{UserID: userID, ActiveOrgID: orgID})
		ctx = scope.WithSessionID(ctx, sessionID)
		return handler(ctx, req)
	}
}

// extractBearer returns the Bearer token from ctx metadata, or "" if missing or malformed.
func extractBearer(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return ""
	}
	v := strings.TrimSpace(vals[0])
	if len(v) < len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}
