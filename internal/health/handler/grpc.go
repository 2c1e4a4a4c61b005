package handler

import (
	"context"
	"time"

	healthv1 "teamspace/backend/api/generated/health/v1"
)

// Pinger checks database connectivity (satisfied by *sql.DB).
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PolicyChecker verifies the in-process policy engine can compile and
// evaluate its default policy.
type PolicyChecker interface {
	HealthCheck(ctx context.Context) error
}

// Server implements HealthService (proto server) for readiness/liveness.
// Proto: health/health.proto -> internal/health/handler.
type Server struct {
	healthv1.UnimplementedHealthServiceServer
	db     Pinger
	policy PolicyChecker
}

// NewServer returns a new Health gRPC server. Nil components are skipped.
func NewServer(db Pinger, policy PolicyChecker) *Server {
	return &Server{db: db, policy: policy}
}

// HealthCheck reports per-component health. The RPC itself always succeeds;
// callers inspect the status field.
func (s *Server) HealthCheck(ctx context.Context, req *healthv1.HealthCheckRequest) (*healthv1.HealthCheckResponse, error) {
	checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var components []*healthv1.ComponentHealth
	allHealthy := true

	if s.db != nil {
		c := &healthv1.ComponentHealth{Name: "postgres", Healthy: true}
		if err := s.db.PingContext(checkCtx); err != nil {
			c.Healthy = false
			c.Detail = err.Error()
			allHealthy = false
		}
		components = append(components, c)
	}
	if s.policy != nil {
		c := &healthv1.ComponentHealth{Name: "entitlements", Healthy: true}
		if err := s.policy.HealthCheck(checkCtx); err != nil {
			c.Healthy = false
			c.Detail = err.Error()
			allHealthy = false
		}
		components = append(components, c)
	}

	st := "ok"
	if !allHealthy {
		st = "degraded"
	}
	return &healthv1.HealthCheckResponse{Status: st, Components: components}, nil
}
