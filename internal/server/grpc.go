package server

import (
	"google.golang.org/grpc"

	auditv1 "teamspace/backend/api/generated/audit/v1"
	authv1 "teamspace/backend/api/generated/auth/v1"
	healthv1 "teamspace/backend/api/generated/health/v1"
	membershipv1 "teamspace/backend/api/generated/membership/v1"
	notificationv1 "teamspace/backend/api/generated/notification/v1"
	organizationv1 "teamspace/backend/api/generated/organization/v1"
	sessionv1 "teamspace/backend/api/generated/session/v1"
	subscriptionv1 "teamspace/backend/api/generated/subscription/v1"
	telemetryv1 "teamspace/backend/api/generated/telemetry/v1"
	todov1 "teamspace/backend/api/generated/todo/v1"
	userv1 "teamspace/backend/api/generated/user/v1"

	"teamspace/backend/internal/audit"
	audithandler "teamspace/backend/internal/audit/handler"
	auditrepo "teamspace/backend/internal/audit/repository"
	healthhandler "teamspace/backend/internal/health/handler"
	identityhandler "teamspace/backend/internal/identity/handler"
	identityservice "teamspace/backend/internal/identity/service"
	membershiphandler "teamspace/backend/internal/membership/handler"
	membershiprepo "teamspace/backend/internal/membership/repository"
	notificationhandler "teamspace/backend/internal/notification/handler"
	notificationservice "teamspace/backend/internal/notification/service"
	organizationhandler "teamspace/backend/internal/organization/handler"
	orgrepo "teamspace/backend/internal/organization/repository"
	sessionhandler "teamspace/backend/internal/session/handler"
	sessionrepo "teamspace/backend/internal/session/repository"
	"teamspace/backend/internal/subscription/entitlement"
	subscriptionhandler "teamspace/backend/internal/subscription/handler"
	subscriptionrepo "teamspace/backend/internal/subscription/repository"
	telemetryhandler "teamspace/backend/internal/telemetry/handler"
	"teamspace/backend/internal/telemetry/producer"
	todohandler "teamspace/backend/internal/todo/handler"
	todoservice "teamspace/backend/internal/todo/service"
	userhandler "teamspace/backend/internal/user/handler"
	userrepo "teamspace/backend/internal/user/repository"
)

// Deps holds service dependencies for gRPC handlers.
type Deps struct {
	// Auth is the auth service for Register/Login/Refresh/Logout/SwitchOrganization.
	Auth *identityservice.AuthService
	// Todos is the todo service.
	Todos *todoservice.Service
	// Notifications is the notification service.
	Notifications *notificationservice.Service
	// UserRepo backs UserService.
	UserRepo userrepo.Repository
	// OrgRepo and MembershipRepo back OrganizationService and MembershipService.
	OrgRepo        orgrepo.Repository
	MembershipRepo membershiprepo.Repository
	// SessionRepo backs SessionService.
	SessionRepo sessionrepo.Repository
	// SubscriptionRepo and Entitlements back SubscriptionService.
	SubscriptionRepo subscriptionrepo.Repository
	Entitlements     entitlement.Evaluator
	// AuditRepo backs AuditService and the audit interceptor.
	AuditRepo auditrepo.Repository
	// AuditLogger is used by the auth handler for login/logout events. May be nil.
	AuditLogger audit.AuditLogger
	// TelemetryProducer backs TelemetryService. May be nil; telemetry RPCs then no-op.
	TelemetryProducer producer.Producer
	// HealthPinger is used by HealthService for readiness (e.g. *sql.DB). If nil, HealthCheck skips DB ping.
	HealthPinger healthhandler.Pinger
	// HealthPolicyChecker is used by HealthService for readiness (e.g. the OPA entitlement evaluator).
	HealthPolicyChecker healthhandler.PolicyChecker
}

// RegisterServices registers all proto gRPC services with the given server.
//
// Proto -> handler mapping:
//   - AuthService         -> internal/identity/handler
//   - UserService         -> internal/user/handler
//   - OrganizationService -> internal/organization/handler
//   - MembershipService   -> internal/membership/handler
//   - TodoService         -> internal/todo/handler
//   - NotificationService -> internal/notification/handler
//   - SessionService      -> internal/session/handler
//   - SubscriptionService -> internal/subscription/handler
//   - AuditService        -> internal/audit/handler
//   - TelemetryService    -> internal/telemetry/handler
//   - HealthService       -> internal/health/handler
func RegisterServices(s grpc.ServiceRegistrar, deps Deps) {
	authv1.RegisterAuthServiceServer(s, identityhandler.NewAuthServer(deps.Auth, deps.AuditLogger))
	userv1.RegisterUserServiceServer(s, userhandler.NewServer(deps.UserRepo))
	organizationv1.RegisterOrganizationServiceServer(s, organizationhandler.NewServer(deps.OrgRepo, deps.MembershipRepo))
	membershipv1.RegisterMembershipServiceServer(s, membershiphandler.NewServer(deps.MembershipRepo))
	todov1.RegisterTodoServiceServer(s, todohandler.NewServer(deps.Todos))
	notificationv1.RegisterNotificationServiceServer(s, notificationhandler.NewServer(deps.Notifications))
	sessionv1.RegisterSessionServiceServer(s, sessionhandler.NewServer(deps.SessionRepo))
	subscriptionv1.RegisterSubscriptionServiceServer(s, subscriptionhandler.NewServer(deps.SubscriptionRepo, deps.MembershipRepo, deps.Entitlements))
	auditv1.RegisterAuditServiceServer(s, audithandler.NewServer(deps.AuditRepo, deps.MembershipRepo))
	telemetryv1.RegisterTelemetryServiceServer(s, telemetryhandler.NewServer(deps.TelemetryProducer))
	healthv1.RegisterHealthServiceServer(s, healthhandler.NewServer(deps.HealthPinger, deps.HealthPolicyChecker))
}

// PublicMethods returns the full method names that do not require a Bearer token.
func PublicMethods() map[string]bool {
	return map[string]bool{
		"/teamspace.auth.v1.AuthService/Register":          true,
		"/teamspace.auth.v1.AuthService/Login":             true,
		"/teamspace.auth.v1.AuthService/Refresh":           true,
		"/teamspace.auth.v1.AuthService/Logout":            true,
		"/teamspace.health.v1.HealthService/HealthCheck":   true,
		"/teamspace.telemetry.v1.TelemetryService/EmitTelemetryEvent": true,
	}
}

// UnauditedMethods returns the full method names skipped by the audit and
// telemetry interceptors.
func UnauditedMethods() map[string]bool {
	return map[string]bool{
		"/teamspace.health.v1.HealthService/HealthCheck":                true,
		"/teamspace.audit.v1.AuditService/ListAuditLogs":                true,
		"/teamspace.telemetry.v1.TelemetryService/EmitTelemetryEvent":   true,
		"/teamspace.telemetry.v1.TelemetryService/BatchEmitTelemetry":   true,
		"/teamspace.notification.v1.NotificationService/GetNotificationCounts": true,
	}
}
