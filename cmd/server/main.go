// Server wires config, Postgres, JWT keys, OPA entitlements, OpenTelemetry,
// Kafka telemetry, and all gRPC services. Configure via .env or environment
// (see .env.example); DATABASE_URL and the JWT key pair are required.
package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"teamspace/backend/internal/audit"
	auditrepo "teamspace/backend/internal/audit/repository"
	"teamspace/backend/internal/config"
	"teamspace/backend/internal/db"
	identityrepo "teamspace/backend/internal/identity/repository"
	identityservice "teamspace/backend/internal/identity/service"
	membershiprepo "teamspace/backend/internal/membership/repository"
	notificationrepo "teamspace/backend/internal/notification/repository"
	notificationservice "teamspace/backend/internal/notification/service"
	orgrepo "teamspace/backend/internal/organization/repository"
	"teamspace/backend/internal/security"
	"teamspace/backend/internal/server"
	"teamspace/backend/internal/server/interceptors"
	sessionrepo "teamspace/backend/internal/session/repository"
	"teamspace/backend/internal/subscription/entitlement"
	subscriptionrepo "teamspace/backend/internal/subscription/repository"
	"teamspace/backend/internal/telemetry"
	"teamspace/backend/internal/telemetry/otel"
	"teamspace/backend/internal/telemetry/producer"
	todorepo "teamspace/backend/internal/todo/repository"
	todoservice "teamspace/backend/internal/todo/service"
	userrepo "teamspace/backend/internal/user/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	privKey, err := security.ParsePrivateKey(cfg.JWTPrivateKey)
	if err != nil {
		log.Fatalf("JWT_PRIVATE_KEY: %v", err)
	}
	pubKey, err := security.ParsePublicKey(cfg.JWTPublicKey)
	if err != nil {
		log.Fatalf("JWT_PUBLIC_KEY: %v", err)
	}
	tokens := security.NewTokenProvider(privKey, pubKey, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL(), cfg.RefreshTTL())
	hasher := security.NewHasher(cfg.BcryptCost)

	ctx := context.Background()
	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, "teamspace-server", cfg.OTLPInsecure)
	if err != nil {
		log.Fatalf("otel: %v", err)
	}
	providers.SetGlobal()

	userRepo := userrepo.NewPostgresRepository(conn)
	identityRepo := identityrepo.NewPostgresRepository(conn)
	sessionRepo := sessionrepo.NewPostgresRepository(conn)
	orgRepo := orgrepo.NewPostgresRepository(conn)
	membershipRepo := membershiprepo.NewPostgresRepository(conn)
	todoRepo := todorepo.NewPostgresRepository(conn)
	notificationRepo := notificationrepo.NewPostgresRepository(conn)
	subscriptionRepo := subscriptionrepo.NewPostgresRepository(conn)
	auditRepo := auditrepo.NewPostgresRepository(conn)

	authSvc := identityservice.NewAuthService(userRepo, identityRepo, sessionRepo, membershipRepo, hasher, tokens, cfg.RefreshTTL())
	todoSvc := todoservice.NewService(todoRepo)
	notificationSvc := notificationservice.NewService(notificationRepo)
	evaluator := entitlement.NewOPAEvaluator()
	auditLogger := audit.NewLogger(auditRepo, interceptors.ClientIP)

	// Telemetry goes to Kafka (for the worker -> Loki) and, when an OTLP
	// endpoint is configured, to OTel logs as well.
	kafkaProducer, err := producer.NewKafkaProducer(cfg.TelemetryKafkaBrokersList(), cfg.TelemetryKafkaTopic)
	if err != nil {
		log.Fatalf("kafka: %v", err)
	}
	var telemetryProducer producer.Producer
	if kafkaProducer != nil || cfg.OTLPEndpoint != "" {
		var primary producer.Producer
		if kafkaProducer != nil {
			primary = kafkaProducer
		}
		telemetryProducer = producer.NewMulti(primary, otel.NewEventEmitter(providers.LoggerProvider))
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	defer lis.Close()

	s := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			interceptors.AuthUnary(tokens, sessionRepo, server.PublicMethods()),
			interceptors.AuditUnary(auditRepo, server.UnauditedMethods()),
			interceptors.TelemetryUnary(telemetryProducer, server.UnauditedMethods()),
		),
	)
	server.RegisterServices(s, server.Deps{
		Auth:                authSvc,
		Todos:               todoSvc,
		Notifications:       notificationSvc,
		UserRepo:            userRepo,
		OrgRepo:             orgRepo,
		MembershipRepo:      membershipRepo,
		SessionRepo:         sessionRepo,
		SubscriptionRepo:    subscriptionRepo,
		Entitlements:        evaluator,
		AuditRepo:           auditRepo,
		AuditLogger:         auditLogger,
		TelemetryProducer:   telemetryProducer,
		HealthPinger:        conn,
		HealthPolicyChecker: evaluator,
	})

	go func() {
		log.Printf("gRPC server listening on %s", cfg.GRPCAddr)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down gRPC server...")
	s.GracefulStop()

	// Let in-flight async telemetry emits finish before tearing down exporters.
	time.Sleep(telemetry.ShutdownDrainDuration)
	if telemetryProducer != nil {
		if err := telemetryProducer.Close(); err != nil {
			log.Printf("telemetry producer close: %v", err)
		}
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Printf("otel shutdown: %v", err)
	}
	log.Println("gRPC server stopped")
}
