// seed inserts development sample data for local testing.
// Idempotent: skips inserts if the dev user (dev@example.com) already exists.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"teamspace/backend/internal/config"
	"teamspace/backend/internal/db"
	identitydomain "teamspace/backend/internal/identity/domain"
	identityrepo "teamspace/backend/internal/identity/repository"
	membershipdomain "teamspace/backend/internal/membership/domain"
	membershiprepo "teamspace/backend/internal/membership/repository"
	notificationdomain "teamspace/backend/internal/notification/domain"
	notificationrepo "teamspace/backend/internal/notification/repository"
	orgdomain "teamspace/backend/internal/organization/domain"
	orgrepo "teamspace/backend/internal/organization/repository"
	"teamspace/backend/internal/platform/scope"
	"teamspace/backend/internal/security"
	subscriptiondomain "teamspace/backend/internal/subscription/domain"
	subscriptionrepo "teamspace/backend/internal/subscription/repository"
	tododomain "teamspace/backend/internal/todo/domain"
	todorepo "teamspace/backend/internal/todo/repository"
	userdomain "teamspace/backend/internal/user/domain"
	userrepo "teamspace/backend/internal/user/repository"
)

const (
	devUserEmail     = "dev@example.com"
	devPassword      = "DevPassword-123"
	devUserID        = "dev-user-001"
	devUser2ID       = "dev-user-002"
	devIdentityID    = "dev-identity-001"
	devIdentity2ID   = "dev-identity-002"
	devOrgID         = "dev-org-001"
	devMembershipID  = "dev-membership-001"
	devMembership2ID = "dev-membership-002"
	memberEmail      = "member@example.com"
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

	users := userrepo.NewPostgresRepository(conn)
	identities := identityrepo.NewPostgresRepository(conn)
	orgs := orgrepo.NewPostgresRepository(conn)
	memberships := membershiprepo.NewPostgresRepository(conn)
	todos := todorepo.NewPostgresRepository(conn)
	notifications := notificationrepo.NewPostgresRepository(conn)
	subscriptions := subscriptionrepo.NewPostgresRepository(conn)

	ctx := context.Background()

	existing, err := users.GetByEmail(ctx, devUserEmail)
	if err != nil {
		log.Fatalf("seed check: %v", err)
	}
	if existing != nil {
		log.Println("Seed already applied (dev@example.com exists). Skipping.")
		os.Exit(0)
	}

	hasher := security.NewHasher(cfg.BcryptCost)
	passwordHash, err := hasher.Hash([]byte(devPassword))
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	now := time.Now().UTC()

	if err := users.Create(ctx, &userdomain.User{
		ID:        devUserID,
		Email:     devUserEmail,
		Name:      "Dev User",
		Status:    userdomain.UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		log.Fatalf("create dev user: %v", err)
	}

	if err := users.Create(ctx, &userdomain.User{
		ID:        devUser2ID,
		Email:     memberEmail,
		Name:      "Member User",
		Status:    userdomain.UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		log.Fatalf("create member user: %v", err)
	}

	if err := identities.Create(ctx, &identitydomain.Identity{
		ID:           devIdentityID,
		UserID:       devUserID,
		Provider:     identitydomain.IdentityProviderLocal,
		ProviderID:   devUserEmail,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}); err != nil {
		log.Fatalf("create dev identity: %v", err)
	}

	if err := identities.Create(ctx, &identitydomain.Identity{
		ID:           devIdentity2ID,
		UserID:       devUser2ID,
		Provider:     identitydomain.IdentityProviderLocal,
		ProviderID:   memberEmail,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}); err != nil {
		log.Fatalf("create member identity: %v", err)
	}

	if err := orgs.Create(ctx, &orgdomain.Org{
		ID:        devOrgID,
		Name:      "Acme Dev",
		Slug:      "acme-dev",
		CreatedAt: now,
	}); err != nil {
		log.Fatalf("create org: %v", err)
	}

	if err := memberships.Create(ctx, &membershipdomain.Membership{
		ID:        devMembershipID,
		UserID:    devUserID,
		OrgID:     devOrgID,
		Role:      membershipdomain.RoleOwner,
		CreatedAt: now,
	}); err != nil {
		log.Fatalf("create dev membership: %v", err)
	}

	if err := memberships.Create(ctx, &membershipdomain.Membership{
		ID:        devMembership2ID,
		UserID:    devUser2ID,
		OrgID:     devOrgID,
		Role:      membershipdomain.RoleMember,
		CreatedAt: now,
	}); err != nil {
		log.Fatalf("create member membership: %v", err)
	}

	if err := subscriptions.Upsert(ctx, &subscriptiondomain.Subscription{
		ID:        "dev-subscription-001",
		OrgID:     devOrgID,
		Plan:      subscriptiondomain.PlanPro,
		Status:    subscriptiondomain.StatusActive,
		UpdatedAt: now,
	}); err != nil {
		log.Fatalf("upsert subscription: %v", err)
	}

	sampleTodos := []*tododomain.Todo{
		{
			ID:        "dev-todo-001",
			Title:     "Personal: review onboarding notes",
			Ownership: scope.Ownership{OwnerUserID: devUserID},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "dev-todo-002",
			Title:     "Acme: draft Q1 roadmap",
			Ownership: scope.Ownership{OwnerUserID: devUserID, OrgID: devOrgID},
			CreatedAt: now.Add(time.Second),
			UpdatedAt: now.Add(time.Second),
		},
		{
			ID:        "dev-todo-003",
			Title:     "Acme: triage incoming bug reports",
			Completed: true,
			Ownership: scope.Ownership{OwnerUserID: devUser2ID, OrgID: devOrgID},
			CreatedAt: now.Add(2 * time.Second),
			UpdatedAt: now.Add(2 * time.Second),
		},
	}
	for _, t := range sampleTodos {
		if err := todos.Create(ctx, t); err != nil {
			log.Fatalf("create todo %s: %v", t.ID, err)
		}
	}

	if err := notifications.Create(ctx, &notificationdomain.Notification{
		ID:        "dev-notification-001",
		Type:      notificationdomain.TypeOrgAnnouncement,
		Title:     "Welcome to Acme Dev",
		Message:   "This workspace is seeded with sample data.",
		Priority:  notificationdomain.PriorityMedium,
		Scope:     notificationdomain.ScopeOrganization,
		Ownership: scope.Ownership{OrgID: devOrgID},
		CreatedBy: devUserID,
		CreatedAt: now,
	}); err != nil {
		log.Fatalf("create org notification: %v", err)
	}

	if err := notifications.Create(ctx, &notificationdomain.Notification{
		ID:                "dev-notification-002",
		Type:              notificationdomain.TypeTodoAssigned,
		Title:             "A todo was assigned to you",
		Message:           "Acme: triage incoming bug reports",
		Priority:          notificationdomain.PriorityHigh,
		Scope:             notificationdomain.ScopeUser,
		Ownership:         scope.Ownership{OwnerUserID: devUser2ID},
		RelatedEntityID:   "dev-todo-003",
		RelatedEntityType: "todo",
		CreatedBy:         devUserID,
		CreatedAt:         now,
	}); err != nil {
		log.Fatalf("create user notification: %v", err)
	}

	log.Println("Seed completed successfully.")
	fmt.Printf("Dev login: %s / %s\n", devUserEmail, devPassword)
	fmt.Printf("Member login: %s / %s\n", memberEmail, devPassword)
}
