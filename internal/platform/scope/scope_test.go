package scope

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAuthorize_OwnerAlwaysPasses(t *testing.T) {
	ident := Identity{UserID: "user-a", ActiveOrgID: "org-1"}
	own := Ownership{OwnerUserID: "user-a"}
	if err := Authorize(ident, own); err != nil {
		t.Fatalf("Authorize: %v", err)
	}
}

func TestAuthorize_DifferentUserNoOrg(t *testing.T) {
	ident := Identity{UserID: "user-b"}
	own := Ownership{OwnerUserID: "user-a"}
	err := Authorize(ident, own)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("Authorize = %v, want ErrForbidden", err)
	}
}

func TestAuthorize_DifferentUserWrongOrg(t *testing.T) {
	// A personally owned record is not reachable through org membership,
	// regardless of the caller's active org.
	ident := Identity{UserID: "user-b", ActiveOrgID: "org-2"}
	own := Ownership{OwnerUserID: "user-a"}
	err := Authorize(ident, own)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("Authorize = %v, want ErrForbidden", err)
	}
}

func TestAuthorize_OrgMemberPasses(t *testing.T) {
	ident := Identity{UserID: "user-c", ActiveOrgID: "org-1"}
	own := Ownership{OwnerUserID: "user-a", OrgID: "org-1"}
	if err := Authorize(ident, own); err != nil {
		t.Fatalf("Authorize: %v", err)
	}
}

func TestAuthorize_EmptyOrgNeverMatches(t *testing.T) {
	// Both sides empty must not count as a match.
	ident := Identity{UserID: "user-b"}
	own := Ownership{OwnerUserID: "user-a", OrgID: ""}
	err := Authorize(ident, own)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("Authorize = %v, want ErrForbidden", err)
	}
}

func TestAuthorize_MissingUser(t *testing.T) {
	err := Authorize(Identity{}, Ownership{OwnerUserID: "user-a"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("Authorize = %v, want ErrUnauthorized", err)
	}
}

func TestStampFor(t *testing.T) {
	own := StampFor(Identity{UserID: "user-a", ActiveOrgID: "org-1"})
	if own.OwnerUserID != "user-a" || own.OrgID != "org-1" {
		t.Errorf("StampFor = %+v", own)
	}
	personal := StampFor(Identity{UserID: "user-a"})
	if personal.OrgID != "" {
		t.Errorf("personal stamp has org %q, want empty", personal.OrgID)
	}
}

type rec struct {
	id string
	at time.Time
}

func recID(r rec) string            { return r.id }
func recCreatedAt(r rec) time.Time { return r.at }

func TestMergeOwned_DedupAndOrder(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	byOwner := []rec{
		{id: "t1", at: base.Add(1 * time.Hour)},
		{id: "t2", at: base.Add(3 * time.Hour)},
		{id: "t3", at: base.Add(5 * time.Hour)},
	}
	byOrg := []rec{
		{id: "t3", at: base.Add(5 * time.Hour)}, // satisfies both predicates
		{id: "t4", at: base.Add(2 * time.Hour)},
		{id: "t5", at: base.Add(4 * time.Hour)},
	}
	got := MergeOwned(byOwner, byOrg, recID, recCreatedAt)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5 unique records", len(got))
	}
	wantOrder := []string{"t3", "t5", "t2", "t4", "t1"}
	for i, want := range wantOrder {
		if got[i].id != want {
			t.Errorf("got[%d] = %s, want %s", i, got[i].id, want)
		}
	}
}

func TestMergeOwned_Idempotent(t *testing.T) {
	base := time.Now().UTC()
	byOwner := []rec{{id: "a", at: base}, {id: "b", at: base.Add(time.Minute)}}
	byOrg := []rec{{id: "c", at: base.Add(2 * time.Minute)}}
	first := MergeOwned(byOwner, byOrg, recID, recCreatedAt)
	second := MergeOwned(byOwner, byOrg, recID, recCreatedAt)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].id != second[i].id {
			t.Errorf("order differs at %d: %s vs %s", i, first[i].id, second[i].id)
		}
	}
}

func TestIdentityContextRoundTrip(t *testing.T) {
	ctx := WithIdentity(context.Background(), Identity{UserID: "u", ActiveOrgID: "o"})
	ctx = WithSessionID(ctx, "s")
	ident, ok := FromContext(ctx)
	if !ok || ident.UserID != "u" || ident.ActiveOrgID != "o" {
		t.Errorf("FromContext = %+v, %v", ident, ok)
	}
	sid, ok := SessionIDFromContext(ctx)
	if !ok || sid != "s" {
		t.Errorf("SessionIDFromContext = %q, %v", sid, ok)
	}
	if _, ok := FromContext(context.Background()); ok {
		t.Error("FromContext on empty context should report false")
	}
}
