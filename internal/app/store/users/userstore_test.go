package userstore_test

import (
	"errors"
	"testing"
	"time"

	userstore "github.com/eventnethq/eventnet/internal/app/store/users"
	"github.com/eventnethq/eventnet/internal/domain/models"
	"github.com/eventnethq/eventnet/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := models.User{
		Name:         "Ada Lovelace",
		Email:        "  Ada@Example.COM ",
		PasswordHash: "$2a$10$fakehash",
		EventID:      primitive.NewObjectID(),
	}

	created, err := store.Create(ctx, user)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Email != "ada@example.com" {
		t.Errorf("email not normalized: got %q", created.Email)
	}
	if created.Verified {
		t.Error("new user should not be verified")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if created.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// The duplicate check relies on the unique email index.
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		t.Fatalf("create email index: %v", err)
	}

	eventID := primitive.NewObjectID()
	fixtures.CreateVerifiedUser(ctx, "First", "dup@example.com", "secret1", eventID)

	_, err = store.Create(ctx, models.User{
		Name:         "Second",
		Email:        "dup@example.com",
		PasswordHash: "$2a$10$fakehash",
		EventID:      eventID,
	})
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_GetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	eventID := primitive.NewObjectID()
	created := fixtures.CreateVerifiedUser(ctx, "Grace", "grace@example.com", "secret1", eventID)

	got, err := store.GetByEmail(ctx, "  GRACE@example.com ")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID: got %v, want %v", got.ID, created.ID)
	}

	_, err = store.GetByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, userstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_MarkVerified(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	eventID := primitive.NewObjectID()
	user := fixtures.CreateUnverifiedUser(ctx, "Alan", "alan@example.com", "secret1", eventID)

	if err := store.MarkVerified(ctx, user.ID); err != nil {
		t.Fatalf("MarkVerified failed: %v", err)
	}

	got, err := store.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !got.Verified {
		t.Error("expected user to be verified")
	}

	if err := store.MarkVerified(ctx, primitive.NewObjectID()); !errors.Is(err, userstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown ID, got %v", err)
	}
}

func TestStore_UpdatePasswordHash(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	eventID := primitive.NewObjectID()
	user := fixtures.CreateUnverifiedUser(ctx, "Edsger", "edsger@example.com", "secret1", eventID)

	if err := store.UpdatePasswordHash(ctx, user.ID, "$2a$10$newhash"); err != nil {
		t.Fatalf("UpdatePasswordHash failed: %v", err)
	}

	got, err := store.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.PasswordHash != "$2a$10$newhash" {
		t.Errorf("password hash not updated: got %q", got.PasswordHash)
	}
}

func TestStore_UpdateProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	eventID := primitive.NewObjectID()
	user := fixtures.CreateVerifiedUser(ctx, "Barbara", "barbara@example.com", "secret1", eventID)

	updated, err := store.UpdateProfile(ctx, user.ID, userstore.ProfileUpdate{
		Name:     "Barbara Liskov",
		Phone:    "555-0100",
		LinkedIn: "https://linkedin.com/in/barbara",
		GitHub:   "https://github.com/barbara",
		Status:   "Looking for collaborators",
		Bio:      "Systems researcher.",
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	if updated.Name != "Barbara Liskov" {
		t.Errorf("Name: got %q", updated.Name)
	}
	if updated.Phone != "555-0100" {
		t.Errorf("Phone: got %q", updated.Phone)
	}
	if updated.Bio != "Systems researcher." {
		t.Errorf("Bio: got %q", updated.Bio)
	}
	if updated.Email != user.Email {
		t.Errorf("Email must not change: got %q", updated.Email)
	}
}

func TestStore_ListVerifiedByEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	eventA := primitive.NewObjectID()
	eventB := primitive.NewObjectID()

	fixtures.CreateVerifiedUser(ctx, "In A", "a1@example.com", "secret1", eventA)
	fixtures.CreateVerifiedUser(ctx, "Also A", "a2@example.com", "secret1", eventA)
	fixtures.CreateUnverifiedUser(ctx, "Unverified A", "a3@example.com", "secret1", eventA)
	fixtures.CreateVerifiedUser(ctx, "In B", "b1@example.com", "secret1", eventB)

	users, err := store.ListVerifiedByEvent(ctx, eventA)
	if err != nil {
		t.Fatalf("ListVerifiedByEvent failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	for _, u := range users {
		if !u.Verified {
			t.Errorf("unverified user %q in results", u.Email)
		}
		if u.EventID != eventA {
			t.Errorf("user %q belongs to wrong event", u.Email)
		}
	}
}

func TestStore_ListStaleUnverified(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	eventID := primitive.NewObjectID()
	stale := fixtures.CreateUnverifiedUser(ctx, "Stale", "stale@example.com", "secret1", eventID)
	fixtures.CreateUnverifiedUser(ctx, "Fresh", "fresh@example.com", "secret1", eventID)
	fixtures.CreateVerifiedUser(ctx, "Done", "done@example.com", "secret1", eventID)

	// Backdate the stale user past the cutoff.
	past := time.Now().UTC().Add(-48 * time.Hour)
	_, err := db.Collection("users").UpdateByID(ctx, stale.ID,
		bson.M{"$set": bson.M{"created_at": past}})
	if err != nil {
		t.Fatalf("backdate user: %v", err)
	}

	got, err := store.ListStaleUnverified(ctx, time.Now().UTC().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("ListStaleUnverified failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 stale user, got %d", len(got))
	}
	if got[0].ID != stale.ID {
		t.Errorf("wrong user returned: %q", got[0].Email)
	}
}
