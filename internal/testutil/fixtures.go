package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/eventnethq/eventnet/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateEvent creates a test event with the given name.
func (f *Fixtures) CreateEvent(ctx context.Context, name string) models.Event {
	f.t.Helper()

	now := time.Now().UTC()
	ev := models.Event{
		ID:          primitive.NewObjectID(),
		Name:        name,
		StartDate:   now.AddDate(0, 1, 0),
		EndDate:     now.AddDate(0, 1, 2),
		Location:    "Test Venue",
		Description: "Test event description",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := f.db.Collection("events").InsertOne(ctx, ev)
	if err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}

	return ev
}

// CreateInvite creates an unused invite code bound to the given email
// and event.
func (f *Fixtures) CreateInvite(ctx context.Context, code, email string, eventID primitive.ObjectID) models.InviteCode {
	f.t.Helper()

	now := time.Now().UTC()
	inv := models.InviteCode{
		ID:        primitive.NewObjectID(),
		Code:      code,
		Email:     email,
		EventID:   eventID,
		Used:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("invite_codes").InsertOne(ctx, inv)
	if err != nil {
		f.t.Fatalf("failed to create test invite: %v", err)
	}

	return inv
}

// CreateUsedInvite creates an invite code already consumed by usedBy.
func (f *Fixtures) CreateUsedInvite(ctx context.Context, code, email string, eventID, usedBy primitive.ObjectID) models.InviteCode {
	f.t.Helper()

	now := time.Now().UTC()
	inv := models.InviteCode{
		ID:        primitive.NewObjectID(),
		Code:      code,
		Email:     email,
		EventID:   eventID,
		Used:      true,
		UsedBy:    &usedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("invite_codes").InsertOne(ctx, inv)
	if err != nil {
		f.t.Fatalf("failed to create used test invite: %v", err)
	}

	return inv
}

// CreateUser creates a test user with a bcrypt hash of the given
// password. verified controls the is_verified flag.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, password string, eventID primitive.ObjectID, verified bool) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash test password: %v", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Verified:     verified,
		EventID:      eventID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateVerifiedUser creates a test user with is_verified set.
func (f *Fixtures) CreateVerifiedUser(ctx context.Context, name, email, password string, eventID primitive.ObjectID) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, password, eventID, true)
}

// CreateUnverifiedUser creates a test user still awaiting OTP verification.
func (f *Fixtures) CreateUnverifiedUser(ctx context.Context, name, email, password string, eventID primitive.ObjectID) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, password, eventID, false)
}

// CreateOTP inserts an OTP record for the given email with a bcrypt
// hash of code, expiring at the given time.
func (f *Fixtures) CreateOTP(ctx context.Context, email, code string, expiresAt time.Time) models.OTP {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash test otp: %v", err)
	}

	now := time.Now().UTC()
	otp := models.OTP{
		ID:        primitive.NewObjectID(),
		Email:     email,
		CodeHash:  string(hash),
		Attempts:  0,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}

	_, err = f.db.Collection("otps").InsertOne(ctx, otp)
	if err != nil {
		f.t.Fatalf("failed to create test otp: %v", err)
	}

	return otp
}
