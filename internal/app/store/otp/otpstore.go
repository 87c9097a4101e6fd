// internal/app/store/otp/otpstore.go
package otpstore

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/eventnethq/eventnet/internal/app/system/normalize"
	"github.com/eventnethq/eventnet/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	// CodeLength is the length of the verification code (6 digits).
	CodeLength = 6
	// DefaultExpiry is how long a code is valid when no expiry is configured.
	DefaultExpiry = 5 * time.Minute
	// BcryptCost for hashing codes. Codes are short-lived, so the cheap
	// cost is acceptable.
	BcryptCost = 10
	// MaxAttempts is the maximum number of verification attempts per code.
	MaxAttempts = 5
)

var (
	// ErrNotFound is returned when no live (unexpired) code exists for the
	// email. An expired code is indistinguishable from a missing one.
	ErrNotFound = errors.New("verification code not found or expired")
	// ErrInvalidCode is returned when the submitted code does not match.
	ErrInvalidCode = errors.New("invalid verification code")
	// ErrTooManyAttempts is returned once the attempt budget is spent.
	ErrTooManyAttempts = errors.New("too many verification attempts")
)

// Store manages one-time verification codes: at most one live record per
// email, bcrypt-hashed at rest, expired by a TTL index and re-checked at
// consumption time.
type Store struct {
	c      *mongo.Collection
	expiry time.Duration
}

// New creates a Store with the given expiry. Zero or negative falls back
// to DefaultExpiry.
func New(db *mongo.Database, expiry time.Duration) *Store {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return &Store{c: db.Collection("otps"), expiry: expiry}
}

// Expiry returns the configured validity window.
func (s *Store) Expiry() time.Duration {
	return s.expiry
}

// Issue creates a fresh code for the email, deleting any prior record
// first so at most one live code exists per email. Returns the plaintext
// code for delivery; only its hash is stored.
func (s *Store) Issue(ctx context.Context, email string) (string, error) {
	email = normalize.Email(email)

	code := generateCode()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash code: %w", err)
	}

	if _, err := s.c.DeleteMany(ctx, bson.M{"email": email}); err != nil {
		return "", fmt.Errorf("delete prior code: %w", err)
	}

	now := time.Now()
	rec := models.OTP{
		ID:        primitive.NewObjectID(),
		Email:     email,
		CodeHash:  string(hash),
		Attempts:  0,
		CreatedAt: now,
		ExpiresAt: now.Add(s.expiry),
	}
	if _, err := s.c.InsertOne(ctx, rec); err != nil {
		return "", fmt.Errorf("insert code: %w", err)
	}

	return code, nil
}

// Consume verifies a code for the email and deletes the record on success,
// so a code can never be replayed. Every submission, right or wrong,
// spends one attempt; after MaxAttempts the record is dead even for the
// correct code.
func (s *Store) Consume(ctx context.Context, email, code string) error {
	email = normalize.Email(email)

	var rec models.OTP
	err := s.c.FindOne(ctx, bson.M{
		"email":      email,
		"expires_at": bson.M{"$gt": time.Now()},
	}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}

	if rec.Attempts >= MaxAttempts {
		return ErrTooManyAttempts
	}
	_, _ = s.c.UpdateOne(ctx, bson.M{"_id": rec.ID}, bson.M{"$inc": bson.M{"attempts": 1}})

	if err := bcrypt.CompareHashAndPassword([]byte(rec.CodeHash), []byte(normalize.OTPDigits(code))); err != nil {
		return ErrInvalidCode
	}

	_, _ = s.c.DeleteOne(ctx, bson.M{"_id": rec.ID})
	return nil
}

// DeleteExpired removes records past their expiry. The TTL index usually
// handles this; the cleanup job calls it as a backup since Mongo's TTL
// sweeps run on a coarse schedule.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": time.Now()}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// HasLive reports whether an unexpired code exists for the email.
func (s *Store) HasLive(ctx context.Context, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{
		"email":      normalize.Email(email),
		"expires_at": bson.M{"$gt": time.Now()},
	}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// generateCode returns a random 6-digit numeric code. Panics if the
// system's cryptographic random number generator fails.
func generateCode() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand.Read failed: " + err.Error())
	}
	n := int(b[0])<<24 | int(b[1])<<16 | int(b[2])<<8 | int(b[3])
	if n < 0 {
		n = -n
	}
	// 100000..999999 keeps a fixed 6-digit width.
	return fmt.Sprintf("%06d", (n%900000)+100000)
}
