// internal/app/store/invites/invitestore.go
package invitestore

import (
	"context"
	"errors"
	"strings"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/eventnethq/eventnet/internal/app/system/normalize"
	"github.com/eventnethq/eventnet/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no invite matches the lookup.
	ErrNotFound = errors.New("invite code not found")
	// ErrDuplicateCode is returned when minting collides with the unique
	// code index.
	ErrDuplicateCode = errors.New("invite code already exists")
)

// Store owns the invite_codes collection — the ledger of organizer-issued
// single-use codes. Consumption goes through a conditional update matching
// used=false, so a code can never be consumed twice.
type Store struct {
	c *mongo.Collection
}

// New creates a Store over the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("invite_codes")}
}

// FindByCodeAndEvent looks up an invite by its code within an event.
// The email binding is checked by the caller so that a mismatched email
// can be distinguished from a nonexistent code.
func (s *Store) FindByCodeAndEvent(ctx context.Context, code string, eventID primitive.ObjectID) (*models.InviteCode, error) {
	var inv models.InviteCode
	err := s.c.FindOne(ctx, bson.M{
		"code":     normalize.Code(code),
		"event_id": eventID,
	}).Decode(&inv)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// ConsumeForEmail marks the unused invite bound to email as used by the
// given user. The filter matches used=false, so the transition is atomic
// and one-way. Returns false if no unused invite exists for the email.
func (s *Store) ConsumeForEmail(ctx context.Context, email string, usedBy primitive.ObjectID) (bool, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": normalize.Email(email), "used": false},
		bson.M{"$set": bson.M{
			"used":       true,
			"used_by":    usedBy,
			"updated_at": time.Now(),
		}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// Insert records an organizer-issued invite. The code must be globally
// unique; collisions surface as ErrDuplicateCode.
func (s *Store) Insert(ctx context.Context, inv models.InviteCode) (models.InviteCode, error) {
	inv.ID = primitive.NewObjectID()
	inv.Code = normalize.Code(inv.Code)
	inv.Email = normalize.Email(inv.Email)
	inv.Used = false
	inv.UsedBy = nil

	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, inv); err != nil {
		if wafflemongo.IsDup(err) {
			return models.InviteCode{}, ErrDuplicateCode
		}
		return models.InviteCode{}, err
	}
	return inv, nil
}

// Mint generates a fresh invite for (email, event) with a random code.
// Used by organizer tooling; attendee-facing flows never create invites.
func (s *Store) Mint(ctx context.Context, email string, eventID primitive.ObjectID) (models.InviteCode, error) {
	return s.Insert(ctx, models.InviteCode{
		Code:    GenerateCode(),
		Email:   email,
		EventID: eventID,
	})
}

// GenerateCode returns a 12-character uppercase invite code derived from a
// random UUID. Short enough to forward in an email, long enough that
// guessing is hopeless.
func GenerateCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:12])
}
