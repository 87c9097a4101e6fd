// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an event attendee.
//
// NOTE:
//   - Email is stored lowercased and carries a hard unique index
//     (see system/indexes), so a duplicate registration racing the
//     find-then-create sequence fails at the storage layer.
//   - PasswordHash is never serialized; handlers return PublicUser.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"` // lowercase, unique
	PasswordHash string             `bson:"password"`
	Verified     bool               `bson:"is_verified"`
	EventID      primitive.ObjectID `bson:"event_id"`

	Phone    string `bson:"phone,omitempty"`
	LinkedIn string `bson:"linkedin,omitempty"`
	GitHub   string `bson:"github,omitempty"`
	Status   string `bson:"status,omitempty"`
	Bio      string `bson:"bio,omitempty"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// PublicUser is the wire shape of a user. Field names match the original
// client API (_id, isVerified, event). It never includes the password hash.
type PublicUser struct {
	ID       primitive.ObjectID `json:"_id"`
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	Verified bool               `json:"isVerified"`
	EventID  primitive.ObjectID `json:"event"`
	Phone    string             `json:"phone,omitempty"`
	LinkedIn string             `json:"linkedin,omitempty"`
	GitHub   string             `json:"github,omitempty"`
	Status   string             `json:"status,omitempty"`
	Bio      string             `json:"bio,omitempty"`
}

// Public returns the client-safe view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Verified: u.Verified,
		EventID:  u.EventID,
		Phone:    u.Phone,
		LinkedIn: u.LinkedIn,
		GitHub:   u.GitHub,
		Status:   u.Status,
		Bio:      u.Bio,
	}
}
