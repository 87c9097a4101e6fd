// internal/domain/models/invitecode.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InviteCode is an organizer-issued single-use token binding an email to an
// event. A code is consumed (Used=true) at most once, at successful OTP
// verification, and only on behalf of the user whose email matches the
// bound email. Codes are never deleted.
type InviteCode struct {
	ID      primitive.ObjectID  `bson:"_id,omitempty"`
	Code    string              `bson:"code"`  // globally unique
	Email   string              `bson:"email"` // lowercase
	EventID primitive.ObjectID  `bson:"event_id"`
	Used    bool                `bson:"used"`
	UsedBy  *primitive.ObjectID `bson:"used_by,omitempty"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
