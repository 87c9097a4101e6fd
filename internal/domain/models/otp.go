// internal/domain/models/otp.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OTP is an ephemeral email-verification challenge. At most one live record
// exists per email: issuing a new code deletes any prior record first.
// Only the bcrypt hash of the 6-digit code is stored. ExpiresAt carries a
// TTL index so Mongo reaps stale records; verification additionally filters
// on it so a stale-but-unreaped code is rejected.
type OTP struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"` // lowercase
	CodeHash string             `bson:"code_hash"`
	Attempts int                `bson:"attempts"`

	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"` // TTL index field
}
