package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminCodeModel is a one-time login passcode. At most one code per email is
// live: issuing a new one purges the old rows first, and a successful verify
// purges them all. Expired rows are only removed on those two paths.
type AdminCodeModel struct {
	ID        primitive.ObjectID `json:"id"        bson:"_id,omitempty"`
	Email     string             `json:"email"     bson:"email"`
	Code      string             `json:"code"      bson:"code"`
	ExpiresAt time.Time          `json:"expiresAt" bson:"expiresAt"`
}

func (AdminCodeModel) CollectionName() string { return "admin_codes" }
