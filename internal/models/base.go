package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Base is the base model for all list documents.
// ID is a MongoDB ObjectID, rendered as its hex form in JSON.
type Base struct {
	ID        primitive.ObjectID `json:"id"        bson:"_id,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// NewBase assigns a fresh ObjectID and creation timestamps.
func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        primitive.NewObjectID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
