package models

import (
	"time"
)

// Inquiry is a support message left by a visitor, optionally about a listing.
type Inquiry struct {
	ID        string    `bson:"_id" json:"id"`
	ListingID string    `bson:"listingId,omitempty" json:"listingId,omitempty"`
	Name      string    `bson:"name" json:"name" validate:"required"`
	Email     string    `bson:"email" json:"email" validate:"required,email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Message   string    `bson:"message" json:"message" validate:"required"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
