package models

import (
	"time"
)

// Listing types. Every listing is either for sale or for rent.
const (
	TypeSale   = "Sale"
	TypeRental = "Rental"
)

// StatusAvailable is the default status for newly created listings.
const StatusAvailable = "Available"

type Listing struct {
	ID          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Type        string    `bson:"type" json:"type"`
	Category    string    `bson:"category" json:"category"`
	Location    string    `bson:"location" json:"location"`
	Price       string    `bson:"price" json:"price"`
	Bedrooms    int       `bson:"bedrooms" json:"bedrooms"`
	Bathrooms   int       `bson:"bathrooms" json:"bathrooms"`
	Sqft        int       `bson:"sqft,omitempty" json:"sqft,omitempty"`
	Description string    `bson:"description" json:"description"`
	Amenities   []string  `bson:"amenities" json:"amenities"`
	ImageURL    string    `bson:"imageUrl" json:"imageUrl"`
	ImageURLs   []string  `bson:"imageUrls,omitempty" json:"imageUrls,omitempty"`
	Featured    bool      `bson:"featured,omitempty" json:"featured,omitempty"`
	Status      string    `bson:"status" json:"status"`
	OwnerID     string    `bson:"ownerId" json:"ownerId"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ListingInput is the create payload. The id is optional; one is assigned
// when absent.
type ListingInput struct {
	ID          string   `json:"id"`
	Title       string   `json:"title" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=Sale Rental"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	Price       string   `json:"price" validate:"required"`
	Bedrooms    int      `json:"bedrooms" validate:"min=0"`
	Bathrooms   int      `json:"bathrooms" validate:"min=0"`
	Sqft        int      `json:"sqft" validate:"min=0"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	ImageURL    string   `json:"imageUrl"`
	ImageURLs   []string `json:"imageUrls"`
	Featured    bool     `json:"featured"`
	Status      string   `json:"status"`
}

// ListingUpdate carries a partial edit. Nil fields are preserved on the
// stored document (merge semantics, last write wins per field).
type ListingUpdate struct {
	Title       *string   `json:"title"`
	Type        *string   `json:"type"`
	Category    *string   `json:"category"`
	Location    *string   `json:"location"`
	Price       *string   `json:"price"`
	Bedrooms    *int      `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms   *int      `json:"bathrooms" validate:"omitempty,min=0"`
	Sqft        *int      `json:"sqft" validate:"omitempty,min=0"`
	Description *string   `json:"description"`
	Amenities   *[]string `json:"amenities"`
	ImageURL    *string   `json:"imageUrl"`
	ImageURLs   *[]string `json:"imageUrls"`
	Featured    *bool     `json:"featured"`
	Status      *string   `json:"status"`
}

// SetDocument builds the $set document for the fields present in the update.
// The updatedAt stamp is always included.
func (u *ListingUpdate) SetDocument(now time.Time) map[string]interface{} {
	doc := map[string]interface{}{
		"updatedAt": now,
	}
	if u.Title != nil {
		doc["title"] = *u.Title
	}
	if u.Type != nil {
		doc["type"] = *u.Type
	}
	if u.Category != nil {
		doc["category"] = *u.Category
	}
	if u.Location != nil {
		doc["location"] = *u.Location
	}
	if u.Price != nil {
		doc["price"] = *u.Price
	}
	if u.Bedrooms != nil {
		doc["bedrooms"] = *u.Bedrooms
	}
	if u.Bathrooms != nil {
		doc["bathrooms"] = *u.Bathrooms
	}
	if u.Sqft != nil {
		doc["sqft"] = *u.Sqft
	}
	if u.Description != nil {
		doc["description"] = *u.Description
	}
	if u.Amenities != nil {
		doc["amenities"] = *u.Amenities
	}
	if u.ImageURL != nil {
		doc["imageUrl"] = *u.ImageURL
	}
	if u.ImageURLs != nil {
		doc["imageUrls"] = *u.ImageURLs
	}
	if u.Featured != nil {
		doc["featured"] = *u.Featured
	}
	if u.Status != nil {
		doc["status"] = *u.Status
	}
	return doc
}
