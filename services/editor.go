package services

import (
	"fmt"
	"time"

	"github.com/Timexll/TEMMY-REALTY/models"
	"github.com/google/uuid"
)

// ValidationError reports a rejected draft field. The draft is never
// persisted or cleared on validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateDraft checks the required fields of a listing draft before it is
// saved: title, price and type must be non-empty, type must be one of the
// two listing types, and the numeric fields must be non-negative.
func ValidateDraft(in models.ListingInput) error {
	if in.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if in.Price == "" {
		return &ValidationError{Field: "price", Message: "price is required"}
	}
	if in.Type == "" {
		return &ValidationError{Field: "type", Message: "type is required"}
	}
	if in.Type != models.TypeSale && in.Type != models.TypeRental {
		return &ValidationError{Field: "type", Message: "type must be Sale or Rental"}
	}
	if in.Bedrooms < 0 {
		return &ValidationError{Field: "bedrooms", Message: "bedrooms must not be negative"}
	}
	if in.Bathrooms < 0 {
		return &ValidationError{Field: "bathrooms", Message: "bathrooms must not be negative"}
	}
	if in.Sqft < 0 {
		return &ValidationError{Field: "sqft", Message: "sqft must not be negative"}
	}
	return nil
}

// BuildListing turns a validated draft into a persistable listing, assigning
// an id, image URL, amenities, and status where the draft left them empty.
func BuildListing(in models.ListingInput, ownerID string, now time.Time) (models.Listing, error) {
	if err := ValidateDraft(in); err != nil {
		return models.Listing{}, err
	}

	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	imageURL := in.ImageURL
	if imageURL == "" {
		imageURL = fmt.Sprintf("https://picsum.photos/seed/%s/1200/800", id)
	}
	amenities := in.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	status := in.Status
	if status == "" {
		status = models.StatusAvailable
	}

	return models.Listing{
		ID:          id,
		Title:       in.Title,
		Type:        in.Type,
		Category:    in.Category,
		Location:    in.Location,
		Price:       in.Price,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		Sqft:        in.Sqft,
		Description: in.Description,
		Amenities:   amenities,
		ImageURL:    imageURL,
		ImageURLs:   in.ImageURLs,
		Featured:    in.Featured,
		Status:      status,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ValidateUpdate checks an edit. Absent fields are fine (they are preserved
// by the merge), but a field that is present must still be valid.
func ValidateUpdate(u models.ListingUpdate) error {
	if u.Title != nil && *u.Title == "" {
		return &ValidationError{Field: "title", Message: "title must not be empty"}
	}
	if u.Price != nil && *u.Price == "" {
		return &ValidationError{Field: "price", Message: "price must not be empty"}
	}
	if u.Type != nil && *u.Type != models.TypeSale && *u.Type != models.TypeRental {
		return &ValidationError{Field: "type", Message: "type must be Sale or Rental"}
	}
	if u.Bedrooms != nil && *u.Bedrooms < 0 {
		return &ValidationError{Field: "bedrooms", Message: "bedrooms must not be negative"}
	}
	if u.Bathrooms != nil && *u.Bathrooms < 0 {
		return &ValidationError{Field: "bathrooms", Message: "bathrooms must not be negative"}
	}
	if u.Sqft != nil && *u.Sqft < 0 {
		return &ValidationError{Field: "sqft", Message: "sqft must not be negative"}
	}
	return nil
}
