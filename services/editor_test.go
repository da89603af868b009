package services

import (
	"strings"
	"testing"
	"time"

	"github.com/Timexll/TEMMY-REALTY/models"
)

func validDraft() models.ListingInput {
	return models.ListingInput{
		Title:    "Modern Villa with Pool",
		Type:     models.TypeSale,
		Category: "Modern Villa",
		Location: "Malibu, California",
		Price:    "$1,200,000",
		Bedrooms: 4, Bathrooms: 3, Sqft: 3200,
	}
}

func TestValidateDraftRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.ListingInput)
		field  string
	}{
		{"missing title", func(d *models.ListingInput) { d.Title = "" }, "title"},
		{"missing price", func(d *models.ListingInput) { d.Price = "" }, "price"},
		{"missing type", func(d *models.ListingInput) { d.Type = "" }, "type"},
		{"bad type", func(d *models.ListingInput) { d.Type = "Lease" }, "type"},
		{"negative bedrooms", func(d *models.ListingInput) { d.Bedrooms = -1 }, "bedrooms"},
	}

	for _, tc := range cases {
		draft := validDraft()
		tc.mutate(&draft)
		err := ValidateDraft(draft)
		if err == nil {
			t.Errorf("%s: expected a validation error", tc.name)
			continue
		}
		verr, ok := err.(*ValidationError)
		if !ok {
			t.Errorf("%s: expected *ValidationError, got %T", tc.name, err)
			continue
		}
		if verr.Field != tc.field {
			t.Errorf("%s: got field %q, want %q", tc.name, verr.Field, tc.field)
		}
	}

	if err := ValidateDraft(validDraft()); err != nil {
		t.Errorf("valid draft rejected: %v", err)
	}
}

func TestBuildListingRejectsInvalidDraftWithoutSideEffects(t *testing.T) {
	draft := validDraft()
	draft.Price = ""

	listing, err := BuildListing(draft, "admin1", time.Now())
	if err == nil {
		t.Fatal("expected a validation error for missing price")
	}
	if listing.ID != "" {
		t.Errorf("rejected draft produced a listing: %+v", listing)
	}
}

func TestBuildListingAssignsFreshID(t *testing.T) {
	now := time.Now()

	first, err := BuildListing(validDraft(), "admin1", now)
	if err != nil {
		t.Fatalf("BuildListing: %v", err)
	}
	second, err := BuildListing(validDraft(), "admin1", now)
	if err != nil {
		t.Fatalf("BuildListing: %v", err)
	}

	if first.ID == "" || second.ID == "" {
		t.Fatal("listing id not assigned")
	}
	if first.ID == second.ID {
		t.Errorf("two new drafts received the same id %q", first.ID)
	}
}

func TestBuildListingKeepsProvidedID(t *testing.T) {
	draft := validDraft()
	draft.ID = "fixed-id"

	listing, err := BuildListing(draft, "admin1", time.Now())
	if err != nil {
		t.Fatalf("BuildListing: %v", err)
	}
	if listing.ID != "fixed-id" {
		t.Errorf("got id %q, want fixed-id", listing.ID)
	}
}

func TestBuildListingDefaults(t *testing.T) {
	now := time.Now()
	listing, err := BuildListing(validDraft(), "admin1", now)
	if err != nil {
		t.Fatalf("BuildListing: %v", err)
	}

	if listing.Status != models.StatusAvailable {
		t.Errorf("status: got %q, want %q", listing.Status, models.StatusAvailable)
	}
	if listing.Amenities == nil || len(listing.Amenities) != 0 {
		t.Errorf("amenities: got %v, want empty slice", listing.Amenities)
	}
	if !strings.HasPrefix(listing.ImageURL, "https://picsum.photos/seed/") {
		t.Errorf("imageUrl default not applied: %q", listing.ImageURL)
	}
	if listing.OwnerID != "admin1" {
		t.Errorf("ownerId: got %q, want admin1", listing.OwnerID)
	}
	if !listing.CreatedAt.Equal(now) || !listing.UpdatedAt.Equal(now) {
		t.Errorf("timestamps not stamped: created=%v updated=%v", listing.CreatedAt, listing.UpdatedAt)
	}
}

func TestValidateUpdateChecksPresentFieldsOnly(t *testing.T) {
	if err := ValidateUpdate(models.ListingUpdate{}); err != nil {
		t.Errorf("empty update rejected: %v", err)
	}

	empty := ""
	if err := ValidateUpdate(models.ListingUpdate{Price: &empty}); err == nil {
		t.Error("empty price accepted")
	}
	if err := ValidateUpdate(models.ListingUpdate{Title: &empty}); err == nil {
		t.Error("empty title accepted")
	}

	badType := "Lease"
	if err := ValidateUpdate(models.ListingUpdate{Type: &badType}); err == nil {
		t.Error("invalid type accepted")
	}

	negative := -2
	if err := ValidateUpdate(models.ListingUpdate{Bathrooms: &negative}); err == nil {
		t.Error("negative bathrooms accepted")
	}

	goodPrice := "$900,000"
	goodType := models.TypeRental
	if err := ValidateUpdate(models.ListingUpdate{Price: &goodPrice, Type: &goodType}); err != nil {
		t.Errorf("valid update rejected: %v", err)
	}
}
