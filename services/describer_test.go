package services

import (
	"strings"
	"testing"
)

func TestBuildDescriptionPromptIncludesAllFields(t *testing.T) {
	prompt := BuildDescriptionPrompt(DescriptionRequest{
		PropertyType:  "Modern Villa",
		Location:      "Malibu, California",
		Bedrooms:      4,
		Bathrooms:     3,
		SquareFootage: 3200,
		Price:         "$1,200,000",
		Amenities:     []string{"modern kitchen", "parking space"},
		Highlights:    "Modern Villa with Pool",
	})

	for _, want := range []string{
		"Property Type: Modern Villa",
		"Location: Malibu, California",
		"Bedrooms: 4",
		"Bathrooms: 3",
		"Square Footage: 3200 sq ft",
		"Price: $1,200,000",
		"- modern kitchen",
		"- parking space",
		"Key Highlights: Modern Villa with Pool",
		"200-300 words",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildDescriptionPromptOmitsOptionalFields(t *testing.T) {
	prompt := BuildDescriptionPrompt(DescriptionRequest{
		PropertyType: "Studio Flat",
		Location:     "Portland, Oregon",
		Price:        "$1,400/mo",
	})

	if strings.Contains(prompt, "Square Footage") {
		t.Error("zero square footage should be omitted")
	}
	if strings.Contains(prompt, "Amenities:") {
		t.Error("empty amenities should be omitted")
	}
	if strings.Contains(prompt, "Key Highlights") {
		t.Error("empty highlights should be omitted")
	}
}

func TestNewDescriberRequiresAPIKey(t *testing.T) {
	if _, err := NewDescriber(t.Context(), "", "gemini-2.0-flash"); err == nil {
		t.Error("expected an error for a missing API key")
	}
}
