package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DescriptionRequest carries the property attributes the generator writes
// marketing copy from. Bedrooms and bathrooms must be non-negative; square
// footage, amenities and highlights are optional.
type DescriptionRequest struct {
	PropertyType  string   `json:"propertyType" validate:"required"`
	Location      string   `json:"location" validate:"required"`
	Bedrooms      int      `json:"bedrooms" validate:"min=0"`
	Bathrooms     int      `json:"bathrooms" validate:"min=0"`
	SquareFootage int      `json:"squareFootage" validate:"min=0"`
	Price         string   `json:"price" validate:"required"`
	Amenities     []string `json:"amenities"`
	Highlights    string   `json:"highlights"`
}

// DescriptionResult is the single output of a generation call.
type DescriptionResult struct {
	Description string `json:"description"`
}

// ErrEmptyDescription is returned when the model answers with no usable text.
var ErrEmptyDescription = errors.New("generator returned an empty description")

const describerSystemPrompt = "You are an AI assistant for Temmy American Realty, a professional " +
	"real estate company. Generate engaging and detailed property descriptions " +
	"from the provided key features. Descriptions should be professional, " +
	"attractive, and highlight the best aspects of the property for potential " +
	"buyers or renters."

// Describer generates listing descriptions through the Gemini API. It is a
// single request/response call: no retries, no caching, no streaming.
type Describer struct {
	client *genai.Client
	model  string
}

// NewDescriber creates a Describer. The API key is required; the model falls
// back to a current default when empty.
func NewDescriber(ctx context.Context, apiKey, model string) (*Describer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Describer{client: client, model: model}, nil
}

// Generate produces one description for the given property attributes. The
// call either succeeds with a non-empty description or fails with a single
// opaque error; the caller's recourse is manual entry.
func (d *Describer) Generate(ctx context.Context, req DescriptionRequest) (*DescriptionResult, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(BuildDescriptionPrompt(req), genai.RoleUser),
	}

	resp, err := d.client.Models.GenerateContent(ctx, d.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(describerSystemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"description": {Type: genai.TypeString},
			},
			Required: []string{"description"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("description generation failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, ErrEmptyDescription
	}

	var result DescriptionResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		// Some models answer with plain text despite the schema; accept it.
		result.Description = text
	}
	if strings.TrimSpace(result.Description) == "" {
		return nil, ErrEmptyDescription
	}
	return &result, nil
}

// BuildDescriptionPrompt renders the request into the generation prompt. The
// 200-300 word length band is a guideline inside the prompt, not a checked
// invariant.
func BuildDescriptionPrompt(req DescriptionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Property Type: %s\n", req.PropertyType)
	fmt.Fprintf(&b, "Location: %s\n", req.Location)
	fmt.Fprintf(&b, "Bedrooms: %d\n", req.Bedrooms)
	fmt.Fprintf(&b, "Bathrooms: %d\n", req.Bathrooms)
	if req.SquareFootage > 0 {
		fmt.Fprintf(&b, "Square Footage: %d sq ft\n", req.SquareFootage)
	}
	fmt.Fprintf(&b, "Price: %s\n", req.Price)
	if len(req.Amenities) > 0 {
		b.WriteString("Amenities:\n")
		for _, a := range req.Amenities {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}
	if req.Highlights != "" {
		fmt.Fprintf(&b, "Key Highlights: %s\n", req.Highlights)
	}
	b.WriteString("\nGenerate a compelling property description of approximately 200-300 words. ")
	b.WriteString("Start with an attention-grabbing sentence and include details about the living spaces, ")
	b.WriteString("modern features, neighborhood, and any unique selling points. ")
	b.WriteString("Ensure the tone is professional and inviting.")
	return b.String()
}
