package models

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestSetDocumentIncludesOnlyPresentFields(t *testing.T) {
	now := time.Now()
	update := ListingUpdate{
		Price:    strPtr("$950,000"),
		Bedrooms: intPtr(5),
	}

	doc := update.SetDocument(now)

	if len(doc) != 3 {
		t.Fatalf("got %d fields, want 3 (price, bedrooms, updatedAt): %v", len(doc), doc)
	}
	if doc["price"] != "$950,000" {
		t.Errorf("price: got %v", doc["price"])
	}
	if doc["bedrooms"] != 5 {
		t.Errorf("bedrooms: got %v", doc["bedrooms"])
	}
	if _, ok := doc["title"]; ok {
		t.Error("absent title leaked into the set document")
	}
	if doc["updatedAt"] != now {
		t.Errorf("updatedAt not stamped")
	}
}

// Two sequential merge edits to the same document: each persists
// independently and the final state is the last update's fields merged over
// whatever the first left behind. Last write wins per field.
func TestSequentialMergeUpdatesAreLastWriteWins(t *testing.T) {
	stored := map[string]interface{}{
		"_id":      "p1",
		"title":    "Modern Villa",
		"price":    "$1,200,000",
		"location": "Malibu, California",
		"bedrooms": 4,
	}

	apply := func(u ListingUpdate, at time.Time) {
		for k, v := range u.SetDocument(at) {
			stored[k] = v
		}
	}

	t1 := time.Now()
	apply(ListingUpdate{
		Price: strPtr("$1,150,000"),
		Title: strPtr("Modern Villa - Reduced"),
	}, t1)

	t2 := t1.Add(time.Minute)
	apply(ListingUpdate{
		Price:    strPtr("$1,100,000"),
		Bedrooms: intPtr(5),
	}, t2)

	if stored["price"] != "$1,100,000" {
		t.Errorf("price: got %v, want last writer's $1,100,000", stored["price"])
	}
	if stored["title"] != "Modern Villa - Reduced" {
		t.Errorf("title: got %v, want the first edit preserved", stored["title"])
	}
	if stored["bedrooms"] != 5 {
		t.Errorf("bedrooms: got %v, want 5", stored["bedrooms"])
	}
	if stored["location"] != "Malibu, California" {
		t.Errorf("location: got %v, want untouched original", stored["location"])
	}
	if stored["updatedAt"] != t2 {
		t.Errorf("updatedAt: got %v, want %v", stored["updatedAt"], t2)
	}
}
