package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/Timexll/TEMMY-REALTY/config"
	"github.com/Timexll/TEMMY-REALTY/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InquiryController struct {
	collection *mongo.Collection
	listings   *mongo.Collection
}

func NewInquiryController() *InquiryController {
	collectionName := os.Getenv("MONGODB_COLLECTION_INQUIRIES")
	if collectionName == "" {
		collectionName = "inquiries"
	}
	listingsName := os.Getenv("MONGODB_COLLECTION_LISTINGS")
	if listingsName == "" {
		listingsName = "property_listings"
	}
	return &InquiryController{
		collection: config.GetCollection(collectionName),
		listings:   config.GetCollection(listingsName),
	}
}

// CreateInquiry receives a support message from a visitor, optionally tied
// to a listing.
func (ic *InquiryController) CreateInquiry(c echo.Context) error {
	var inquiry models.Inquiry
	if err := c.Bind(&inquiry); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&inquiry); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name, email and message are required"})
	}

	if inquiry.ListingID != "" {
		count, err := ic.listings.CountDocuments(context.Background(), bson.M{"_id": inquiry.ListingID})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check property"})
		}
		if count == 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown property id"})
		}
	}

	inquiry.ID = uuid.NewString()
	inquiry.CreatedAt = time.Now()

	if _, err := ic.collection.InsertOne(context.Background(), inquiry); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to submit inquiry"})
	}
	return c.JSON(http.StatusCreated, inquiry)
}

// ListInquiries returns all inquiries, newest first, for the admin surface.
func (ic *InquiryController) ListInquiries(c echo.Context) error {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := ic.collection.Find(context.Background(), bson.M{}, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch inquiries"})
	}
	defer cursor.Close(context.Background())

	inquiries := make([]models.Inquiry, 0)
	for cursor.Next(context.Background()) {
		var inquiry models.Inquiry
		if err := cursor.Decode(&inquiry); err != nil {
			continue
		}
		inquiries = append(inquiries, inquiry)
	}
	return c.JSON(http.StatusOK, inquiries)
}

func (ic *InquiryController) DeleteInquiry(c echo.Context) error {
	id := c.Param("id")

	result, err := ic.collection.DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete inquiry"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Inquiry not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Inquiry deleted successfully"})
}
