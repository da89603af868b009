package handlers

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Timexll/TEMMY-REALTY/config"
	"github.com/Timexll/TEMMY-REALTY/models"
	"github.com/Timexll/TEMMY-REALTY/services"
	"github.com/Timexll/TEMMY-REALTY/utils"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ListingController struct {
	collection *mongo.Collection
	cacheTTL   time.Duration
}

func NewListingController() *ListingController {
	collectionName := os.Getenv("MONGODB_COLLECTION_LISTINGS")
	if collectionName == "" {
		collectionName = "property_listings"
	}
	ttlSeconds := 60
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlSeconds = n
		}
	}
	return &ListingController{
		collection: config.GetCollection(collectionName),
		cacheTTL:   time.Duration(ttlSeconds) * time.Second,
	}
}

func (lc *ListingController) fetchListings(ctx context.Context, query bson.M) ([]models.Listing, error) {
	cursor, err := lc.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	listings := make([]models.Listing, 0)
	for cursor.Next(ctx) {
		var listing models.Listing
		if err := cursor.Decode(&listing); err != nil {
			continue
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// ListListings is the public browsing endpoint. Listings are fetched by type
// (or all of them), then the filter pipeline runs in memory over the fetched
// slice. Responses are cached briefly; browsing consistency is eventual.
func (lc *ListingController) ListListings(c echo.Context) error {
	listingType := c.QueryParam("type")
	if listingType != "" && listingType != models.TypeSale && listingType != models.TypeRental {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "type must be Sale or Rental"})
	}

	filter := services.Filter{
		Query:      c.QueryParam("query"),
		Category:   c.QueryParam("category"),
		PriceRange: c.QueryParam("priceRange"),
	}

	cacheKey := utils.GenerateQueryCacheKey("properties", map[string]string{
		"type":       listingType,
		"query":      filter.Query,
		"category":   filter.Category,
		"priceRange": filter.PriceRange,
	})
	var cached []models.Listing
	if hit, err := utils.GetCached(c.Request().Context(), cacheKey, &cached); err == nil && hit {
		return c.JSON(http.StatusOK, cached)
	}

	query := bson.M{}
	if listingType != "" {
		query["type"] = listingType
	}

	listings, err := lc.fetchListings(c.Request().Context(), query)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}

	filtered := services.ApplyFilter(listings, filter)

	_ = utils.SetCached(c.Request().Context(), cacheKey, filtered, lc.cacheTTL)

	return c.JSON(http.StatusOK, filtered)
}

// FeaturedListings returns the listings flagged for the home page.
func (lc *ListingController) FeaturedListings(c echo.Context) error {
	listings, err := lc.fetchListings(c.Request().Context(), bson.M{"featured": true})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}
	return c.JSON(http.StatusOK, listings)
}

func (lc *ListingController) GetListing(c echo.Context) error {
	id := c.Param("id")

	var listing models.Listing
	err := lc.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&listing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}
	return c.JSON(http.StatusOK, listing)
}

// AdminListListings backs the dashboard table: every listing, optionally
// narrowed by a title/location search.
func (lc *ListingController) AdminListListings(c echo.Context) error {
	listings, err := lc.fetchListings(c.Request().Context(), bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}

	if search := c.QueryParam("search"); search != "" {
		q := strings.ToLower(search)
		matched := make([]models.Listing, 0, len(listings))
		for _, l := range listings {
			if strings.Contains(strings.ToLower(l.Title), q) ||
				strings.Contains(strings.ToLower(l.Location), q) {
				matched = append(matched, l)
			}
		}
		listings = matched
	}

	return c.JSON(http.StatusOK, listings)
}

func (lc *ListingController) CreateListing(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var input models.ListingInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	listing, err := services.BuildListing(input, userID.Hex(), time.Now())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	count, err := lc.collection.CountDocuments(context.Background(), bson.M{"_id": listing.ID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check property existence"})
	}
	if count > 0 {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Property with this id already exists"})
	}

	if _, err := lc.collection.InsertOne(context.Background(), listing); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}
	return c.JSON(http.StatusCreated, listing)
}

// UpdateListing applies a merge edit: fields absent from the request body are
// preserved on the stored document. Last write wins per field.
func (lc *ListingController) UpdateListing(c echo.Context) error {
	id := c.Param("id")

	err := lc.collection.FindOne(context.Background(), bson.M{"_id": id}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	var update models.ListingUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := services.ValidateUpdate(update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	setDoc := update.SetDocument(time.Now())
	if _, err := lc.collection.UpdateOne(context.Background(), bson.M{"_id": id}, bson.M{"$set": setDoc}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update property"})
	}

	var listing models.Listing
	if err := lc.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&listing); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated property"})
	}
	return c.JSON(http.StatusOK, listing)
}

// DeleteListing removes a listing permanently. There is no soft delete.
func (lc *ListingController) DeleteListing(c echo.Context) error {
	id := c.Param("id")

	result, err := lc.collection.DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete property"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}
