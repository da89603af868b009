package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Timexll/TEMMY-REALTY/models"
	"github.com/Timexll/TEMMY-REALTY/services"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const defaultSimilarLimit = 3

// SimilarListings suggests other listings for a property detail page: same
// category first, then same type, never the listing itself.
func (lc *ListingController) SimilarListings(c echo.Context) error {
	id := c.Param("id")

	var target models.Listing
	err := lc.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&target)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	limit := defaultSimilarLimit
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	listings, err := lc.fetchListings(c.Request().Context(), bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}

	return c.JSON(http.StatusOK, services.SimilarListings(listings, target, limit))
}
