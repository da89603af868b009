package handlers

import (
	"net/http"

	"github.com/Timexll/TEMMY-REALTY/services"
	"github.com/labstack/echo/v4"
)

type DescribeController struct {
	describer *services.Describer
}

func NewDescribeController(describer *services.Describer) *DescribeController {
	return &DescribeController{describer: describer}
}

// GenerateDescription produces marketing copy for a draft listing. The
// editor blocks generation until a title (sent as highlights) and a location
// are populated; everything else falls back to sensible defaults. On failure
// the draft is untouched and the admin falls back to manual entry.
func (dc *DescribeController) GenerateDescription(c echo.Context) error {
	if dc.describer == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "Description generation is not configured",
		})
	}

	var req services.DescriptionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if req.Highlights == "" || req.Location == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Please enter at least a title and location for generation",
		})
	}
	if req.PropertyType == "" {
		req.PropertyType = "Residential"
	}
	if req.Price == "" {
		req.Price = "Contact for price"
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid generation request"})
	}

	result, err := dc.describer.Generate(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "Generation failed, please try manual entry",
		})
	}

	return c.JSON(http.StatusOK, result)
}
