package routes

import (
	"github.com/Timexll/TEMMY-REALTY/handlers"
	"github.com/Timexll/TEMMY-REALTY/middleware"
	"github.com/Timexll/TEMMY-REALTY/services"
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, describer *services.Describer, adminMasterEmail string) {
	adminController := handlers.NewAdminController()
	listingController := handlers.NewListingController()
	inquiryController := handlers.NewInquiryController()
	describeController := handlers.NewDescribeController(describer)

	e.GET("/health", handlers.HealthCheck)

	// Identity
	auth := e.Group("/auth")
	auth.POST("/register", adminController.Register)
	auth.POST("/login", adminController.Login)
	auth.POST("/logout", adminController.Logout, middleware.JWTMiddleware())
	auth.GET("/me", adminController.Me, middleware.JWTMiddleware())

	// Public browsing
	e.GET("/properties", listingController.ListListings)
	e.GET("/properties/featured", listingController.FeaturedListings)
	e.GET("/properties/:id", listingController.GetListing)
	e.GET("/properties/:id/similar", listingController.SimilarListings)
	e.POST("/inquiries", inquiryController.CreateInquiry)

	// Admin surface
	admin := e.Group("/admin",
		middleware.JWTMiddleware(),
		middleware.AdminOnly(adminController.Profiles(), adminMasterEmail),
	)
	admin.GET("/profile", adminController.GetProfile)
	admin.PUT("/profile", adminController.UpdateProfile)
	admin.GET("/properties", listingController.AdminListListings)
	admin.POST("/properties", listingController.CreateListing)
	admin.PUT("/properties/:id", listingController.UpdateListing)
	admin.DELETE("/properties/:id", listingController.DeleteListing)
	admin.POST("/properties/describe", describeController.GenerateDescription)
	admin.GET("/inquiries", inquiryController.ListInquiries)
	admin.DELETE("/inquiries/:id", inquiryController.DeleteInquiry)
}
