package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/Timexll/TEMMY-REALTY/config"
	"github.com/Timexll/TEMMY-REALTY/models"
	"github.com/Timexll/TEMMY-REALTY/utils"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminController struct {
	users    *mongo.Collection
	profiles *mongo.Collection
}

func NewAdminController() *AdminController {
	usersName := os.Getenv("MONGODB_COLLECTION_USERS")
	if usersName == "" {
		usersName = "users"
	}
	profilesName := os.Getenv("MONGODB_COLLECTION_ADMIN_PROFILES")
	if profilesName == "" {
		profilesName = "admin_profiles"
	}
	return &AdminController{
		users:    config.GetCollection(usersName),
		profiles: config.GetCollection(profilesName),
	}
}

// Profiles exposes the admin profile collection for the authorization
// middleware.
func (ac *AdminController) Profiles() *mongo.Collection {
	return ac.profiles
}

// Register creates an identity together with its companion admin profile.
func (ac *AdminController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Email, password and name are required",
		})
	}

	var existing models.User
	err := ac.users.FindOne(context.Background(), bson.M{"email": req.Email}).Decode(&existing)
	if err == nil {
		return c.JSON(http.StatusConflict, map[string]string{
			"error": "User with this email already exists",
		})
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to hash password",
		})
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     req.Email,
		Password:  hashedPassword,
		Name:      req.Name,
		Role:      "admin",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := ac.users.InsertOne(context.Background(), user); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create user",
		})
	}

	profile := models.AdminProfile{
		ID:           user.ID.Hex(),
		Name:         user.Name,
		Email:        user.Email,
		Role:         "Administrator",
		RegisteredAt: now,
		LastLoginAt:  now,
	}
	if _, err := ac.profiles.InsertOne(context.Background(), profile); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create admin profile",
		})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to generate token",
		})
	}

	user.Password = ""

	return c.JSON(http.StatusCreated, models.LoginResponse{
		Token: token,
		User:  user,
	})
}

func (ac *AdminController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Email and password are required",
		})
	}

	var user models.User
	err := ac.users.FindOne(context.Background(), bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid email or password",
		})
	}

	if !user.IsActive {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Account is deactivated",
		})
	}

	if err := utils.CheckPassword(user.Password, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid email or password",
		})
	}

	// Stamp the companion profile; an identity without one (master email
	// bootstrap) simply has nothing to stamp.
	_, _ = ac.profiles.UpdateOne(
		context.Background(),
		bson.M{"_id": user.ID.Hex()},
		bson.M{"$set": bson.M{"lastLoginAt": time.Now()}},
	)

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to generate token",
		})
	}

	user.Password = ""

	return c.JSON(http.StatusOK, models.LoginResponse{
		Token: token,
		User:  user,
	})
}

// Logout revokes the presented token for its remaining lifetime.
func (ac *AdminController) Logout(c echo.Context) error {
	token, _ := c.Get("token").(string)
	claims, _ := c.Get("claims").(*utils.JWTClaims)
	if token != "" && claims != nil {
		if err := utils.RevokeToken(c.Request().Context(), token, claims.TokenRemaining()); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Failed to sign out",
			})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Signed out successfully",
	})
}

func (ac *AdminController) Me(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var user models.User
	err := ac.users.FindOne(context.Background(), bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "User not found",
		})
	}

	user.Password = ""

	return c.JSON(http.StatusOK, user)
}

func (ac *AdminController) GetProfile(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var profile models.AdminProfile
	err := ac.profiles.FindOne(context.Background(), bson.M{"_id": userID.Hex()}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Admin profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch admin profile"})
	}

	return c.JSON(http.StatusOK, profile)
}

func (ac *AdminController) UpdateProfile(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if req.Name != "" {
		_, err := ac.profiles.UpdateOne(
			context.Background(),
			bson.M{"_id": userID.Hex()},
			bson.M{"$set": bson.M{"name": req.Name}},
		)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Failed to update admin profile",
			})
		}
		_, _ = ac.users.UpdateOne(
			context.Background(),
			bson.M{"_id": userID},
			bson.M{"$set": bson.M{"name": req.Name, "updated_at": time.Now()}},
		)
	}

	var profile models.AdminProfile
	if err := ac.profiles.FindOne(context.Background(), bson.M{"_id": userID.Hex()}).Decode(&profile); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch updated profile",
		})
	}

	return c.JSON(http.StatusOK, profile)
}
