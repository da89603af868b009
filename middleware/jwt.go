package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Timexll/TEMMY-REALTY/utils"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// JWTMiddleware authenticates the request from the Authorization header and
// places the identity's claims on the request context. Tokens that were
// signed out are rejected.
func JWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Authorization header is required",
				})
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Invalid authorization header format",
				})
			}

			tokenString := tokenParts[1]
			claims, err := utils.ValidateJWT(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Invalid token",
				})
			}

			if utils.IsTokenRevoked(c.Request().Context(), tokenString) {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Session has been signed out",
				})
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)
			c.Set("token", tokenString)
			c.Set("claims", claims)

			return next(c)
		}
	}
}

// IsAdminIdentity is the authorization rule: an identity is an admin when a
// companion admin profile document exists for it, or when its email equals
// the privileged master email, case-folded. Binary admin/non-admin only.
func IsAdminIdentity(hasProfile bool, email, masterEmail string) bool {
	if hasProfile {
		return true
	}
	return masterEmail != "" && strings.EqualFold(email, masterEmail)
}

// AdminOnly gates the admin surface. An authenticated identity that is not
// authorized has its token revoked before the 403 is returned, forcing a
// fresh sign-in rather than leaving a half-authenticated session around.
func AdminOnly(profiles *mongo.Collection, masterEmail string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := c.Get("user_id").(primitive.ObjectID)
			email := c.Get("user_email").(string)

			hasProfile := false
			err := profiles.FindOne(c.Request().Context(), bson.M{"_id": userID.Hex()}).Err()
			if err == nil {
				hasProfile = true
			} else if err != mongo.ErrNoDocuments {
				return c.JSON(http.StatusInternalServerError, map[string]string{
					"error": "Failed to check admin profile",
				})
			}

			if !IsAdminIdentity(hasProfile, email, masterEmail) {
				revokeSession(c)
				return c.JSON(http.StatusForbidden, map[string]string{
					"error":    "Admin access required",
					"redirect": "/admin/login",
				})
			}

			return next(c)
		}
	}
}

func revokeSession(c echo.Context) {
	token, _ := c.Get("token").(string)
	claims, _ := c.Get("claims").(*utils.JWTClaims)
	if token == "" || claims == nil {
		return
	}
	// Best effort: a failed revocation still leaves the 403 in place.
	_ = utils.RevokeToken(context.WithoutCancel(c.Request().Context()), token, claims.TokenRemaining())
}
