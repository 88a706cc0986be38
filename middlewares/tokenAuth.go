package middlewares

import (
	"context"
	"errors"
	"net/http"

	"MediMaga/utils"

	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

// StaffRoles may use the staff routes.
var StaffRoles = []string{utils.RoleAdmin, utils.RoleReceptionist, utils.RoleDoctor}

// TokenAuthMiddleware validates the staff access token from the accessToken query
// parameter and adds the staff identity to the request context.
func TokenAuthMiddleware(symmetricKey []byte, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.DefaultQuery("accessToken", "")
		if token == "" {
			HttpError(c, "Missing access token", http.StatusUnauthorized)
			return
		}

		claims, err := utils.ValidateToken(symmetricKey, token, roles...)
		if errors.Is(err, utils.ErrInsufficientPermissions) {
			HttpError(c, "Forbidden: insufficient privileges", http.StatusForbidden)
			return
		}
		if err != nil {
			HttpError(c, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, userRoleKey, claims.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleAuthMiddleware restricts access to users with the specified role.
func RoleAuthMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := ExtractUserRoleFromContext(c.Request.Context())
		if err != nil {
			HttpError(c, "User role not found in context", http.StatusUnauthorized)
			return
		}

		if role != requiredRole {
			HttpError(c, "Forbidden: insufficient privileges", http.StatusForbidden)
			return
		}

		c.Next()
	}
}

// ExtractUserIDFromContext retrieves the userID from the context.
func ExtractUserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok {
		return "", errors.New("user ID not found in context")
	}
	return userID, nil
}

// ExtractUserRoleFromContext retrieves the user role from the context.
func ExtractUserRoleFromContext(ctx context.Context) (string, error) {
	userRole, ok := ctx.Value(userRoleKey).(string)
	if !ok {
		return "", errors.New("user role not found in context")
	}
	return userRole, nil
}
