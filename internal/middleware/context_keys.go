package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is the type for keys stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	// loggerCtxKey holds the request-scoped *slog.Logger.
	loggerCtxKey = contextKey("logger")
	// userIDKey holds the authenticated subject when auth is enabled.
	userIDKey = contextKey("userID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return GetUserIDFromCtx(c.Request.Context())
}

// GetUserIDFromCtx retrieves the authenticated user ID from a standard context.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
