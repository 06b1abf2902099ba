package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/admart/backend/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentToken extracts the raw session token from context.
func CurrentToken(c *gin.Context) string {
	val, ok := c.Get(middleware.AuthTokenContextKey)
	if !ok {
		return ""
	}
	token, _ := val.(string)
	return token
}
