package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/admart/backend/internal/domain/errors"
	"github.com/admart/backend/internal/server/http/dto"
	"github.com/admart/backend/internal/server/http/middleware"
)

// AuthHandler processes login and logout.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /user-auth/.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"non_field_errors": []string{"Invalid Credentials"}})
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"non_field_errors": []string{"Invalid Credentials"}})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// Logout handles DELETE /user-auth/.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := CurrentToken(c)
	if err := h.facade.Logout(c.Request.Context(), token); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	middleware.ClearAuthCookie(c)
	c.Status(http.StatusNoContent)
}
