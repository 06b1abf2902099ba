package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/admart/backend/internal/domain/errors"
	"github.com/admart/backend/internal/domain/model"
	"github.com/admart/backend/internal/server/http/dto"
	"github.com/admart/backend/internal/server/http/middleware"
	"github.com/admart/backend/internal/usecase"
)

// AdvertiserHandler processes advertiser registration and profile lookup.
type AdvertiserHandler struct {
	facade AdvertiserFacade
}

// NewAdvertiserHandler creates AdvertiserHandler instance.
func NewAdvertiserHandler(facade AdvertiserFacade) *AdvertiserHandler {
	return &AdvertiserHandler{facade: facade}
}

// Register handles POST /advertiser/. A fresh account is logged in right
// away: the response carries the session cookie.
func (h *AdvertiserHandler) Register(c *gin.Context) {
	var req dto.RegisterAdvertiserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	advertiser, user, token, err := h.facade.RegisterAdvertiser(c.Request.Context(), usecase.RegisterAdvertiserInput{
		Username: req.User.Username,
		Password: req.User.Password,
		Email:    req.User.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		if ve, ok := domainErrors.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, ve.Fields)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, toAdvertiserResponse(advertiser, user))
}

// Profile handles GET /advertiser/.
func (h *AdvertiserHandler) Profile(c *gin.Context) {
	userID := CurrentUserID(c)

	advertiser, user, err := h.facade.AdvertiserProfile(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toAdvertiserResponse(advertiser, user))
}

func toAdvertiserResponse(advertiser *model.Advertiser, user *model.User) dto.AdvertiserResponse {
	return dto.AdvertiserResponse{
		User: dto.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
		Phone: advertiser.Phone,
	}
}
