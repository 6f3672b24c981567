package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngenohkevin/zid-admin/internal/middleware"
	"github.com/ngenohkevin/zid-admin/internal/models"
	"github.com/ngenohkevin/zid-admin/internal/services"
)

const MsgInvalidCredentials = "Invalid username or password"

// AuthHandler signs operators in and out of the gateway
type AuthHandler struct {
	authService services.AuthServiceInterface
}

func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login exchanges operator credentials for a bearer token
// @Summary Operator login
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid request data")
		return
	}

	if msg := ValidateRequired(
		Field{Name: "username", Value: req.Username},
		Field{Name: "password", Value: req.Password},
	); msg != "" {
		respondValidationError(c, msg)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, models.NewFailure[interface{}](MsgInvalidCredentials))
			return
		}
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, resp, "Login successful")
}

// Logout revokes the caller's token
// @Summary Operator logout
// @Tags auth
// @Produce json
// @Success 200 {object} Envelope
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.NewFailure[interface{}](middleware.MsgInvalidAuthFormat))
		return
	}

	if err := h.authService.RevokeToken(c.Request.Context(), token); err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, nil, "Logged out successfully")
}

// Me returns the authenticated operator
// @Summary Current operator
// @Tags auth
// @Produce json
// @Success 200 {object} Envelope
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.NewFailure[interface{}](middleware.MsgInvalidToken))
		return
	}

	respondSuccess(c, models.Operator{
		Username: claims.Username,
		Role:     claims.Role,
	}, "")
}
