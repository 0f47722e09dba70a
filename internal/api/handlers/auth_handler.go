package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdir/staffdir-backend/internal/models"
	"github.com/staffdir/staffdir-backend/internal/service"
)

// ============================================
// Auth Handler
// ============================================

type AuthHandler struct {
	authService service.AuthService
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	login, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username is taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Token:    login.Token,
		ID:       login.ID,
		RoleType: string(login.RoleType),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	login, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Unknown user and wrong password both land here: a 404 without a
		// body keeps the two indistinguishable.
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Token:    login.Token,
		ID:       login.ID,
		RoleType: string(login.RoleType),
	})
}
