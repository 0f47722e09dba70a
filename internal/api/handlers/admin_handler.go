package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdir/staffdir-backend/internal/models"
	"github.com/staffdir/staffdir-backend/internal/service"
)

// ============================================
// Admin Handler
// ============================================

type AdminHandler struct {
	adminService service.AdminService
}

func (h *AdminHandler) CreateTag(c *gin.Context) {
	var req models.AddTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	tag, err := h.adminService.AddTag(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tag"})
		return
	}

	c.JSON(http.StatusOK, models.TagResponse{ID: tag.ID, Name: tag.Name})
}
