package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdir/staffdir-backend/internal/models"
	"github.com/staffdir/staffdir-backend/internal/service"
)

// ============================================
// Contractor Handler
// ============================================

type ContractorHandler struct {
	contractorService service.MemberService[int]
}

func (h *ContractorHandler) GetAll(c *gin.Context) {
	records, err := h.contractorService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contractors"})
		return
	}

	c.JSON(http.StatusOK, models.GetAllContractorsResponse{
		Count:       len(records),
		Contractors: toContractorResponses(records),
	})
}

func (h *ContractorHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	rec, err := h.contractorService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contractor"})
		return
	}

	c.JSON(http.StatusOK, toContractorResponse(rec))
}

func (h *ContractorHandler) Create(c *gin.Context) {
	var req models.ContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	rec, err := h.contractorService.Create(c.Request.Context(), req.Name, req.ContractDuration, req.Tags)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contractor"})
		return
	}

	c.JSON(http.StatusOK, toContractorResponse(rec))
}

func (h *ContractorHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	var req models.ContractorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	// nil means keep existing tags; a present list (even empty) replaces.
	var tagIDs []int
	if req.Tags != nil {
		tagIDs = *req.Tags
		if tagIDs == nil {
			tagIDs = []int{}
		}
	}

	rec, err := h.contractorService.Update(c.Request.Context(), id, req.Name, req.ContractDuration, tagIDs)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contractor"})
		return
	}

	c.JSON(http.StatusOK, toContractorResponse(rec))
}

func (h *ContractorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	if err := h.contractorService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contractor"})
		return
	}

	c.Status(http.StatusNoContent)
}
