package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdir/staffdir-backend/internal/models"
	"github.com/staffdir/staffdir-backend/internal/repository"
	"github.com/staffdir/staffdir-backend/internal/service"
)

// ============================================
// Employee Handler
// ============================================

type EmployeeHandler struct {
	employeeService service.MemberService[repository.RoleType]
}

func (h *EmployeeHandler) GetAll(c *gin.Context) {
	records, err := h.employeeService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees"})
		return
	}

	c.JSON(http.StatusOK, models.GetAllEmployeesResponse{
		Count:     len(records),
		Employees: toEmployeeResponses(records),
	})
}

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	rec, err := h.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employee"})
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponse(rec))
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req models.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	rec, err := h.employeeService.Create(c.Request.Context(), req.Name, repository.RoleType(req.RoleType), req.Tags)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponse(rec))
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	var req models.EmployeeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	var tagIDs []int
	if req.Tags != nil {
		tagIDs = *req.Tags
		if tagIDs == nil {
			tagIDs = []int{}
		}
	}

	rec, err := h.employeeService.Update(c.Request.Context(), id, req.Name, repository.RoleType(req.RoleType), tagIDs)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponse(rec))
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee"})
		return
	}

	c.Status(http.StatusNoContent)
}
