package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdir/staffdir-backend/internal/models"
	"github.com/staffdir/staffdir-backend/internal/repository"
	"github.com/staffdir/staffdir-backend/internal/service"
)

// ============================================
// Common Member Handler (cross-kind reads)
// ============================================

// CommonMemberHandler fans out to both member services and concatenates the
// results. The kinds are disjoint by construction, so no de-duplication is
// needed.
type CommonMemberHandler struct {
	contractorService service.MemberService[int]
	employeeService   service.MemberService[repository.RoleType]
}

func (h *CommonMemberHandler) GetAll(c *gin.Context) {
	contractors, err := h.contractorService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}
	employees, err := h.employeeService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}

	c.JSON(http.StatusOK, models.GetAllMembersResponse{
		Count:       len(contractors) + len(employees),
		Contractors: toContractorResponses(contractors),
		Employees:   toEmployeeResponses(employees),
	})
}

// Search matches members holding any of the requested tags.
// GET /api/commonmember/search?tags=1&tags=2 (or ?tags=1,2)
func (h *CommonMemberHandler) Search(c *gin.Context) {
	tagIDs := parseTagIDs(c)

	contractors, err := h.contractorService.Filter(c.Request.Context(), tagIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search members"})
		return
	}
	employees, err := h.employeeService.Filter(c.Request.Context(), tagIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search members"})
		return
	}

	c.JSON(http.StatusOK, models.GetAllMembersResponse{
		Count:       len(contractors) + len(employees),
		Contractors: toContractorResponses(contractors),
		Employees:   toEmployeeResponses(employees),
	})
}
