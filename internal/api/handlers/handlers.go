package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/staffdir/staffdir-backend/internal/models"
	"github.com/staffdir/staffdir-backend/internal/repository"
	"github.com/staffdir/staffdir-backend/internal/service"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	Auth         *AuthHandler
	Admin        *AdminHandler
	Contractor   *ContractorHandler
	Employee     *EmployeeHandler
	CommonMember *CommonMemberHandler
}

// NewHandlers creates all handlers
func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         &AuthHandler{authService: services.Auth},
		Admin:        &AdminHandler{adminService: services.Admin},
		Contractor:   &ContractorHandler{contractorService: services.Contractor},
		Employee:     &EmployeeHandler{employeeService: services.Employee},
		CommonMember: &CommonMemberHandler{contractorService: services.Contractor, employeeService: services.Employee},
	}
}

// ============================================
// Response Mappers
// ============================================

func toContractorResponse(rec *repository.MemberRecord[int]) models.ContractorResponse {
	return models.ContractorResponse{
		ID:               rec.ID,
		Name:             rec.Name,
		ContractDuration: rec.Attribute,
		Tags:             safeIntSlice(rec.TagIDs),
	}
}

func toContractorResponses(records []*repository.MemberRecord[int]) []models.ContractorResponse {
	responses := make([]models.ContractorResponse, len(records))
	for i, rec := range records {
		responses[i] = toContractorResponse(rec)
	}
	return responses
}

func toEmployeeResponse(rec *repository.MemberRecord[repository.RoleType]) models.EmployeeResponse {
	return models.EmployeeResponse{
		ID:       rec.ID,
		Name:     rec.Name,
		RoleType: string(rec.Attribute),
		Tags:     safeIntSlice(rec.TagIDs),
	}
}

func toEmployeeResponses(records []*repository.MemberRecord[repository.RoleType]) []models.EmployeeResponse {
	responses := make([]models.EmployeeResponse, len(records))
	for i, rec := range records {
		responses[i] = toEmployeeResponse(rec)
	}
	return responses
}

// safeIntSlice keeps tag lists rendering as [] instead of null.
func safeIntSlice(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}

// ============================================
// Shared helpers
// ============================================

// bindingErrors shapes a failed bind as {field, message} pairs.
func bindingErrors(err error) models.ValidationErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return models.ValidationErrorResponse{
			Errors: []models.FieldError{{Field: "body", Message: err.Error()}},
		}
	}

	fieldErrors := make([]models.FieldError, len(verrs))
	for i, fe := range verrs {
		fieldErrors[i] = models.FieldError{Field: fe.Field(), Message: fieldMessage(fe)}
	}
	return models.ValidationErrorResponse{Errors: fieldErrors}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// parseTagIDs reads the tags query in both repeated (?tags=1&tags=2) and
// comma-separated (?tags=1,2) forms. Malformed values are skipped.
func parseTagIDs(c *gin.Context) []int {
	tagIDs := []int{}
	for _, raw := range c.QueryArray("tags") {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if id, err := strconv.Atoi(part); err == nil {
				tagIDs = append(tagIDs, id)
			}
		}
	}
	return tagIDs
}
