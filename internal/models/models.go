package models

// ============================================
// Auth DTOs
// ============================================

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	ID       int    `json:"id"`
	RoleType string `json:"roleType"`
}

// ============================================
// Tag DTOs
// ============================================

type AddTagRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type TagResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ============================================
// Contractor DTOs
// ============================================

type ContractorRequest struct {
	Name             string `json:"name" binding:"required,max=100"`
	ContractDuration int    `json:"contractDuration" binding:"required"`
	Tags             []int  `json:"tags"`
}

// ContractorUpdateRequest distinguishes a null tag list (keep existing tags)
// from an empty one (clear all tags) via the pointer.
type ContractorUpdateRequest struct {
	Name             string `json:"name" binding:"required,max=100"`
	ContractDuration int    `json:"contractDuration" binding:"required"`
	Tags             *[]int `json:"tags"`
}

type ContractorResponse struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	ContractDuration int    `json:"contractDuration"`
	Tags             []int  `json:"tags"`
}

type GetAllContractorsResponse struct {
	Count       int                  `json:"count"`
	Contractors []ContractorResponse `json:"contractors"`
}

// ============================================
// Employee DTOs
// ============================================

type EmployeeRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	RoleType string `json:"roleType" binding:"required,oneof=ProjectManager ScrumMaster DeliveryManager SoftwareEngineer"`
	Tags     []int  `json:"tags"`
}

type EmployeeUpdateRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	RoleType string `json:"roleType" binding:"required,oneof=ProjectManager ScrumMaster DeliveryManager SoftwareEngineer"`
	Tags     *[]int `json:"tags"`
}

type EmployeeResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	RoleType string `json:"roleType"`
	Tags     []int  `json:"tags"`
}

type GetAllEmployeesResponse struct {
	Count     int                `json:"count"`
	Employees []EmployeeResponse `json:"employees"`
}

// ============================================
// Aggregate DTOs
// ============================================

type GetAllMembersResponse struct {
	Count       int                  `json:"count"`
	Contractors []ContractorResponse `json:"contractors"`
	Employees   []EmployeeResponse   `json:"employees"`
}

// ============================================
// Errors
// ============================================

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}
