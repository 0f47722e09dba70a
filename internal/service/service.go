package service

import (
	"errors"

	"github.com/staffdir/staffdir-backend/internal/config"
	"github.com/staffdir/staffdir-backend/internal/repository"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid token")
)

// ============================================
// Services Container
// ============================================

type Services struct {
	Auth       AuthService
	Admin      AdminService
	Contractor MemberService[int]
	Employee   MemberService[repository.RoleType]
}

func NewServices(cfg *config.Config, repos *repository.Repositories) *Services {
	return &Services{
		Auth:  NewAuthService(cfg, repos.AuthRepo),
		Admin: NewAdminService(repos.TagRepo),
		Contractor: NewMemberService[int](
			"ContractorService", repository.JobTypeContractor,
			repos.ContractorRepo, repos.TagRepo, repos.AssociationRepo,
		),
		Employee: NewMemberService[repository.RoleType](
			"EmployeeService", repository.JobTypeEmployee,
			repos.EmployeeRepo, repos.TagRepo, repos.AssociationRepo,
		),
	}
}
