package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ============================================
// Models / Entities
// ============================================

// JobType discriminates which specialization table owns a member row.
// It is fixed at creation and never changes.
type JobType string

const (
	JobTypeContractor JobType = "contractor"
	JobTypeEmployee   JobType = "employee"
)

// RoleType is the employee role enumeration.
type RoleType string

const (
	RoleProjectManager   RoleType = "ProjectManager"
	RoleScrumMaster      RoleType = "ScrumMaster"
	RoleDeliveryManager  RoleType = "DeliveryManager"
	RoleSoftwareEngineer RoleType = "SoftwareEngineer"
)

// AuthRole is carried in the JWT but not checked against endpoint access.
type AuthRole string

const (
	AuthRoleAdmin  AuthRole = "Admin"
	AuthRoleWorker AuthRole = "Worker"
)

type Tag struct {
	ID   int
	Name string
}

type Auth struct {
	ID       int
	Username string
	Password string
	RoleType AuthRole
}

// MemberRecord is the composed business view of one member: the shared
// identity joined with its specialization attribute and the ids of its tag
// associations, ordered by association id. A is the specialization's scalar
// attribute type: int (contract duration) for contractors, RoleType for
// employees. The record's ID is the member id; the specialization row shares
// it as its own key.
type MemberRecord[A any] struct {
	ID        int
	Name      string
	JobType   JobType
	Attribute A
	TagIDs    []int
}

// ============================================
// Repository Interfaces
// ============================================

type TagRepository interface {
	Create(ctx context.Context, tag *Tag) error
	FindAll(ctx context.Context) ([]*Tag, error)
	// FindExistingIDs returns the subset of ids present in the catalog,
	// in ascending order, with duplicates collapsed. Unknown ids are
	// silently dropped, never an error.
	FindExistingIDs(ctx context.Context, ids []int) ([]int, error)
}

type AuthRepository interface {
	Create(ctx context.Context, auth *Auth) error
	FindByUsername(ctx context.Context, username string) (*Auth, error)
}

// AssociationRepository is the tag-filter query engine: it resolves a tag-id
// set into the distinct member ids holding at least one matching association
// (OR semantics), independent of specialization kind.
type AssociationRepository interface {
	FindMemberIDsByTags(ctx context.Context, tagIDs []int) ([]int, error)
}

// MemberRepository persists one specialization kind. Create, Update and
// Delete each run as a single transaction: a failure anywhere rolls the
// whole operation back. Find methods return nil (not an error) when no
// specialization row of this kind owns the requested member id.
type MemberRepository[A any] interface {
	FindAll(ctx context.Context) ([]*MemberRecord[A], error)
	FindByID(ctx context.Context, id int) (*MemberRecord[A], error)
	FindByMemberIDs(ctx context.Context, ids []int) ([]*MemberRecord[A], error)
	// Create inserts the member, one association per tag id, and the
	// specialization row, then fills in the assigned ID and the TagIDs in
	// association order.
	Create(ctx context.Context, rec *MemberRecord[A]) error
	// Update overwrites the member name and the specialization attribute.
	// When replaceTags is true all existing associations are deleted first
	// and fresh ones created for rec.TagIDs (an empty slice clears tags);
	// when false the association set is left untouched. TagIDs is refreshed
	// from storage either way.
	Update(ctx context.Context, rec *MemberRecord[A], replaceTags bool) error
	Delete(ctx context.Context, id int) error
}

// ============================================
// Repositories Container
// ============================================

type Repositories struct {
	TagRepo         TagRepository
	AuthRepo        AuthRepository
	AssociationRepo AssociationRepository
	ContractorRepo  MemberRepository[int]
	EmployeeRepo    MemberRepository[RoleType]
}

// NewRepositories creates in-memory repositories (for testing/fallback)
func NewRepositories() *Repositories {
	store := newMemoryStore()
	return &Repositories{
		TagRepo:         &memoryTagRepository{store: store},
		AuthRepo:        &memoryAuthRepository{store: store},
		AssociationRepo: &memoryAssociationRepository{store: store},
		ContractorRepo:  newMemoryMemberRepository[int](store, JobTypeContractor),
		EmployeeRepo:    newMemoryMemberRepository[RoleType](store, JobTypeEmployee),
	}
}

// NewPgRepositories creates PostgreSQL-backed repositories
func NewPgRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		TagRepo:         &pgTagRepository{pool: pool},
		AuthRepo:        &pgAuthRepository{pool: pool},
		AssociationRepo: &pgAssociationRepository{pool: pool},
		ContractorRepo:  newPgMemberRepository[int](pool, contractorTable),
		EmployeeRepo:    newPgMemberRepository[RoleType](pool, employeeTable),
	}
}
