package service

import (
	"context"
	"log"

	"github.com/staffdir/staffdir-backend/internal/repository"
)

// ============================================
// Member Service (generic over specialization)
// ============================================

// MemberService is the uniform contract over one specialization kind. A is
// the specialization's scalar attribute: int (contract duration) for
// contractors, repository.RoleType for employees. One implementation serves
// both kinds; the kind is fixed by the repository it is built around.
type MemberService[A any] interface {
	GetAll(ctx context.Context) ([]*repository.MemberRecord[A], error)
	GetByID(ctx context.Context, id int) (*repository.MemberRecord[A], error)
	Create(ctx context.Context, name string, attribute A, tagIDs []int) (*repository.MemberRecord[A], error)
	// Update replaces the member's name and specialization attribute. tagIDs
	// controls the association set: nil leaves existing tags untouched, an
	// empty non-nil slice clears them, a non-empty slice replaces them.
	Update(ctx context.Context, id int, name string, attribute A, tagIDs []int) (*repository.MemberRecord[A], error)
	Delete(ctx context.Context, id int) error
	// Filter returns the members holding at least one of the given tags.
	Filter(ctx context.Context, tagIDs []int) ([]*repository.MemberRecord[A], error)
}

type memberService[A any] struct {
	name       string
	jobType    repository.JobType
	memberRepo repository.MemberRepository[A]
	tagRepo    repository.TagRepository
	assocRepo  repository.AssociationRepository
}

func NewMemberService[A any](
	name string,
	jobType repository.JobType,
	memberRepo repository.MemberRepository[A],
	tagRepo repository.TagRepository,
	assocRepo repository.AssociationRepository,
) MemberService[A] {
	return &memberService[A]{
		name:       name,
		jobType:    jobType,
		memberRepo: memberRepo,
		tagRepo:    tagRepo,
		assocRepo:  assocRepo,
	}
}

func (s *memberService[A]) GetAll(ctx context.Context) ([]*repository.MemberRecord[A], error) {
	records, err := s.memberRepo.FindAll(ctx)
	if err != nil {
		log.Printf("[%s] GetAll - %v", s.name, err)
		return nil, err
	}
	return records, nil
}

func (s *memberService[A]) GetByID(ctx context.Context, id int) (*repository.MemberRecord[A], error) {
	rec, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("[%s] GetById - %v", s.name, err)
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (s *memberService[A]) Create(ctx context.Context, name string, attribute A, tagIDs []int) (*repository.MemberRecord[A], error) {
	// Resolve against the catalog first: unknown tag ids are dropped, not
	// rejected, and duplicates collapse.
	resolved, err := s.tagRepo.FindExistingIDs(ctx, tagIDs)
	if err != nil {
		log.Printf("[%s] Create - %v", s.name, err)
		return nil, err
	}

	rec := &repository.MemberRecord[A]{
		Name:      name,
		JobType:   s.jobType,
		Attribute: attribute,
		TagIDs:    resolved,
	}
	if err := s.memberRepo.Create(ctx, rec); err != nil {
		log.Printf("[%s] Create - %v", s.name, err)
		return nil, err
	}
	return rec, nil
}

func (s *memberService[A]) Update(ctx context.Context, id int, name string, attribute A, tagIDs []int) (*repository.MemberRecord[A], error) {
	existing, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("[%s] Update - %v", s.name, err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	replaceTags := tagIDs != nil
	resolved := []int{}
	if replaceTags && len(tagIDs) > 0 {
		if resolved, err = s.tagRepo.FindExistingIDs(ctx, tagIDs); err != nil {
			log.Printf("[%s] Update - %v", s.name, err)
			return nil, err
		}
	}

	rec := &repository.MemberRecord[A]{
		ID:        id,
		Name:      name,
		JobType:   s.jobType,
		Attribute: attribute,
		TagIDs:    resolved,
	}
	if err := s.memberRepo.Update(ctx, rec, replaceTags); err != nil {
		log.Printf("[%s] Update - %v", s.name, err)
		return nil, err
	}
	return rec, nil
}

func (s *memberService[A]) Delete(ctx context.Context, id int) error {
	existing, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("[%s] Delete - %v", s.name, err)
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	if err := s.memberRepo.Delete(ctx, id); err != nil {
		log.Printf("[%s] Delete - %v", s.name, err)
		return err
	}
	return nil
}

func (s *memberService[A]) Filter(ctx context.Context, tagIDs []int) ([]*repository.MemberRecord[A], error) {
	memberIDs, err := s.assocRepo.FindMemberIDsByTags(ctx, tagIDs)
	if err != nil {
		log.Printf("[%s] Filter - %v", s.name, err)
		return nil, err
	}
	// memberIDs spans both kinds; the member repository keeps only its own.
	records, err := s.memberRepo.FindByMemberIDs(ctx, memberIDs)
	if err != nil {
		log.Printf("[%s] Filter - %v", s.name, err)
		return nil, err
	}
	return records, nil
}
