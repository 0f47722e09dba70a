package service

import (
	"context"
	"log"

	"github.com/staffdir/staffdir-backend/internal/repository"
)

// ============================================
// Admin Service
// ============================================

type AdminService interface {
	// AddTag creates a catalog tag. Duplicate names are allowed.
	AddTag(ctx context.Context, name string) (*repository.Tag, error)
}

type adminService struct {
	tagRepo repository.TagRepository
}

func NewAdminService(tagRepo repository.TagRepository) AdminService {
	return &adminService{tagRepo: tagRepo}
}

func (s *adminService) AddTag(ctx context.Context, name string) (*repository.Tag, error) {
	tag := &repository.Tag{Name: name}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		log.Printf("[AdminService] AddTag - %v", err)
		return nil, err
	}
	return tag, nil
}
