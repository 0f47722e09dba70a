// internal/seed/seed.go
package seed

import (
	"context"
	"log"

	"github.com/staffdir/staffdir-backend/internal/config"
	"github.com/staffdir/staffdir-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// defaultTags is the initial tag catalog expected at first boot.
var defaultTags = []string{
	"C#",
	"Python",
	"Ruby",
	"Java",
	"Angular",
	"NodeJS",
	"NetCore",
	"Flutter",
	"React Native",
	"C++",
	"Go",
}

// SeedData populates the tag catalog and the administrative auth record on
// first boot. It is idempotent: a non-empty catalog or an existing admin
// record is left alone.
func SeedData(cfg *config.Config, repos *repository.Repositories) {
	ctx := context.Background()

	tags, err := repos.TagRepo.FindAll(ctx)
	if err != nil {
		log.Printf("[Seed] Failed to inspect tag catalog: %v", err)
		return
	}
	if len(tags) == 0 {
		log.Println("[Seed] Creating initial tag catalog...")
		for _, name := range defaultTags {
			if err := repos.TagRepo.Create(ctx, &repository.Tag{Name: name}); err != nil {
				log.Printf("[Seed] Failed to create tag %q: %v", name, err)
				return
			}
		}
	}

	admin, err := repos.AuthRepo.FindByUsername(ctx, cfg.AdminUsername)
	if err != nil {
		log.Printf("[Seed] Failed to look up admin record: %v", err)
		return
	}
	if admin == nil {
		log.Println("[Seed] Creating admin auth record...")
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("[Seed] Failed to hash admin password: %v", err)
			return
		}
		err = repos.AuthRepo.Create(ctx, &repository.Auth{
			Username: cfg.AdminUsername,
			Password: string(hashed),
			RoleType: repository.AuthRoleAdmin,
		})
		if err != nil {
			log.Printf("[Seed] Failed to create admin record: %v", err)
		}
	}
}
