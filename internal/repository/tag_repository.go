package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ============================================
// PostgreSQL Tag Repository
// ============================================

type pgTagRepository struct {
	pool *pgxpool.Pool
}

func (r *pgTagRepository) Create(ctx context.Context, tag *Tag) error {
	// Duplicate names are allowed; the catalog has no uniqueness rule.
	return r.pool.QueryRow(ctx, `
		INSERT INTO tags (name) VALUES ($1) RETURNING id
	`, tag.Name).Scan(&tag.ID)
}

func (r *pgTagRepository) FindAll(ctx context.Context) ([]*Tag, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM tags ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*Tag
	for rows.Next() {
		tag := &Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (r *pgTagRepository) FindExistingIDs(ctx context.Context, ids []int) ([]int, error) {
	if len(ids) == 0 {
		return []int{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id FROM tags WHERE id = ANY($1) ORDER BY id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	existing := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		existing = append(existing, id)
	}
	return existing, rows.Err()
}

// ============================================
// PostgreSQL Auth Repository
// ============================================

type pgAuthRepository struct {
	pool *pgxpool.Pool
}

func (r *pgAuthRepository) Create(ctx context.Context, auth *Auth) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO auths (username, password, role_type)
		VALUES ($1, $2, $3)
		RETURNING id
	`, auth.Username, auth.Password, auth.RoleType).Scan(&auth.ID)
}

func (r *pgAuthRepository) FindByUsername(ctx context.Context, username string) (*Auth, error) {
	auth := &Auth{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, password, role_type FROM auths WHERE username = $1
	`, username).Scan(&auth.ID, &auth.Username, &auth.Password, &auth.RoleType)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return auth, nil
}

// ============================================
// PostgreSQL Association Repository
// ============================================

type pgAssociationRepository struct {
	pool *pgxpool.Pool
}

// FindMemberIDsByTags matches members holding at least one of the requested
// tags (OR, not AND).
func (r *pgAssociationRepository) FindMemberIDsByTags(ctx context.Context, tagIDs []int) ([]int, error) {
	if len(tagIDs) == 0 {
		return []int{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT member_id FROM members_tags WHERE tag_id = ANY($1)
	`, tagIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memberIDs := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		memberIDs = append(memberIDs, id)
	}
	return memberIDs, rows.Err()
}
