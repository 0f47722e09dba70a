package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ============================================
// PostgreSQL Member Repository (generic)
// ============================================

// specTable describes the storage of one specialization kind. The
// specialization table keys on member_id, so the exposed record id and the
// member id are the same value.
type specTable struct {
	jobType JobType
	table   string
	column  string
}

var (
	contractorTable = specTable{jobType: JobTypeContractor, table: "contractors", column: "contract_duration"}
	employeeTable   = specTable{jobType: JobTypeEmployee, table: "employees", column: "role_type"}
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so reads can run
// inside or outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type pgMemberRepository[A any] struct {
	pool *pgxpool.Pool
	spec specTable

	selectJoin string
}

func newPgMemberRepository[A any](pool *pgxpool.Pool, spec specTable) *pgMemberRepository[A] {
	return &pgMemberRepository[A]{
		pool: pool,
		spec: spec,
		selectJoin: fmt.Sprintf(`
			SELECT m.id, m.name, m.job_type, s.%s
			FROM %s s
			JOIN members m ON m.id = s.member_id
		`, spec.column, spec.table),
	}
}

func (r *pgMemberRepository[A]) FindAll(ctx context.Context) ([]*MemberRecord[A], error) {
	return r.findList(ctx, r.selectJoin+` ORDER BY m.id`)
}

func (r *pgMemberRepository[A]) FindByID(ctx context.Context, id int) (*MemberRecord[A], error) {
	rec := &MemberRecord[A]{}
	err := r.pool.QueryRow(ctx, r.selectJoin+` WHERE m.id = $1`, id).Scan(
		&rec.ID, &rec.Name, &rec.JobType, &rec.Attribute,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := loadTagIDs(ctx, r.pool, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *pgMemberRepository[A]) FindByMemberIDs(ctx context.Context, ids []int) ([]*MemberRecord[A], error) {
	if len(ids) == 0 {
		return []*MemberRecord[A]{}, nil
	}
	return r.findList(ctx, r.selectJoin+` WHERE m.id = ANY($1) ORDER BY m.id`, ids)
}

func (r *pgMemberRepository[A]) findList(ctx context.Context, query string, args ...any) ([]*MemberRecord[A], error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*MemberRecord[A]{}
	byID := map[int]*MemberRecord[A]{}
	for rows.Next() {
		rec := &MemberRecord[A]{TagIDs: []int{}}
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.JobType, &rec.Attribute); err != nil {
			return nil, err
		}
		records = append(records, rec)
		byID[rec.ID] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return records, nil
	}

	memberIDs := make([]int, len(records))
	for i, rec := range records {
		memberIDs[i] = rec.ID
	}
	tagRows, err := r.pool.Query(ctx, `
		SELECT member_id, tag_id FROM members_tags
		WHERE member_id = ANY($1) ORDER BY id
	`, memberIDs)
	if err != nil {
		return nil, err
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var memberID, tagID int
		if err := tagRows.Scan(&memberID, &tagID); err != nil {
			return nil, err
		}
		if rec, ok := byID[memberID]; ok {
			rec.TagIDs = append(rec.TagIDs, tagID)
		}
	}
	return records, tagRows.Err()
}

func (r *pgMemberRepository[A]) Create(ctx context.Context, rec *MemberRecord[A]) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO members (name, job_type) VALUES ($1, $2) RETURNING id
		`, rec.Name, r.spec.jobType).Scan(&rec.ID)
		if err != nil {
			return err
		}

		if err := insertAssociations(ctx, tx, rec.ID, rec.TagIDs); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, fmt.Sprintf(`
			INSERT INTO %s (member_id, %s) VALUES ($1, $2)
		`, r.spec.table, r.spec.column), rec.ID, rec.Attribute)
		if err != nil {
			return err
		}

		return loadTagIDs(ctx, tx, rec)
	})
}

func (r *pgMemberRepository[A]) Update(ctx context.Context, rec *MemberRecord[A], replaceTags bool) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if replaceTags {
			if _, err := tx.Exec(ctx, `DELETE FROM members_tags WHERE member_id = $1`, rec.ID); err != nil {
				return err
			}
			if err := insertAssociations(ctx, tx, rec.ID, rec.TagIDs); err != nil {
				return err
			}
		}

		if _, err := tx.Exec(ctx, `UPDATE members SET name = $2 WHERE id = $1`, rec.ID, rec.Name); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, fmt.Sprintf(`
			UPDATE %s SET %s = $2 WHERE member_id = $1
		`, r.spec.table, r.spec.column), rec.ID, rec.Attribute)
		if err != nil {
			return err
		}

		return loadTagIDs(ctx, tx, rec)
	})
}

func (r *pgMemberRepository[A]) Delete(ctx context.Context, id int) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM members_tags WHERE member_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE member_id = $1`, r.spec.table), id); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
		return err
	})
}

// inTx runs fn in one transaction, rolling back on any error so no partial
// member/association/specialization state is ever left behind.
func (r *pgMemberRepository[A]) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertAssociations(ctx context.Context, q querier, memberID int, tagIDs []int) error {
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := q.Exec(ctx, `
		INSERT INTO members_tags (member_id, tag_id)
		SELECT $1, unnest($2::int[])
	`, memberID, tagIDs)
	return err
}

func loadTagIDs[A any](ctx context.Context, q querier, rec *MemberRecord[A]) error {
	rows, err := q.Query(ctx, `
		SELECT tag_id FROM members_tags WHERE member_id = $1 ORDER BY id
	`, rec.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	rec.TagIDs = []int{}
	for rows.Next() {
		var tagID int
		if err := rows.Scan(&tagID); err != nil {
			return err
		}
		rec.TagIDs = append(rec.TagIDs, tagID)
	}
	return rows.Err()
}
