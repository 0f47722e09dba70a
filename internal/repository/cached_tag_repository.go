package repository

import (
	"context"
	"errors"
	"log"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// A Redis set cannot hold zero members, so an empty catalog is never cached.
var errEmptyCatalog = errors.New("tag catalog is empty")

const tagIDSetKey = "staffdir:tag_ids"

// cachedTagRepository keeps the set of catalog tag ids in Redis so the
// resolve-on-write path does not hit Postgres for every create/update. The
// catalog is append-only in-system, so the cached set never goes stale except
// by missing fresh inserts, which Create repairs. Any Redis failure falls
// back to the inner repository.
type cachedTagRepository struct {
	inner TagRepository
	rdb   *redis.Client
}

// NewCachedTagRepository wraps inner with a Redis read-through cache.
func NewCachedTagRepository(inner TagRepository, rdb *redis.Client) TagRepository {
	return &cachedTagRepository{inner: inner, rdb: rdb}
}

func (r *cachedTagRepository) Create(ctx context.Context, tag *Tag) error {
	if err := r.inner.Create(ctx, tag); err != nil {
		return err
	}
	if err := r.rdb.SAdd(ctx, tagIDSetKey, tag.ID).Err(); err != nil {
		log.Printf("[TagCache] SAdd failed, cache may lag: %v", err)
	}
	return nil
}

func (r *cachedTagRepository) FindAll(ctx context.Context) ([]*Tag, error) {
	return r.inner.FindAll(ctx)
}

func (r *cachedTagRepository) FindExistingIDs(ctx context.Context, ids []int) ([]int, error) {
	if len(ids) == 0 {
		return []int{}, nil
	}

	exists, err := r.rdb.Exists(ctx, tagIDSetKey).Result()
	if err != nil {
		log.Printf("[TagCache] Exists failed, using database: %v", err)
		return r.inner.FindExistingIDs(ctx, ids)
	}
	if exists == 0 {
		if err := r.prime(ctx); err != nil {
			if !errors.Is(err, errEmptyCatalog) {
				log.Printf("[TagCache] prime failed, using database: %v", err)
			}
			return r.inner.FindExistingIDs(ctx, ids)
		}
	}

	members := make([]any, len(ids))
	for i, id := range ids {
		members[i] = id
	}
	hits, err := r.rdb.SMIsMember(ctx, tagIDSetKey, members...).Result()
	if err != nil {
		log.Printf("[TagCache] SMIsMember failed, using database: %v", err)
		return r.inner.FindExistingIDs(ctx, ids)
	}

	seen := map[int]bool{}
	for i, hit := range hits {
		if hit {
			seen[ids[i]] = true
		}
	}
	existing := make([]int, 0, len(seen))
	for id := range seen {
		existing = append(existing, id)
	}
	sort.Ints(existing)
	return existing, nil
}

func (r *cachedTagRepository) prime(ctx context.Context) error {
	tags, err := r.inner.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		return errEmptyCatalog
	}
	members := make([]any, len(tags))
	for i, tag := range tags {
		members[i] = strconv.Itoa(tag.ID)
	}
	return r.rdb.SAdd(ctx, tagIDSetKey, members...).Err()
}
