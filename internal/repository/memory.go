package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// ============================================
// In-Memory Store
// ============================================

type memberRow struct {
	ID      int
	Name    string
	JobType JobType
}

type assocRow struct {
	ID       int
	MemberID int
	TagID    int
}

// memoryStore backs the in-memory repositories. One mutex guards everything,
// so each repository call is atomic the way one pg transaction is.
type memoryStore struct {
	mu sync.Mutex

	nextMemberID int
	nextTagID    int
	nextAssocID  int
	nextAuthID   int

	tags    map[int]*Tag
	members map[int]*memberRow
	assocs  map[int]*assocRow
	auths   map[int]*Auth

	// createFault, when set, is returned from member Create after the member
	// id has been assigned but before the specialization attribute lands.
	// Nothing is committed in that case. Tests use it to exercise rollback.
	createFault error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		nextMemberID: 1,
		nextTagID:    1,
		nextAssocID:  1,
		nextAuthID:   1,
		tags:         map[int]*Tag{},
		members:      map[int]*memberRow{},
		assocs:       map[int]*assocRow{},
		auths:        map[int]*Auth{},
	}
}

// tagIDsOf returns the member's tag ids ordered by association id.
func (s *memoryStore) tagIDsOf(memberID int) []int {
	rows := []*assocRow{}
	for _, a := range s.assocs {
		if a.MemberID == memberID {
			rows = append(rows, a)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	tagIDs := make([]int, len(rows))
	for i, a := range rows {
		tagIDs[i] = a.TagID
	}
	return tagIDs
}

func (s *memoryStore) removeAssocsOf(memberID int) {
	for id, a := range s.assocs {
		if a.MemberID == memberID {
			delete(s.assocs, id)
		}
	}
}

func (s *memoryStore) addAssocs(memberID int, tagIDs []int) {
	for _, tagID := range tagIDs {
		s.assocs[s.nextAssocID] = &assocRow{ID: s.nextAssocID, MemberID: memberID, TagID: tagID}
		s.nextAssocID++
	}
}

// ============================================
// In-Memory Member Repository (generic)
// ============================================

type memoryMemberRepository[A any] struct {
	store   *memoryStore
	jobType JobType
	attrs   map[int]A
}

func newMemoryMemberRepository[A any](store *memoryStore, jobType JobType) *memoryMemberRepository[A] {
	return &memoryMemberRepository[A]{store: store, jobType: jobType, attrs: map[int]A{}}
}

func (r *memoryMemberRepository[A]) record(id int) *MemberRecord[A] {
	member := r.store.members[id]
	return &MemberRecord[A]{
		ID:        member.ID,
		Name:      member.Name,
		JobType:   member.JobType,
		Attribute: r.attrs[id],
		TagIDs:    r.store.tagIDsOf(id),
	}
}

func (r *memoryMemberRepository[A]) FindAll(ctx context.Context) ([]*MemberRecord[A], error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ids := make([]int, 0, len(r.attrs))
	for id := range r.attrs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	records := make([]*MemberRecord[A], len(ids))
	for i, id := range ids {
		records[i] = r.record(id)
	}
	return records, nil
}

func (r *memoryMemberRepository[A]) FindByID(ctx context.Context, id int) (*MemberRecord[A], error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.attrs[id]; !ok {
		return nil, nil
	}
	return r.record(id), nil
}

func (r *memoryMemberRepository[A]) FindByMemberIDs(ctx context.Context, ids []int) ([]*MemberRecord[A], error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	matched := []int{}
	for _, id := range ids {
		if _, ok := r.attrs[id]; ok {
			matched = append(matched, id)
		}
	}
	sort.Ints(matched)

	records := make([]*MemberRecord[A], len(matched))
	for i, id := range matched {
		records[i] = r.record(id)
	}
	return records, nil
}

func (r *memoryMemberRepository[A]) Create(ctx context.Context, rec *MemberRecord[A]) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	memberID := r.store.nextMemberID
	if r.store.createFault != nil {
		return r.store.createFault
	}

	r.store.nextMemberID++
	r.store.members[memberID] = &memberRow{ID: memberID, Name: rec.Name, JobType: r.jobType}
	r.store.addAssocs(memberID, rec.TagIDs)
	r.attrs[memberID] = rec.Attribute

	rec.ID = memberID
	rec.JobType = r.jobType
	rec.TagIDs = r.store.tagIDsOf(memberID)
	return nil
}

func (r *memoryMemberRepository[A]) Update(ctx context.Context, rec *MemberRecord[A], replaceTags bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	member, ok := r.store.members[rec.ID]
	if !ok {
		return fmt.Errorf("member %d does not exist", rec.ID)
	}

	if replaceTags {
		r.store.removeAssocsOf(rec.ID)
		r.store.addAssocs(rec.ID, rec.TagIDs)
	}

	member.Name = rec.Name
	r.attrs[rec.ID] = rec.Attribute
	rec.JobType = member.JobType
	rec.TagIDs = r.store.tagIDsOf(rec.ID)
	return nil
}

func (r *memoryMemberRepository[A]) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.removeAssocsOf(id)
	delete(r.attrs, id)
	delete(r.store.members, id)
	return nil
}

// ============================================
// In-Memory Tag Repository
// ============================================

type memoryTagRepository struct {
	store *memoryStore
}

func (r *memoryTagRepository) Create(ctx context.Context, tag *Tag) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tag.ID = r.store.nextTagID
	r.store.nextTagID++
	r.store.tags[tag.ID] = &Tag{ID: tag.ID, Name: tag.Name}
	return nil
}

func (r *memoryTagRepository) FindAll(ctx context.Context) ([]*Tag, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ids := make([]int, 0, len(r.store.tags))
	for id := range r.store.tags {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	tags := make([]*Tag, len(ids))
	for i, id := range ids {
		t := *r.store.tags[id]
		tags[i] = &t
	}
	return tags, nil
}

func (r *memoryTagRepository) FindExistingIDs(ctx context.Context, ids []int) ([]int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	seen := map[int]bool{}
	for _, id := range ids {
		if _, ok := r.store.tags[id]; ok {
			seen[id] = true
		}
	}
	existing := make([]int, 0, len(seen))
	for id := range seen {
		existing = append(existing, id)
	}
	sort.Ints(existing)
	return existing, nil
}

// ============================================
// In-Memory Auth Repository
// ============================================

type memoryAuthRepository struct {
	store *memoryStore
}

func (r *memoryAuthRepository) Create(ctx context.Context, auth *Auth) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.auths {
		if existing.Username == auth.Username {
			return fmt.Errorf("username %q is taken", auth.Username)
		}
	}

	auth.ID = r.store.nextAuthID
	r.store.nextAuthID++
	copied := *auth
	r.store.auths[auth.ID] = &copied
	return nil
}

func (r *memoryAuthRepository) FindByUsername(ctx context.Context, username string) (*Auth, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, auth := range r.store.auths {
		if auth.Username == username {
			copied := *auth
			return &copied, nil
		}
	}
	return nil, nil
}

// ============================================
// In-Memory Association Repository
// ============================================

type memoryAssociationRepository struct {
	store *memoryStore
}

func (r *memoryAssociationRepository) FindMemberIDsByTags(ctx context.Context, tagIDs []int) ([]int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	wanted := map[int]bool{}
	for _, id := range tagIDs {
		wanted[id] = true
	}

	matched := map[int]bool{}
	for _, a := range r.store.assocs {
		if wanted[a.TagID] {
			matched[a.MemberID] = true
		}
	}

	memberIDs := make([]int, 0, len(matched))
	for id := range matched {
		memberIDs = append(memberIDs, id)
	}
	sort.Ints(memberIDs)
	return memberIDs, nil
}
