package router_test

import (
	"context"
	"sync"

	"commune/internal/model"
	"commune/internal/repository"
)

// In-memory repository fakes. Create paths run the same gorm hooks the
// real datastore would, so ids and password hashing behave identically.

type fakeUsers struct {
	mu   sync.Mutex
	rows []*model.User
}

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	if err := u.BeforeCreate(nil); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *u
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.rows {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.rows {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeRoles struct {
	mu   sync.Mutex
	rows []*model.Role
}

func (f *fakeRoles) Create(_ context.Context, r *model.Role) error {
	if err := r.BeforeCreate(nil); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *r
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeRoles) FindByID(_ context.Context, id string) (*model.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRoles) FindByName(_ context.Context, name string) (*model.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.Name == name {
			cp := *r
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRoles) List(_ context.Context, offset, limit int) ([]model.Role, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := int64(len(f.rows))
	var page []model.Role
	for i := offset; i < len(f.rows) && i < offset+limit; i++ {
		page = append(page, *f.rows[i])
	}
	return page, total, nil
}

type fakeCommunities struct {
	mu   sync.Mutex
	rows []*model.Community
}

func (f *fakeCommunities) Create(_ context.Context, c *model.Community) error {
	if err := c.BeforeCreate(nil); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *c
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeCommunities) FindByID(_ context.Context, id string) (*model.Community, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.rows {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCommunities) List(_ context.Context, offset, limit int) ([]model.Community, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := int64(len(f.rows))
	var page []model.Community
	for i := offset; i < len(f.rows) && i < offset+limit; i++ {
		page = append(page, *f.rows[i])
	}
	return page, total, nil
}

func (f *fakeCommunities) ListByOwner(_ context.Context, ownerID string, offset, limit int) ([]model.Community, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var owned []model.Community
	for _, c := range f.rows {
		if c.UserID == ownerID {
			owned = append(owned, *c)
		}
	}
	total := int64(len(owned))
	if offset > len(owned) {
		offset = len(owned)
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], total, nil
}

func (f *fakeCommunities) IDsByOwner(_ context.Context, ownerID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for _, c := range f.rows {
		if c.UserID == ownerID {
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}

type fakeMembers struct {
	mu   sync.Mutex
	rows []*model.Member
}

func (f *fakeMembers) Create(_ context.Context, m *model.Member) error {
	if err := m.BeforeCreate(nil); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *m
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeMembers) FindByID(_ context.Context, id string) (*model.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.rows {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeMembers) Exists(_ context.Context, communityID, userID, roleID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.rows {
		if m.CommunityID == communityID && m.UserID == userID && m.RoleID == roleID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMembers) ListByCommunity(_ context.Context, communityID string, offset, limit int) ([]model.Member, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var in []model.Member
	for _, m := range f.rows {
		if m.CommunityID == communityID {
			in = append(in, *m)
		}
	}
	return slice(in, offset, limit), int64(len(in)), nil
}

func (f *fakeMembers) ListByUser(_ context.Context, userID string, offset, limit int) ([]model.Member, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var in []model.Member
	for _, m := range f.rows {
		if m.UserID == userID {
			in = append(in, *m)
		}
	}
	return slice(in, offset, limit), int64(len(in)), nil
}

func (f *fakeMembers) CommunityIDsByRole(_ context.Context, userID, roleID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for _, m := range f.rows {
		if m.UserID == userID && m.RoleID == roleID {
			ids = append(ids, m.CommunityID)
		}
	}
	return ids, nil
}

func (f *fakeMembers) DeleteByUserInCommunities(_ context.Context, userID string, communityIDs []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	scope := map[string]bool{}
	for _, id := range communityIDs {
		scope[id] = true
	}
	var kept []*model.Member
	var removed int64
	for _, m := range f.rows {
		if m.UserID == userID && scope[m.CommunityID] {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	f.rows = kept
	return removed, nil
}

// countTriple reports how many rows match the membership triple.
func (f *fakeMembers) countTriple(communityID, userID, roleID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, m := range f.rows {
		if m.CommunityID == communityID && m.UserID == userID && m.RoleID == roleID {
			n++
		}
	}
	return n
}

func slice(in []model.Member, offset, limit int) []model.Member {
	if offset > len(in) {
		offset = len(in)
	}
	end := offset + limit
	if end > len(in) {
		end = len(in)
	}
	return in[offset:end]
}

type fakeSessions struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: map[string]string{}}
}

func (f *fakeSessions) Save(_ context.Context, userID, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[userID] = token
	return nil
}

func (f *fakeSessions) Delete(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, userID)
	return nil
}
