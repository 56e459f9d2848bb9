package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"commune/internal/httpx"
	"commune/internal/model"
	"commune/internal/repository"
)

type CommunityService struct {
	communities repository.CommunityRepository
	members     repository.MemberRepository
	roles       repository.RoleRepository
	users       repository.UserRepository
	log         *zap.Logger
}

func NewCommunityService(
	communities repository.CommunityRepository,
	members repository.MemberRepository,
	roles repository.RoleRepository,
	users repository.UserRepository,
	log *zap.Logger,
) *CommunityService {
	return &CommunityService{communities: communities, members: members, roles: roles, users: users, log: log}
}

// OwnerInfo is the denormalized owner shape on enriched responses.
type OwnerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// JoinedCommunity enriches a membership with its community and owner.
type JoinedCommunity struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	Owner     *OwnerInfo `json:"owner,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

type Membership struct {
	ID        string           `json:"id"`
	Community *JoinedCommunity `json:"community,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

type UserInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RoleInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MemberDetail enriches a member row with its user and role.
type MemberDetail struct {
	ID        string    `json:"id"`
	User      *UserInfo `json:"user,omitempty"`
	Role      *RoleInfo `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Create derives the slug, makes sure the "Community Admin" role exists,
// creates the community, then adds the creator as its admin member. The
// steps run sequentially, not in one transaction; the check-then-act on
// the role row is unguarded on purpose.
func (s *CommunityService) Create(ctx context.Context, ownerID, name string) (*model.Community, error) {
	role, err := s.roles.FindByName(ctx, model.RoleCommunityAdmin)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		role = &model.Role{Name: model.RoleCommunityAdmin}
		if err := s.roles.Create(ctx, role); err != nil {
			return nil, err
		}
	}

	community := &model.Community{Name: name, UserID: ownerID}
	if err := s.communities.Create(ctx, community); err != nil {
		return nil, err
	}

	member := &model.Member{CommunityID: community.ID, UserID: ownerID, RoleID: role.ID}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}

	return community, nil
}

func (s *CommunityService) List(ctx context.Context, page int) ([]model.Community, httpx.Meta, error) {
	page = clampPage(page)
	list, total, err := s.communities.List(ctx, (page-1)*PageSize, PageSize)
	if err != nil {
		return nil, httpx.Meta{}, err
	}
	return list, pageMeta(page, total), nil
}

func (s *CommunityService) ListOwned(ctx context.Context, ownerID string, page int) ([]model.Community, httpx.Meta, error) {
	page = clampPage(page)
	list, total, err := s.communities.ListByOwner(ctx, ownerID, (page-1)*PageSize, PageSize)
	if err != nil {
		return nil, httpx.Meta{}, err
	}
	return list, pageMeta(page, total), nil
}

// ListJoined returns the caller's memberships, each resolved to its
// community and that community's owner. One query per row.
func (s *CommunityService) ListJoined(ctx context.Context, userID string, page int) ([]Membership, httpx.Meta, error) {
	page = clampPage(page)
	rows, total, err := s.members.ListByUser(ctx, userID, (page-1)*PageSize, PageSize)
	if err != nil {
		return nil, httpx.Meta{}, err
	}

	list := make([]Membership, 0, len(rows))
	for _, m := range rows {
		item := Membership{ID: m.ID, CreatedAt: m.CreatedAt}
		community, err := s.communities.FindByID(ctx, m.CommunityID)
		if err == nil {
			jc := &JoinedCommunity{ID: community.ID, Name: community.Name, Slug: community.Slug, CreatedAt: community.CreatedAt}
			if owner, err := s.users.FindByID(ctx, community.UserID); err == nil {
				jc.Owner = &OwnerInfo{ID: owner.ID, Name: owner.Name, Email: owner.Email}
			}
			item.Community = jc
		}
		list = append(list, item)
	}
	return list, pageMeta(page, total), nil
}

func (s *CommunityService) ListMembers(ctx context.Context, communityID string, page int) ([]MemberDetail, httpx.Meta, error) {
	page = clampPage(page)
	rows, total, err := s.members.ListByCommunity(ctx, communityID, (page-1)*PageSize, PageSize)
	if err != nil {
		return nil, httpx.Meta{}, err
	}

	list := make([]MemberDetail, 0, len(rows))
	for _, m := range rows {
		item := MemberDetail{ID: m.ID, CreatedAt: m.CreatedAt}
		if user, err := s.users.FindByID(ctx, m.UserID); err == nil {
			item.User = &UserInfo{ID: user.ID, Name: user.Name}
		}
		if role, err := s.roles.FindByID(ctx, m.RoleID); err == nil {
			item.Role = &RoleInfo{ID: role.ID, Name: role.Name}
		}
		list = append(list, item)
	}
	return list, pageMeta(page, total), nil
}
