package repository

import (
	"context"
	"errors"

	"commune/internal/model"
)

// ErrNotFound is returned by every Find method when no row matches.
// Implementations map their driver's sentinel to this one.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	FindByID(ctx context.Context, id string) (*model.Role, error)
	FindByName(ctx context.Context, name string) (*model.Role, error)
	List(ctx context.Context, offset, limit int) ([]model.Role, int64, error)
}

type CommunityRepository interface {
	Create(ctx context.Context, community *model.Community) error
	FindByID(ctx context.Context, id string) (*model.Community, error)
	List(ctx context.Context, offset, limit int) ([]model.Community, int64, error)
	ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]model.Community, int64, error)
	IDsByOwner(ctx context.Context, ownerID string) ([]string, error)
}

type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	FindByID(ctx context.Context, id string) (*model.Member, error)
	Exists(ctx context.Context, communityID, userID, roleID string) (bool, error)
	ListByCommunity(ctx context.Context, communityID string, offset, limit int) ([]model.Member, int64, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.Member, int64, error)
	CommunityIDsByRole(ctx context.Context, userID, roleID string) ([]string, error)
	DeleteByUserInCommunities(ctx context.Context, userID string, communityIDs []string) (int64, error)
}

// SessionStore keeps a server-side record of issued tokens. The session
// resolver never consults it; sign-in writes, sign-out deletes.
type SessionStore interface {
	Save(ctx context.Context, userID, token string) error
	Delete(ctx context.Context, userID string) error
}
