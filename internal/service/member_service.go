package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"commune/internal/apperr"
	"commune/internal/model"
	"commune/internal/pkg"
	"commune/internal/repository"
)

type MemberService struct {
	members     repository.MemberRepository
	users       repository.UserRepository
	roles       repository.RoleRepository
	communities repository.CommunityRepository
	producer    *pkg.KafkaProducer
	log         *zap.Logger
}

func NewMemberService(
	members repository.MemberRepository,
	users repository.UserRepository,
	roles repository.RoleRepository,
	communities repository.CommunityRepository,
	producer *pkg.KafkaProducer,
	log *zap.Logger,
) *MemberService {
	return &MemberService{members: members, users: users, roles: roles, communities: communities, producer: producer, log: log}
}

// Add creates a membership after checking the referenced role and user
// exist and the (community, user, role) triple is not already present.
// The existence check and the insert are two steps, not one.
func (s *MemberService) Add(ctx context.Context, communityID, userID, roleID string) (*model.Member, error) {
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Field("role", "Role not found.", apperr.CodeResourceNotFound)
		}
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Field("user", "User not found.", apperr.CodeResourceNotFound)
		}
		return nil, err
	}

	exists, err := s.members.Exists(ctx, communityID, userID, roleID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.NewGeneral("Member already exists.", apperr.CodeResourceExists)
	}

	member := &model.Member{CommunityID: communityID, UserID: userID, RoleID: roleID}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}
	s.emit(ctx, "member.added", member)

	return member, nil
}

// Remove deletes every membership the target user holds across the
// communities the caller owns or moderates, not just the community of
// the named membership.
func (s *MemberService) Remove(ctx context.Context, callerID, memberID string) (int64, error) {
	member, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, apperr.NewGeneral("Member not found.", apperr.CodeResourceNotFound)
		}
		return 0, err
	}

	scope, err := s.communities.IDsByOwner(ctx, callerID)
	if err != nil {
		return 0, err
	}
	if role, err := s.roles.FindByName(ctx, model.RoleCommunityModerator); err == nil {
		moderated, err := s.members.CommunityIDsByRole(ctx, callerID, role.ID)
		if err != nil {
			return 0, err
		}
		scope = append(scope, moderated...)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return 0, err
	}

	n, err := s.members.DeleteByUserInCommunities(ctx, member.UserID, scope)
	if err != nil {
		return 0, err
	}
	s.emit(ctx, "member.removed", member)

	return n, nil
}

type memberEvent struct {
	Event     string    `json:"event"`
	Community string    `json:"community"`
	User      string    `json:"user"`
	Role      string    `json:"role"`
	EventTime time.Time `json:"event_time"`
}

// emit publishes a membership event, best effort.
func (s *MemberService) emit(ctx context.Context, event string, m *model.Member) {
	payload, _ := json.Marshal(memberEvent{
		Event:     event,
		Community: m.CommunityID,
		User:      m.UserID,
		Role:      m.RoleID,
		EventTime: time.Now().UTC(),
	})
	if err := s.producer.Send(ctx, m.CommunityID, payload); err != nil {
		s.log.Warn("membership event publish failed", zap.String("event", event), zap.Error(err))
	}
}
