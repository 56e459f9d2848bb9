package mysql

import (
	"context"

	"gorm.io/gorm"

	"commune/internal/model"
)

type MemberRepository struct {
	DB *gorm.DB
}

func (r *MemberRepository) Create(ctx context.Context, member *model.Member) error {
	return r.DB.WithContext(ctx).Create(member).Error
}

func (r *MemberRepository) FindByID(ctx context.Context, id string) (*model.Member, error) {
	var member model.Member
	err := r.DB.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		return nil, wrap(err)
	}
	return &member, nil
}

func (r *MemberRepository) Exists(ctx context.Context, communityID, userID, roleID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Member{}).
		Where("community_id = ? AND user_id = ? AND role_id = ?", communityID, userID, roleID).
		Count(&count).Error
	return count > 0, err
}

func (r *MemberRepository) ListByCommunity(ctx context.Context, communityID string, offset, limit int) ([]model.Member, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&model.Member{}).Where("community_id = ?", communityID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.Member
	err := r.DB.WithContext(ctx).Where("community_id = ?", communityID).
		Order("created_at desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

func (r *MemberRepository) ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.Member, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&model.Member{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.Member
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

func (r *MemberRepository) CommunityIDsByRole(ctx context.Context, userID, roleID string) ([]string, error) {
	var ids []string
	err := r.DB.WithContext(ctx).Model(&model.Member{}).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Pluck("community_id", &ids).Error
	return ids, err
}

func (r *MemberRepository) DeleteByUserInCommunities(ctx context.Context, userID string, communityIDs []string) (int64, error) {
	if len(communityIDs) == 0 {
		return 0, nil
	}
	tx := r.DB.WithContext(ctx).
		Where("user_id = ? AND community_id IN ?", userID, communityIDs).
		Delete(&model.Member{})
	return tx.RowsAffected, tx.Error
}
