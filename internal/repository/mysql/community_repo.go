package mysql

import (
	"context"

	"gorm.io/gorm"

	"commune/internal/model"
)

type CommunityRepository struct {
	DB *gorm.DB
}

func (r *CommunityRepository) Create(ctx context.Context, community *model.Community) error {
	return r.DB.WithContext(ctx).Create(community).Error
}

func (r *CommunityRepository) FindByID(ctx context.Context, id string) (*model.Community, error) {
	var community model.Community
	err := r.DB.WithContext(ctx).First(&community, "id = ?", id).Error
	if err != nil {
		return nil, wrap(err)
	}
	return &community, nil
}

func (r *CommunityRepository) List(ctx context.Context, offset, limit int) ([]model.Community, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&model.Community{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.Community
	err := r.DB.WithContext(ctx).Order("created_at desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

func (r *CommunityRepository) ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]model.Community, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&model.Community{}).Where("user_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.Community
	err := r.DB.WithContext(ctx).Where("user_id = ?", ownerID).
		Order("created_at desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

func (r *CommunityRepository) IDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	var ids []string
	err := r.DB.WithContext(ctx).Model(&model.Community{}).
		Where("user_id = ?", ownerID).
		Pluck("id", &ids).Error
	return ids, err
}
