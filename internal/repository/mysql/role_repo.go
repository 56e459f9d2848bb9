package mysql

import (
	"context"

	"gorm.io/gorm"

	"commune/internal/model"
)

type RoleRepository struct {
	DB *gorm.DB
}

func (r *RoleRepository) Create(ctx context.Context, role *model.Role) error {
	return r.DB.WithContext(ctx).Create(role).Error
}

func (r *RoleRepository) FindByID(ctx context.Context, id string) (*model.Role, error) {
	var role model.Role
	err := r.DB.WithContext(ctx).First(&role, "id = ?", id).Error
	if err != nil {
		return nil, wrap(err)
	}
	return &role, nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := r.DB.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if err != nil {
		return nil, wrap(err)
	}
	return &role, nil
}

func (r *RoleRepository) List(ctx context.Context, offset, limit int) ([]model.Role, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&model.Role{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.Role
	err := r.DB.WithContext(ctx).Order("created_at desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}
