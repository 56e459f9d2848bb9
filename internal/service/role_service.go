package service

import (
	"context"

	"commune/internal/httpx"
	"commune/internal/model"
	"commune/internal/repository"
)

type RoleService struct {
	roles repository.RoleRepository
}

func NewRoleService(roles repository.RoleRepository) *RoleService {
	return &RoleService{roles: roles}
}

func (s *RoleService) Create(ctx context.Context, name string) (*model.Role, error) {
	role := &model.Role{Name: name}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleService) List(ctx context.Context, page int) ([]model.Role, httpx.Meta, error) {
	page = clampPage(page)
	list, total, err := s.roles.List(ctx, (page-1)*PageSize, PageSize)
	if err != nil {
		return nil, httpx.Meta{}, err
	}
	return list, pageMeta(page, total), nil
}
