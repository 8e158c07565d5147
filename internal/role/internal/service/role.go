// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"

	"github.com/ecodeclub/internhub/internal/pkg/authz"
	"github.com/ecodeclub/internhub/internal/role/internal/domain"
	"github.com/ecodeclub/internhub/internal/role/internal/repository"
)

var ErrRoleNotFound = repository.ErrRoleNotFound

//go:generate mockgen -source=./role.go -destination=../../mocks/role.mock.go -package=rolemocks Service
type Service interface {
	// Create 管理端：新建岗位，返回补全默认值之后的岗位
	Create(ctx context.Context, op authz.Operator, r domain.Role) (domain.Role, error)
	// Update 管理端：整体更新
	Update(ctx context.Context, op authz.Operator, r domain.Role) (domain.Role, error)
	Delete(ctx context.Context, op authz.Operator, id int64) error

	GetById(ctx context.Context, id int64) (domain.Role, error)
	GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Role, error)
	// List 所有岗位，最新的在前面，不管是否 active
	List(ctx context.Context) ([]domain.Role, error)
	Search(ctx context.Context, term string) ([]domain.Role, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

type service struct {
	repo repository.RoleRepository
}

func NewService(repo repository.RoleRepository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Create(ctx context.Context, op authz.Operator, r domain.Role) (domain.Role, error) {
	if err := op.CheckAdmin(); err != nil {
		return domain.Role{}, err
	}
	r = r.WithDefaults()
	if err := r.Validate(); err != nil {
		return domain.Role{}, err
	}
	r.ID = 0
	id, err := s.repo.Create(ctx, r)
	if err != nil {
		return domain.Role{}, err
	}
	return s.repo.FindById(ctx, id)
}

func (s *service) Update(ctx context.Context, op authz.Operator, r domain.Role) (domain.Role, error) {
	if err := op.CheckAdmin(); err != nil {
		return domain.Role{}, err
	}
	if err := r.Validate(); err != nil {
		return domain.Role{}, err
	}
	if _, err := s.repo.FindById(ctx, r.ID); err != nil {
		return domain.Role{}, err
	}
	if err := s.repo.Update(ctx, r); err != nil {
		return domain.Role{}, err
	}
	return s.repo.FindById(ctx, r.ID)
}

func (s *service) Delete(ctx context.Context, op authz.Operator, id int64) error {
	if err := op.CheckAdmin(); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) GetById(ctx context.Context, id int64) (domain.Role, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Role, error) {
	roles, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Role, len(roles))
	for _, r := range roles {
		res[r.ID] = r
	}
	return res, nil
}

func (s *service) List(ctx context.Context) ([]domain.Role, error) {
	return s.repo.List(ctx)
}

func (s *service) Search(ctx context.Context, term string) ([]domain.Role, error) {
	roles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterRoles(roles, term), nil
}

func (s *service) Stats(ctx context.Context) (domain.Stats, error) {
	return s.repo.Stats(ctx)
}
