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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/internhub/internal/role/internal/domain"
	"github.com/ecodeclub/internhub/internal/role/internal/repository/dao"
)

var ErrRoleNotFound = dao.ErrRecordNotFound

type RoleRepository interface {
	Create(ctx context.Context, r domain.Role) (int64, error)
	Update(ctx context.Context, r domain.Role) error
	FindById(ctx context.Context, id int64) (domain.Role, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
	Stats(ctx context.Context) (domain.Stats, error)
	Delete(ctx context.Context, id int64) error
}

type roleRepository struct {
	dao dao.RoleDAO
}

func NewRoleRepository(d dao.RoleDAO) RoleRepository {
	return &roleRepository{
		dao: d,
	}
}

func (r *roleRepository) Create(ctx context.Context, role domain.Role) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(role))
}

func (r *roleRepository) Update(ctx context.Context, role domain.Role) error {
	return r.dao.Update(ctx, r.toEntity(role))
}

func (r *roleRepository) FindById(ctx context.Context, id int64) (domain.Role, error) {
	entity, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Role{}, err
	}
	return r.toDomain(entity), nil
}

func (r *roleRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Role, error) {
	entities, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Role) domain.Role {
		return r.toDomain(src)
	}), nil
}

func (r *roleRepository) List(ctx context.Context) ([]domain.Role, error) {
	entities, err := r.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Role) domain.Role {
		return r.toDomain(src)
	}), nil
}

func (r *roleRepository) Stats(ctx context.Context) (domain.Stats, error) {
	total, err := r.dao.Count(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	active, err := r.dao.CountActive(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Stats{Total: total, Active: active}, nil
}

func (r *roleRepository) Delete(ctx context.Context, id int64) error {
	cnt, err := r.dao.DeleteById(ctx, id)
	if err != nil {
		return err
	}
	if cnt == 0 {
		return ErrRoleNotFound
	}
	return nil
}

func (r *roleRepository) toEntity(role domain.Role) dao.Role {
	return dao.Role{
		Id:                  role.ID,
		Title:               role.Title,
		Department:          role.Department,
		Description:         role.Description,
		Requirements:        role.Requirements,
		Location:            role.Location,
		Duration:            role.Duration,
		Stipend:             role.Stipend,
		ApplicationDeadline: role.ApplicationDeadline,
		IsActive:            role.IsActive,
		Ctime:               role.Ctime,
		Utime:               role.Utime,
	}
}

func (r *roleRepository) toDomain(role dao.Role) domain.Role {
	return domain.Role{
		ID:                  role.Id,
		Title:               role.Title,
		Department:          role.Department,
		Description:         role.Description,
		Requirements:        role.Requirements,
		Location:            role.Location,
		Duration:            role.Duration,
		Stipend:             role.Stipend,
		ApplicationDeadline: role.ApplicationDeadline,
		IsActive:            role.IsActive,
		Ctime:               role.Ctime,
		Utime:               role.Utime,
	}
}
