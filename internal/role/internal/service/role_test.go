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
	"testing"

	"github.com/ecodeclub/internhub/internal/pkg/authz"
	"github.com/ecodeclub/internhub/internal/role/internal/domain"
	"github.com/ecodeclub/internhub/internal/role/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo 按照插入顺序倒序返回，模拟 ctime DESC
type memoryRepo struct {
	roles []domain.Role
}

func (m *memoryRepo) Create(ctx context.Context, r domain.Role) (int64, error) {
	r.ID = int64(len(m.roles) + 1)
	m.roles = append(m.roles, r)
	return r.ID, nil
}

func (m *memoryRepo) Update(ctx context.Context, r domain.Role) error {
	for i := range m.roles {
		if m.roles[i].ID == r.ID {
			m.roles[i] = r
			return nil
		}
	}
	return repository.ErrRoleNotFound
}

func (m *memoryRepo) FindById(ctx context.Context, id int64) (domain.Role, error) {
	for _, r := range m.roles {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Role{}, repository.ErrRoleNotFound
}

func (m *memoryRepo) FindByIds(ctx context.Context, ids []int64) ([]domain.Role, error) {
	var res []domain.Role
	for _, id := range ids {
		if r, err := m.FindById(ctx, id); err == nil {
			res = append(res, r)
		}
	}
	return res, nil
}

func (m *memoryRepo) List(ctx context.Context) ([]domain.Role, error) {
	res := make([]domain.Role, 0, len(m.roles))
	for i := len(m.roles) - 1; i >= 0; i-- {
		res = append(res, m.roles[i])
	}
	return res, nil
}

func (m *memoryRepo) Stats(ctx context.Context) (domain.Stats, error) {
	var st domain.Stats
	for _, r := range m.roles {
		st.Total++
		if r.IsActive {
			st.Active++
		}
	}
	return st, nil
}

func (m *memoryRepo) Delete(ctx context.Context, id int64) error {
	for i := range m.roles {
		if m.roles[i].ID == id {
			m.roles = append(m.roles[:i], m.roles[i+1:]...)
			return nil
		}
	}
	return repository.ErrRoleNotFound
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memoryRepo{})

	_, err := svc.Create(ctx, authz.Operator{Uid: 1}, domain.Role{Title: "a", ApplicationDeadline: "2026-12-31"})
	assert.ErrorIs(t, err, authz.ErrPermissionDenied)

	r, err := svc.Create(ctx, authz.AdminOperator(1), domain.Role{
		Title:               "Backend Intern",
		ApplicationDeadline: "2026-12-31",
		Stipend:             domain.DefaultStipend,
		IsActive:            true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.ID)
	assert.Equal(t, "Remote", r.Location)
	assert.Equal(t, 3, r.Duration)
	assert.Equal(t, int64(25000), r.Stipend)

	r, err = svc.Create(ctx, authz.AdminOperator(1), domain.Role{
		Title:               "Volunteer Intern",
		Duration:            2,
		Stipend:             0,
		ApplicationDeadline: "2026-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), r.Stipend)

	_, err = svc.Create(ctx, authz.AdminOperator(1), domain.Role{Title: "a", ApplicationDeadline: "tomorrow"})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{}
	svc := NewService(repo)
	admin := authz.AdminOperator(1)
	created, err := svc.Create(ctx, admin, domain.Role{Title: "a", ApplicationDeadline: "2026-12-31"})
	require.NoError(t, err)

	created.Title = "b"
	updated, err := svc.Update(ctx, admin, created)
	require.NoError(t, err)
	assert.Equal(t, "b", updated.Title)

	_, err = svc.Update(ctx, admin, domain.Role{ID: 100, Title: "c", Duration: 1, ApplicationDeadline: "2026-12-31"})
	assert.ErrorIs(t, err, ErrRoleNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, authz.Operator{Uid: 2}, created.ID), authz.ErrPermissionDenied)
	require.NoError(t, svc.Delete(ctx, admin, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, admin, created.ID), ErrRoleNotFound)
}

func TestService_ListAndSearch(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memoryRepo{})
	admin := authz.AdminOperator(1)
	titles := []string{"Backend Intern", "Design Intern", "Data Intern"}
	for _, title := range titles {
		_, err := svc.Create(ctx, admin, domain.Role{
			Title:               title,
			Department:          "Engineering",
			ApplicationDeadline: "2026-12-31",
		})
		require.NoError(t, err)
	}
	roles, err := svc.List(ctx)
	require.NoError(t, err)
	// 最新的在前面，而且 inactive 的也会返回
	assert.Equal(t, []string{"Data Intern", "Design Intern", "Backend Intern"}, []string{roles[0].Title, roles[1].Title, roles[2].Title})

	roles, err = svc.Search(ctx, "DATA")
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "Data Intern", roles[0].Title)

	roles, err = svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, roles, 3)
}
