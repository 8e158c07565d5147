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
	"github.com/ecodeclub/internhub/internal/application/internal/domain"
	"github.com/ecodeclub/internhub/internal/application/internal/repository/dao"
)

var ErrApplicationNotFound = dao.ErrRecordNotFound

type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Application, error)
	List(ctx context.Context, filter domain.StatusFilter) ([]domain.Application, error)
	UpdateFields(ctx context.Context, app domain.Application) error
	// UpdateStatus 状态已经被别人改掉的时候返回 domain.ErrInvalidTransition
	UpdateStatus(ctx context.Context, id int64, from, to domain.Status) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[domain.Status]int64, error)
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{dao: d}
}

// Create 新建的申请只能是 pending
func (repo *applicationRepository) Create(ctx context.Context, app domain.Application) (int64, error) {
	app.ID = 0
	app.Status = domain.StatusPending
	app.AIScore = domain.ClampScore(app.AIScore)
	app.AIFeedback = domain.TruncateFeedback(app.AIFeedback)
	return repo.dao.Insert(ctx, repo.toEntity(app))
}

func (repo *applicationRepository) FindById(ctx context.Context, id int64) (domain.Application, error) {
	entity, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	return repo.toDomain(entity), nil
}

func (repo *applicationRepository) List(ctx context.Context, filter domain.StatusFilter) ([]domain.Application, error) {
	status, ok, err := filter.Status()
	if err != nil {
		return nil, err
	}
	var s string
	if ok {
		s = status.String()
	}
	entities, err := repo.dao.List(ctx, s)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Application) domain.Application {
		return repo.toDomain(src)
	}), nil
}

func (repo *applicationRepository) UpdateFields(ctx context.Context, app domain.Application) error {
	cnt, err := repo.dao.UpdateFields(ctx, repo.toEntity(app))
	if err != nil {
		return err
	}
	if cnt == 0 {
		// 内容没变化的时候 MySQL 也会返回 0，所以要再查一次
		_, err = repo.dao.FindById(ctx, app.ID)
		return err
	}
	return nil
}

func (repo *applicationRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.Status) error {
	cnt, err := repo.dao.UpdateStatus(ctx, id, from.String(), to.String())
	if err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}
	if _, err = repo.dao.FindById(ctx, id); err != nil {
		return err
	}
	return domain.ErrInvalidTransition
}

func (repo *applicationRepository) Delete(ctx context.Context, id int64) error {
	cnt, err := repo.dao.DeleteById(ctx, id)
	if err != nil {
		return err
	}
	if cnt == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (repo *applicationRepository) Count(ctx context.Context) (int64, error) {
	return repo.dao.Count(ctx)
}

func (repo *applicationRepository) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	counts, err := repo.dao.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[domain.Status]int64, len(counts))
	for k, v := range counts {
		res[domain.Status(k)] = v
	}
	return res, nil
}

func (repo *applicationRepository) toEntity(app domain.Application) dao.Application {
	return dao.Application{
		Id:         app.ID,
		RoleId:     app.RoleID,
		FullName:   app.FullName,
		Email:      app.Email,
		Phone:      app.Phone,
		University: app.University,
		Course:     app.Course,
		Year:       app.Year,
		Cgpa:       app.CGPA,
		Motivation: app.Motivation,
		ResumeUrl:  app.ResumeURL,
		AiScore:    app.AIScore,
		AiFeedback: app.AIFeedback,
		Status:     app.Status.String(),
		Ctime:      app.Ctime,
		Utime:      app.Utime,
	}
}

func (repo *applicationRepository) toDomain(app dao.Application) domain.Application {
	return domain.Application{
		ID:         app.Id,
		RoleID:     app.RoleId,
		FullName:   app.FullName,
		Email:      app.Email,
		Phone:      app.Phone,
		University: app.University,
		Course:     app.Course,
		Year:       app.Year,
		CGPA:       app.Cgpa,
		Motivation: app.Motivation,
		ResumeURL:  app.ResumeUrl,
		AIScore:    app.AiScore,
		AIFeedback: app.AiFeedback,
		Status:     domain.Status(app.Status),
		Ctime:      app.Ctime,
		Utime:      app.Utime,
	}
}
