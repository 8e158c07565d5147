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
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/internhub/internal/application/internal/domain"
	"github.com/ecodeclub/internhub/internal/application/internal/event"
	"github.com/ecodeclub/internhub/internal/application/internal/repository"
	"github.com/ecodeclub/internhub/internal/pkg/authz"
	"github.com/ecodeclub/internhub/internal/role"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrApplicationNotFound = repository.ErrApplicationNotFound
	ErrRoleNotFound        = fmt.Errorf("%w: 岗位不存在", domain.ErrInvalidApplication)
)

type Service interface {
	// Submit 候选人提交申请，评分失败不影响提交
	Submit(ctx context.Context, s domain.Submission) (domain.Application, error)
	// Transition 状态流转，通知失败不影响流转结果
	Transition(ctx context.Context, op authz.Operator, id int64, target domain.Status, message string) (domain.Application, error)

	List(ctx context.Context, op authz.Operator, filter domain.StatusFilter) ([]domain.Application, error)
	Detail(ctx context.Context, op authz.Operator, id int64) (domain.Application, error)
	// UpdateFields 只会修改候选人填写的基本信息
	UpdateFields(ctx context.Context, op authz.Operator, app domain.Application) (domain.Application, error)
	Delete(ctx context.Context, op authz.Operator, id int64) error
	Stats(ctx context.Context, op authz.Operator) (domain.Stats, error)
	// Export 导出为 xlsx
	Export(ctx context.Context, op authz.Operator, filter domain.StatusFilter) ([]byte, error)
}

type service struct {
	repo     repository.ApplicationRepository
	roleSvc  role.Service
	scorer   Scorer
	producer event.ApplicationEventProducer
	logger   *elog.Component
}

func NewService(repo repository.ApplicationRepository,
	roleSvc role.Service,
	scorer Scorer,
	producer event.ApplicationEventProducer) Service {
	return &service{
		repo:     repo,
		roleSvc:  roleSvc,
		scorer:   scorer,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Submit(ctx context.Context, sub domain.Submission) (domain.Application, error) {
	sub = sub.Normalize()
	if err := sub.Validate(); err != nil {
		return domain.Application{}, err
	}
	r, err := s.roleSvc.GetById(ctx, sub.RoleID)
	if err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			return domain.Application{}, ErrRoleNotFound
		}
		return domain.Application{}, err
	}
	app := sub.ToApplication()
	score := s.scorer.Score(ctx, app.ResumeText(), r.Description)
	app.AIScore = score.Score
	app.AIFeedback = score.Feedback
	id, err := s.repo.Create(ctx, app)
	if err != nil {
		return domain.Application{}, err
	}
	// 已经落库，回查失败不能让候选人以为提交失败
	stored, err := s.repo.FindById(ctx, id)
	if err != nil {
		s.logger.Error("回查申请失败", elog.FieldErr(err), elog.Int64("aid", id))
		app.ID = id
		app.Status = domain.StatusPending
	} else {
		app = stored
	}
	app.Role = domain.RoleBrief{Title: r.Title, Department: r.Department}
	s.publish(ctx, event.ApplicationEvent{
		Type:          event.TypeSubmitted,
		ApplicationID: app.ID,
		Email:         app.Email,
		FullName:      app.FullName,
		RoleTitle:     r.Title,
		Status:        app.Status.String(),
	})
	return app, nil
}

func (s *service) Transition(ctx context.Context, op authz.Operator,
	id int64, target domain.Status, message string) (domain.Application, error) {
	if err := op.CheckAdmin(); err != nil {
		return domain.Application{}, err
	}
	app, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	if !app.Status.CanTransitTo(target) {
		return domain.Application{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, app.Status, target)
	}
	if err = s.repo.UpdateStatus(ctx, id, app.Status, target); err != nil {
		return domain.Application{}, err
	}
	// 状态已经提交，后面的步骤都不能再返回错误
	app.Status = target
	app.Role = s.roleBrief(ctx, app.RoleID)
	s.publish(ctx, event.ApplicationEvent{
		Type:          event.TypeStatusUpdated,
		ApplicationID: app.ID,
		Email:         app.Email,
		FullName:      app.FullName,
		RoleTitle:     app.Role.Title,
		Status:        target.String(),
		Message:       message,
	})
	return app, nil
}

// roleBrief 查不到岗位的时候显示为 unknown
func (s *service) roleBrief(ctx context.Context, roleID int64) domain.RoleBrief {
	roles, err := s.roleSvc.GetByIds(ctx, []int64{roleID})
	if err != nil {
		s.logger.Error("查询岗位失败", elog.FieldErr(err), elog.Int64("rid", roleID))
		return domain.RoleBrief{Title: domain.UnknownRoleTitle}
	}
	r, ok := roles[roleID]
	if !ok {
		return domain.RoleBrief{Title: domain.UnknownRoleTitle}
	}
	return domain.RoleBrief{Title: r.Title, Department: r.Department}
}

// publish 通知是尽力而为的，失败只记录日志
func (s *service) publish(ctx context.Context, evt event.ApplicationEvent) {
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送申请通知事件失败",
			elog.FieldErr(err),
			elog.Int64("aid", evt.ApplicationID),
			elog.String("type", evt.Type))
	}
}

func (s *service) List(ctx context.Context, op authz.Operator, filter domain.StatusFilter) ([]domain.Application, error) {
	if err := op.CheckAdmin(); err != nil {
		return nil, err
	}
	apps, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.fillRoles(ctx, apps)
}

func (s *service) Detail(ctx context.Context, op authz.Operator, id int64) (domain.Application, error) {
	if err := op.CheckAdmin(); err != nil {
		return domain.Application{}, err
	}
	return s.detail(ctx, id)
}

func (s *service) detail(ctx context.Context, id int64) (domain.Application, error) {
	app, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	apps, err := s.fillRoles(ctx, []domain.Application{app})
	if err != nil {
		return domain.Application{}, err
	}
	return apps[0], nil
}

// fillRoles 岗位被删除的申请，岗位名称显示为 unknown
func (s *service) fillRoles(ctx context.Context, apps []domain.Application) ([]domain.Application, error) {
	if len(apps) == 0 {
		return apps, nil
	}
	ids := slice.Map(apps, func(idx int, src domain.Application) int64 {
		return src.RoleID
	})
	roles, err := s.roleSvc.GetByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		r, ok := roles[apps[i].RoleID]
		if !ok {
			apps[i].Role = domain.RoleBrief{Title: domain.UnknownRoleTitle}
			continue
		}
		apps[i].Role = domain.RoleBrief{Title: r.Title, Department: r.Department}
	}
	return apps, nil
}

func (s *service) UpdateFields(ctx context.Context, op authz.Operator, app domain.Application) (domain.Application, error) {
	if err := op.CheckAdmin(); err != nil {
		return domain.Application{}, err
	}
	if err := s.repo.UpdateFields(ctx, app); err != nil {
		return domain.Application{}, err
	}
	return s.detail(ctx, app.ID)
}

func (s *service) Delete(ctx context.Context, op authz.Operator, id int64) error {
	if err := op.CheckAdmin(); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Stats(ctx context.Context, op authz.Operator) (domain.Stats, error) {
	if err := op.CheckAdmin(); err != nil {
		return domain.Stats{}, err
	}
	var (
		eg       errgroup.Group
		res      domain.Stats
		counts   map[domain.Status]int64
		roleStat role.Stats
	)
	eg.Go(func() error {
		var err error
		res.Total, err = s.repo.Count(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		counts, err = s.repo.CountByStatus(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		roleStat, err = s.roleSvc.Stats(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Stats{}, err
	}
	res.Pending = counts[domain.StatusPending]
	res.Shortlisted = counts[domain.StatusShortlisted]
	res.ActiveRoles = roleStat.Active
	return res, nil
}

func (s *service) Export(ctx context.Context, op authz.Operator, filter domain.StatusFilter) ([]byte, error) {
	apps, err := s.List(ctx, op, filter)
	if err != nil {
		return nil, err
	}
	return exportApplications(apps)
}
