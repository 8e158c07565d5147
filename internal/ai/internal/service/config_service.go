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
	"strings"

	"github.com/ecodeclub/internhub/internal/ai/internal/domain"
	"github.com/ecodeclub/internhub/internal/ai/internal/repository"
)

var ErrInvalidConfig = errors.New("AI 配置不合法")

type ConfigService interface {
	Save(ctx context.Context, cfg domain.BizConfig) (int64, error)
	List(ctx context.Context) ([]domain.BizConfig, error)
	GetById(ctx context.Context, id int64) (domain.BizConfig, error)
}

type configService struct {
	repo repository.ConfigRepository
}

func NewConfigService(repo repository.ConfigRepository) ConfigService {
	return &configService{
		repo: repo,
	}
}

func (s *configService) Save(ctx context.Context, cfg domain.BizConfig) (int64, error) {
	if strings.TrimSpace(cfg.Biz) == "" || strings.TrimSpace(cfg.Model) == "" {
		return 0, ErrInvalidConfig
	}
	return s.repo.Save(ctx, cfg)
}

func (s *configService) List(ctx context.Context) ([]domain.BizConfig, error) {
	return s.repo.List(ctx)
}

func (s *configService) GetById(ctx context.Context, id int64) (domain.BizConfig, error) {
	if id <= 0 {
		return domain.BizConfig{}, ErrInvalidConfig
	}
	return s.repo.GetById(ctx, id)
}
