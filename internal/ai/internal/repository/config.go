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
	"github.com/ecodeclub/internhub/internal/ai/internal/domain"
	"github.com/ecodeclub/internhub/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/internhub/internal/ai/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type ConfigRepository interface {
	GetConfig(ctx context.Context, biz string) (domain.BizConfig, error)
	Save(ctx context.Context, cfg domain.BizConfig) (int64, error)
	List(ctx context.Context) ([]domain.BizConfig, error)
	GetById(ctx context.Context, id int64) (domain.BizConfig, error)
}

// CachedConfigRepository 每次调用 LLM 都要读配置，所以读的时候走缓存
type CachedConfigRepository struct {
	dao    dao.ConfigDAO
	cache  cache.ConfigCache
	logger *elog.Component
}

func NewCachedConfigRepository(dao dao.ConfigDAO, c cache.ConfigCache) ConfigRepository {
	return &CachedConfigRepository{
		dao:    dao,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedConfigRepository) GetConfig(ctx context.Context, biz string) (domain.BizConfig, error) {
	cfg, err := repo.cache.Get(ctx, biz)
	if err == nil {
		return cfg, nil
	}
	res, err := repo.dao.GetConfig(ctx, biz)
	if err != nil {
		return domain.BizConfig{}, err
	}
	cfg = repo.toDomain(res)
	if err1 := repo.cache.Set(ctx, cfg); err1 != nil {
		repo.logger.Warn("回写 AI 配置缓存失败", elog.FieldErr(err1), elog.String("biz", biz))
	}
	return cfg, nil
}

func (repo *CachedConfigRepository) Save(ctx context.Context, cfg domain.BizConfig) (int64, error) {
	id, err := repo.dao.Save(ctx, repo.toEntity(cfg))
	if err != nil {
		return 0, err
	}
	if err1 := repo.cache.Delete(ctx, cfg.Biz); err1 != nil {
		repo.logger.Error("删除 AI 配置缓存失败", elog.FieldErr(err1), elog.String("biz", cfg.Biz))
	}
	return id, nil
}

func (repo *CachedConfigRepository) List(ctx context.Context) ([]domain.BizConfig, error) {
	res, err := repo.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.BizConfig) domain.BizConfig {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedConfigRepository) GetById(ctx context.Context, id int64) (domain.BizConfig, error) {
	res, err := repo.dao.GetById(ctx, id)
	if err != nil {
		return domain.BizConfig{}, err
	}
	return repo.toDomain(res), nil
}

func (repo *CachedConfigRepository) toDomain(c dao.BizConfig) domain.BizConfig {
	return domain.BizConfig{
		Id:             c.Id,
		Biz:            c.Biz,
		Model:          c.Model,
		Price:          c.Price,
		Temperature:    c.Temperature,
		TopP:           c.TopP,
		MaxTokens:      c.MaxTokens,
		SystemPrompt:   c.SystemPrompt,
		MaxInput:       c.MaxInput,
		PromptTemplate: c.PromptTemplate,
		Utime:          c.Utime,
	}
}

func (repo *CachedConfigRepository) toEntity(c domain.BizConfig) dao.BizConfig {
	return dao.BizConfig{
		Id:             c.Id,
		Biz:            c.Biz,
		MaxInput:       c.MaxInput,
		Model:          c.Model,
		Price:          c.Price,
		Temperature:    c.Temperature,
		TopP:           c.TopP,
		MaxTokens:      c.MaxTokens,
		SystemPrompt:   c.SystemPrompt,
		PromptTemplate: c.PromptTemplate,
	}
}
