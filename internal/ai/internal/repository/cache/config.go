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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/internhub/internal/ai/internal/domain"
)

type ConfigCache interface {
	Get(ctx context.Context, biz string) (domain.BizConfig, error)
	Set(ctx context.Context, cfg domain.BizConfig) error
	Delete(ctx context.Context, biz string) error
}

type ConfigECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewConfigECache(c ecache.Cache) ConfigCache {
	return &ConfigECache{
		cache: &ecache.NamespaceCache{
			Namespace: "ai:config:",
			C:         c,
		},
		expiration: time.Minute * 15,
	}
}

func (c *ConfigECache) Get(ctx context.Context, biz string) (domain.BizConfig, error) {
	var cfg domain.BizConfig
	err := c.cache.Get(ctx, biz).JSONScan(&cfg)
	return cfg, err
}

func (c *ConfigECache) Set(ctx context.Context, cfg domain.BizConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, cfg.Biz, data, c.expiration)
}

func (c *ConfigECache) Delete(ctx context.Context, biz string) error {
	_, err := c.cache.Delete(ctx, biz)
	return err
}
