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

package ai

import (
	"fmt"

	"github.com/ecodeclub/internhub/internal/ai/internal/domain"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm/handler/biz"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm/handler/record"
	"github.com/gotomicro/ego/core/econf"
)

// 规避 wire 的坑
type platformHandler handler.Handler

func InitHandlerFacade(common []handler.Builder, platform platformHandler) *biz.FacadeHandler {
	// log -> cfg -> record -> platform
	score := biz.NewCombinedBizHandler(domain.BizResumeScore, common, platform)
	chat := biz.NewCombinedBizHandler(domain.BizSupportChat, common, platform)
	return biz.NewHandler(map[string]handler.Handler{
		score.Biz(): score,
		chat.Biz():  chat,
	})
}

// InitPlatform 按照 ai.platform 选择真正的出口，默认是 openai
func InitPlatform() platformHandler {
	switch p := econf.GetString("ai.platform"); p {
	case "", "openai":
		return InitOpenAI()
	case "zhipu":
		return InitZhipu()
	default:
		panic(fmt.Sprintf("未知的 AI 平台 %s", p))
	}
}

func InitOpenAI() *openai.Handler {
	type Config struct {
		APIKey  string `yaml:"apikey"`
		BaseURL string `yaml:"baseURL"`
	}
	var cfg Config
	err := econf.UnmarshalKey("openai", &cfg)
	if err != nil {
		panic(err)
	}
	return openai.NewHandler(cfg.APIKey, cfg.BaseURL)
}

func InitZhipu() *zhipu.Handler {
	type Config struct {
		APIKey string `yaml:"apikey"`
	}
	var cfg Config
	err := econf.UnmarshalKey("zhipu", &cfg)
	if err != nil {
		panic(err)
	}
	h, err := zhipu.NewHandler(cfg.APIKey)
	if err != nil {
		panic(err)
	}
	return h
}

func InitCommonHandlers(log *log.HandlerBuilder,
	cfg *config.HandlerBuilder,
	record *record.HandlerBuilder) []handler.Builder {
	return []handler.Builder{log, cfg, record}
}
