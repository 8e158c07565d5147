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

//go:build wireinject

package ai

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/internhub/internal/ai/internal/repository"
	"github.com/ecodeclub/internhub/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/internhub/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/internhub/internal/ai/internal/service"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm/handler/biz"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm/handler/record"
	"github.com/ecodeclub/internhub/internal/ai/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(
		llm.NewLLMService,
		wire.Bind(new(handler.Handler), new(*biz.FacadeHandler)),
		InitHandlerFacade,
		InitCommonHandlers,
		InitPlatform,

		log.NewHandler,
		config.NewBuilder,
		record.NewHandler,

		repository.NewCachedConfigRepository,
		repository.NewLLMLogRepo,
		cache.NewConfigECache,
		InitConfigDAO,
		dao.NewGORMLLMRecordDAO,

		service.NewConfigService,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitConfigDAO(db *egorm.Component) dao.ConfigDAO {
	InitTableOnce(db)
	return dao.NewGORMConfigDAO(db)
}
