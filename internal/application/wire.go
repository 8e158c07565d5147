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

package application

import (
	"sync"

	"github.com/ecodeclub/internhub/internal/ai"
	"github.com/ecodeclub/internhub/internal/application/internal/event"
	"github.com/ecodeclub/internhub/internal/application/internal/repository"
	"github.com/ecodeclub/internhub/internal/application/internal/repository/dao"
	"github.com/ecodeclub/internhub/internal/application/internal/service"
	"github.com/ecodeclub/internhub/internal/application/internal/web"
	"github.com/ecodeclub/internhub/internal/role"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	roleModule *role.Module,
	aiModule *ai.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewApplicationRepository,
		wire.FieldsOf(new(*role.Module), "Svc"),
		wire.FieldsOf(new(*ai.Module), "Svc"),
		service.NewLLMScorer,
		event.NewApplicationEventProducer,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ApplicationDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMApplicationDAO(db)
}
