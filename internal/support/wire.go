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

package support

import (
	"sync"

	"github.com/ecodeclub/internhub/internal/ai"
	"github.com/ecodeclub/internhub/internal/role"
	"github.com/ecodeclub/internhub/internal/support/internal/repository"
	"github.com/ecodeclub/internhub/internal/support/internal/repository/dao"
	"github.com/ecodeclub/internhub/internal/support/internal/service"
	"github.com/ecodeclub/internhub/internal/support/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, roleModule *role.Module, aiModule *ai.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewFAQRepository,
		service.NewFAQService,
		wire.FieldsOf(new(*role.Module), "Svc"),
		wire.FieldsOf(new(*ai.Module), "Svc"),
		service.NewChatService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.FAQDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMFAQDAO(db)
}
