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

package role

import (
	"sync"

	"github.com/ecodeclub/internhub/internal/role/internal/repository"
	"github.com/ecodeclub/internhub/internal/role/internal/repository/dao"
	"github.com/ecodeclub/internhub/internal/role/internal/service"
	"github.com/ecodeclub/internhub/internal/role/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var HandlerSet = wire.NewSet(
	InitService,
	web.NewHandler,
	web.NewAdminHandler,
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(HandlerSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

func InitService(db *egorm.Component) Service {
	wire.Build(
		InitTablesOnce,
		repository.NewRoleRepository,
		service.NewService,
	)
	return nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.RoleDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMRoleDAO(db)
}
