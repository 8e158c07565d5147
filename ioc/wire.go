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

package ioc

import (
	"github.com/ecodeclub/internhub/internal/ai"
	"github.com/ecodeclub/internhub/internal/application"
	"github.com/ecodeclub/internhub/internal/cos"
	"github.com/ecodeclub/internhub/internal/notification"
	"github.com/ecodeclub/internhub/internal/role"
	"github.com/ecodeclub/internhub/internal/support"
	"github.com/ecodeclub/internhub/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		role.InitModule,
		wire.FieldsOf(new(*role.Module), "Hdl", "AdminHdl"),
		ai.InitModule,
		wire.FieldsOf(new(*ai.Module), "AdminHandler"),
		application.InitModule,
		wire.FieldsOf(new(*application.Module), "Hdl", "AdminHdl"),
		notification.InitModule,
		support.InitModule,
		wire.FieldsOf(new(*support.Module), "Hdl", "AdminHdl"),
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		cos.InitModule,
		wire.FieldsOf(new(*cos.Module), "Hdl"),
		initConsumers,
		initGinxServer,
		InitAdminServer,
	)
	return new(App), nil
}

func initConsumers(n *notification.Module) []Consumer {
	return []Consumer{n.Consumer}
}
