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

package notification

import (
	"github.com/ecodeclub/internhub/internal/email"
	"github.com/ecodeclub/internhub/internal/email/aliyun"
	"github.com/ecodeclub/internhub/internal/notification/internal/event"
	"github.com/ecodeclub/internhub/internal/notification/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(q mq.MQ) (*Module, error) {
	wire.Build(
		InitEmailService,
		service.NewService,
		event.NewApplicationEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

// InitEmailService 没有配置 accessId 的时候只打印日志
func InitEmailService() email.Service {
	type Config struct {
		AccessID     string `yaml:"accessId"`
		AccessSecret string `yaml:"accessSecret"`
		AccountName  string `yaml:"accountName"`
	}
	var cfg Config
	_ = econf.UnmarshalKey("email.aliyun", &cfg)
	if cfg.AccessID == "" {
		return email.NewNoopService()
	}
	cli, err := aliyun.NewDirectMailService(cfg.AccessID, cfg.AccessSecret, cfg.AccountName)
	if err != nil {
		panic(err)
	}
	return cli
}
