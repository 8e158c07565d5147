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

package cos

import (
	"net/http"

	"github.com/ecodeclub/internhub/internal/cos/internal/service"
	"github.com/ecodeclub/internhub/internal/cos/internal/web"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

func InitModule() *Module {
	wire.Build(InitService, web.NewHandler, wire.Struct(new(Module), "*"))
	return new(Module)
}

func InitService() Service {
	type Config struct {
		SecretID  string `yaml:"secretId"`
		SecretKey string `yaml:"secretKey"`
		AppID     string `yaml:"appId"`
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
	}
	var cfg Config
	err := econf.UnmarshalKey("cos", &cfg)
	if err != nil {
		panic(err)
	}
	client := sts.NewClient(cfg.SecretID, cfg.SecretKey, http.DefaultClient)
	return service.NewService(client, service.Config{
		AppID:  cfg.AppID,
		Bucket: cfg.Bucket,
		Region: cfg.Region,
	})
}
