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

package ioc

import (
	"net/http"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/internhub/internal/ai"
	"github.com/ecodeclub/internhub/internal/application"
	"github.com/ecodeclub/internhub/internal/pkg/authz"
	"github.com/ecodeclub/internhub/internal/pkg/middleware"
	"github.com/ecodeclub/internhub/internal/role"
	"github.com/ecodeclub/internhub/internal/support"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

func InitAdminServer(
	roleHdl *role.AdminHandler,
	appHdl *application.AdminHandler,
	supportHdl *support.AdminHandler,
	aiHdl *ai.AdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(initCors())
	res.Use(middleware.NewMetricsBuilder("internhub", "admin").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	// 管理员标记位校验，具体操作在 service 里面还会再校验一遍
	res.Use(authz.AdminPermission())
	roleHdl.PrivateRoutes(res.Engine)
	appHdl.PrivateRoutes(res.Engine)
	supportHdl.PrivateRoutes(res.Engine)
	aiHdl.PrivateRoutes(res.Engine)
	return res
}
