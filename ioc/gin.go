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
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/internhub/internal/application"
	"github.com/ecodeclub/internhub/internal/cos"
	"github.com/ecodeclub/internhub/internal/pkg/middleware"
	"github.com/ecodeclub/internhub/internal/role"
	"github.com/ecodeclub/internhub/internal/support"
	"github.com/ecodeclub/internhub/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initCors() gin.HandlerFunc {
	origins := econf.GetStringSlice("cors.origins")
	return cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range origins {
				if strings.HasSuffix(origin, o) {
					return true
				}
			}
			return false
		},
	})
}

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	roleHdl *role.Handler,
	appHdl *application.Handler,
	supportHdl *support.Handler,
	cosHdl *cos.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(initCors())
	res.Use(middleware.NewMetricsBuilder("internhub", "web").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 申请人不需要登录
	userHdl.PublicRoutes(res.Engine)
	roleHdl.PublicRoutes(res.Engine)
	appHdl.PublicRoutes(res.Engine)
	supportHdl.PublicRoutes(res.Engine)
	cosHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	return res
}
