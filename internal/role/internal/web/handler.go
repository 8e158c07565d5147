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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/internhub/internal/role/internal/domain"
	"github.com/ecodeclub/internhub/internal/role/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler C 端，不需要登录
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/roles")
	g.GET("/list", ginx.W(h.List))
	g.POST("/search", ginx.B[SearchReq](h.Search))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.GET("/stats", ginx.W(h.Stats))
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	roles, err := h.svc.List(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toRoleList(roles),
	}, nil
}

func (h *Handler) Search(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	roles, err := h.svc.Search(ctx, req.Term)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toRoleList(roles),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	r, err := h.svc.GetById(ctx, req.Id)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: newRole(r),
	}, nil
}

func (h *Handler) Stats(ctx *ginx.Context) (ginx.Result, error) {
	stats, err := h.svc.Stats(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: StatsVO{
			Total:  stats.Total,
			Active: stats.Active,
		},
	}, nil
}

func toRoleList(roles []domain.Role) RoleList {
	return RoleList{
		List: slice.Map(roles, func(idx int, src domain.Role) Role {
			return newRole(src)
		}),
	}
}
