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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/internhub/internal/pkg/authz"
	"github.com/ecodeclub/internhub/internal/role/internal/domain"
	"github.com/ecodeclub/internhub/internal/role/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/roles")
	g.POST("/save", ginx.BS[SaveRoleReq](h.Save))
	g.POST("/delete", ginx.BS[IdReq](h.Delete))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveRoleReq, sess session.Session) (ginx.Result, error) {
	op := authz.FromSession(sess)
	var (
		r   domain.Role
		err error
	)
	if req.ID > 0 {
		r, err = h.svc.Update(ctx, op, req.toDomain())
	} else {
		r, err = h.svc.Create(ctx, op, req.toDomain())
	}
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: newRole(r),
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, authz.FromSession(sess), req.Id)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Msg: "删除成功",
	}, nil
}
