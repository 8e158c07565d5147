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
	"github.com/ecodeclub/internhub/internal/support/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.FAQService
}

func NewAdminHandler(svc service.FAQService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/faqs")
	g.POST("/save", ginx.BS[FAQ](h.Save))
	g.POST("/delete", ginx.BS[IdReq](h.Delete))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req FAQ, sess session.Session) (ginx.Result, error) {
	faq, err := h.svc.Save(ctx, authz.FromSession(sess), req.toDomain())
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: newFAQ(faq),
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	if err := h.svc.Delete(ctx, authz.FromSession(sess), req.Id); err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Msg: "删除成功",
	}, nil
}
