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
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/internhub/internal/application/internal/domain"
	"github.com/ecodeclub/internhub/internal/application/internal/service"
	"github.com/ecodeclub/internhub/internal/pkg/authz"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications")
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/detail", ginx.BS[IdReq](h.Detail))
	g.POST("/transition", ginx.BS[TransitionReq](h.Transition))
	g.POST("/update", ginx.BS[UpdateReq](h.Update))
	g.POST("/delete", ginx.BS[IdReq](h.Delete))
	g.GET("/stats", ginx.S(h.Stats))
	g.POST("/export", ginx.BS[ListReq](h.Export))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	apps, err := h.svc.List(ctx, authz.FromSession(sess), domain.StatusFilter(req.Status))
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: toApplicationList(apps),
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Detail(ctx, authz.FromSession(sess), req.Id)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: newApplication(app),
	}, nil
}

func (h *AdminHandler) Transition(ctx *ginx.Context, req TransitionReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Transition(ctx, authz.FromSession(sess), req.Id, domain.Status(req.Status), req.Message)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: newApplication(app),
	}, nil
}

func (h *AdminHandler) Update(ctx *ginx.Context, req UpdateReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.UpdateFields(ctx, authz.FromSession(sess), req.toDomain())
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: newApplication(app),
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

func (h *AdminHandler) Stats(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	st, err := h.svc.Stats(ctx, authz.FromSession(sess))
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: StatsVO{
			Total:       st.Total,
			Pending:     st.Pending,
			Shortlisted: st.Shortlisted,
			ActiveRoles: st.ActiveRoles,
		},
	}, nil
}

// Export 直接返回 xlsx 文件
func (h *AdminHandler) Export(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	data, err := h.svc.Export(ctx, authz.FromSession(sess), domain.StatusFilter(req.Status))
	if err != nil {
		return errorResult(err), err
	}
	filename := fmt.Sprintf("applications-%s.xlsx", time.Now().Format("20060102150405"))
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, xlsxContentType, data)
	return ginx.Result{}, ginx.ErrNoResponse
}
