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
	"github.com/ecodeclub/internhub/internal/cos/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
}

// PublicRoutes 申请人不需要登录
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/resumes")
	g.POST("/authorization", ginx.B(h.ResumeAuthCode))
}

func (h *Handler) ResumeAuthCode(ctx *ginx.Context, req ResumeAuthReq) (ginx.Result, error) {
	res, err := h.svc.ResumeCredential(ctx.Request.Context(), req.Filename)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: COSTmpAuthCode{
			Key:          res.Key,
			SecretId:     res.SecretId,
			SecretKey:    res.SecretKey,
			SessionToken: res.SessionToken,
			StartTime:    res.StartTime,
			ExpiredTime:  res.ExpiredTime,
			Bucket:       res.Bucket,
			Region:       res.Region,
		},
	}, nil
}
