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
	"github.com/ecodeclub/internhub/internal/support/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	chatSvc service.ChatService
	faqSvc  service.FAQService
}

func NewHandler(chatSvc service.ChatService, faqSvc service.FAQService) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		faqSvc:  faqSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/support/chat", ginx.B[ChatReq](h.Chat))
	server.GET("/faqs/list", ginx.W(h.List))
}

func (h *Handler) Chat(ctx *ginx.Context, req ChatReq) (ginx.Result, error) {
	answer, err := h.chatSvc.Answer(ctx, req.Message, req.Context)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: ChatResp{Answer: answer},
	}, nil
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	faqs, err := h.faqSvc.List(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toFAQList(faqs),
	}, nil
}
