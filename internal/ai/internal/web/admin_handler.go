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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/internhub/internal/ai/internal/domain"
	"github.com/ecodeclub/internhub/internal/ai/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.ConfigService
}

func NewAdminHandler(svc service.ConfigService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	admin := server.Group("/ai/config")
	admin.POST("/save", ginx.B[ConfigRequest](h.Save))
	admin.GET("/list", ginx.W(h.List))
	admin.POST("/detail", ginx.B[ConfigInfoReq](h.GetById))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req ConfigRequest) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, domain.BizConfig{
		Id:             req.Config.Id,
		Biz:            req.Config.Biz,
		MaxInput:       req.Config.MaxInput,
		Model:          req.Config.Model,
		Price:          req.Config.Price,
		Temperature:    req.Config.Temperature,
		TopP:           req.Config.TopP,
		MaxTokens:      req.Config.MaxTokens,
		SystemPrompt:   req.Config.SystemPrompt,
		PromptTemplate: req.Config.PromptTemplate,
	})
	if errors.Is(err, service.ErrInvalidConfig) {
		return invalidArgsResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context) (ginx.Result, error) {
	configs, err := h.svc.List(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(configs, func(idx int, c domain.BizConfig) Config {
			return h.toVO(c)
		}),
	}, nil
}

func (h *AdminHandler) GetById(ctx *ginx.Context, req ConfigInfoReq) (ginx.Result, error) {
	cfg, err := h.svc.GetById(ctx, req.Id)
	if errors.Is(err, service.ErrInvalidConfig) {
		return invalidArgsResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toVO(cfg),
	}, nil
}

func (h *AdminHandler) toVO(cfg domain.BizConfig) Config {
	return Config{
		Id:             cfg.Id,
		Biz:            cfg.Biz,
		MaxInput:       cfg.MaxInput,
		Model:          cfg.Model,
		Price:          cfg.Price,
		Temperature:    cfg.Temperature,
		TopP:           cfg.TopP,
		MaxTokens:      cfg.MaxTokens,
		SystemPrompt:   cfg.SystemPrompt,
		PromptTemplate: cfg.PromptTemplate,
		Utime:          cfg.Utime,
	}
}
