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

package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/internhub/internal/ai"
	"github.com/ecodeclub/internhub/internal/role"
	"github.com/ecodeclub/internhub/internal/support/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

const (
	FallbackAnswer = "I'm having trouble right now. Please try again or contact our support team."

	faqLimit  = 3
	roleLimit = 5
)

var ErrEmptyMessage = errors.New("问题不能为空")

type ChatService interface {
	// Answer 除了问题为空，其余失败都返回兜底回答
	Answer(ctx context.Context, message, additionalContext string) (string, error)
}

type chatService struct {
	faqSvc  FAQService
	roleSvc role.Service
	llmSvc  ai.LLMService
	logger  *elog.Component
}

func NewChatService(faqSvc FAQService, roleSvc role.Service, llmSvc ai.LLMService) ChatService {
	return &chatService{
		faqSvc:  faqSvc,
		roleSvc: roleSvc,
		llmSvc:  llmSvc,
		logger:  elog.DefaultLogger,
	}
}

func (s *chatService) Answer(ctx context.Context, message, additionalContext string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}
	answer, err := s.answer(ctx, message, additionalContext)
	if err != nil {
		s.logger.Error("客服机器人回答失败", elog.FieldErr(err))
		return FallbackAnswer, nil
	}
	return answer, nil
}

func (s *chatService) answer(ctx context.Context, message, additionalContext string) (string, error) {
	chatCtx, err := s.buildContext(ctx, message, additionalContext)
	if err != nil {
		return "", err
	}
	resp, err := s.llmSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizSupportChat,
		Input: []string{chatCtx, message},
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(resp.Answer) == "" {
		return "", errors.New("大模型返回了空的回答")
	}
	return resp.Answer, nil
}

type chatContext struct {
	FAQs              []faqContext  `json:"faqs"`
	Roles             []roleContext `json:"roles"`
	AdditionalContext string        `json:"additionalContext"`
}

type faqContext struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type roleContext struct {
	Title               string `json:"title"`
	Department          string `json:"department"`
	Description         string `json:"description"`
	Requirements        string `json:"requirements"`
	Location            string `json:"location"`
	Duration            int    `json:"duration"`
	Stipend             int64  `json:"stipend"`
	ApplicationDeadline string `json:"applicationDeadline"`
}

func (s *chatService) buildContext(ctx context.Context, message, additionalContext string) (string, error) {
	faqs, err := s.faqSvc.Search(ctx, message, faqLimit)
	if err != nil {
		return "", err
	}
	roles, err := s.roleSvc.List(ctx)
	if err != nil {
		return "", err
	}
	if len(roles) > roleLimit {
		roles = roles[:roleLimit]
	}
	data, err := json.Marshal(chatContext{
		FAQs: slice.Map(faqs, func(idx int, src domain.FAQ) faqContext {
			return faqContext{Question: src.Question, Answer: src.Answer}
		}),
		Roles: slice.Map(roles, func(idx int, src role.Role) roleContext {
			return roleContext{
				Title:               src.Title,
				Department:          src.Department,
				Description:         src.Description,
				Requirements:        src.Requirements,
				Location:            src.Location,
				Duration:            src.Duration,
				Stipend:             src.Stipend,
				ApplicationDeadline: src.ApplicationDeadline,
			}
		}),
		AdditionalContext: additionalContext,
	})
	return string(data), err
}
