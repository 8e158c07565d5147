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
	"testing"

	"github.com/ecodeclub/internhub/internal/ai"
	aimocks "github.com/ecodeclub/internhub/internal/ai/mocks"
	"github.com/ecodeclub/internhub/internal/pkg/authz"
	"github.com/ecodeclub/internhub/internal/role"
	rolemocks "github.com/ecodeclub/internhub/internal/role/mocks"
	"github.com/ecodeclub/internhub/internal/support/internal/domain"
	"github.com/ecodeclub/internhub/internal/support/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memoryFAQRepo Search 按照 LIKE 的语义匹配
type memoryFAQRepo struct {
	faqs []domain.FAQ
	err  error
}

func (m *memoryFAQRepo) Save(ctx context.Context, faq domain.FAQ) (int64, error) {
	if faq.ID == 0 {
		faq.ID = int64(len(m.faqs) + 1)
		m.faqs = append(m.faqs, faq)
		return faq.ID, nil
	}
	for i := range m.faqs {
		if m.faqs[i].ID == faq.ID {
			m.faqs[i] = faq
		}
	}
	return faq.ID, nil
}

func (m *memoryFAQRepo) FindById(ctx context.Context, id int64) (domain.FAQ, error) {
	for _, f := range m.faqs {
		if f.ID == id {
			return f, nil
		}
	}
	return domain.FAQ{}, repository.ErrFAQNotFound
}

func (m *memoryFAQRepo) List(ctx context.Context) ([]domain.FAQ, error) {
	return m.faqs, nil
}

func (m *memoryFAQRepo) Search(ctx context.Context, keywords []string, limit int) ([]domain.FAQ, error) {
	if m.err != nil {
		return nil, m.err
	}
	var res []domain.FAQ
	for _, f := range m.faqs {
		for _, kw := range keywords {
			if strings.Contains(strings.ToLower(f.Question), kw) {
				res = append(res, f)
				break
			}
		}
		if len(res) == limit {
			break
		}
	}
	return res, nil
}

func (m *memoryFAQRepo) Delete(ctx context.Context, id int64) error {
	for i := range m.faqs {
		if m.faqs[i].ID == id {
			m.faqs = append(m.faqs[:i], m.faqs[i+1:]...)
			return nil
		}
	}
	return repository.ErrFAQNotFound
}

func newFAQRepo() *memoryFAQRepo {
	return &memoryFAQRepo{faqs: []domain.FAQ{
		{ID: 1, Question: "What is the stipend?", Answer: "25000 per month"},
		{ID: 2, Question: "Is the internship remote?", Answer: "Most roles are remote"},
		{ID: 3, Question: "How long is the internship?", Answer: "3 months"},
		{ID: 4, Question: "Is there a stipend for remote interns?", Answer: "Yes"},
		{ID: 5, Question: "Can I change my stipend?", Answer: "No"},
	}}
}

func TestChatService_Answer(t *testing.T) {
	roles := make([]role.Role, 0, 7)
	for i := 7; i > 0; i-- {
		roles = append(roles, role.Role{ID: int64(i), Title: "Role", Stipend: 25000})
	}
	testCases := []struct {
		name    string
		message string
		repo    *memoryFAQRepo
		mock    func(ctrl *gomock.Controller) (role.Service, ai.LLMService)
		want    string
		wantErr error
	}{
		{
			name:    "正常回答",
			message: "stipend?",
			repo:    newFAQRepo(),
			mock: func(ctrl *gomock.Controller) (role.Service, ai.LLMService) {
				roleSvc := rolemocks.NewMockService(ctrl)
				roleSvc.EXPECT().List(gomock.Any()).Return(roles, nil)
				llmSvc := aimocks.NewMockService(ctrl)
				llmSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
						assert.Equal(t, ai.BizSupportChat, req.Biz)
						require.Len(t, req.Input, 2)
						assert.Equal(t, "stipend?", req.Input[1])
						var c chatContext
						require.NoError(t, json.Unmarshal([]byte(req.Input[0]), &c))
						assert.Len(t, c.FAQs, 3)
						assert.Len(t, c.Roles, 5)
						assert.Equal(t, "applying", c.AdditionalContext)
						return ai.LLMResponse{Answer: "The stipend is 25000."}, nil
					})
				return roleSvc, llmSvc
			},
			want: "The stipend is 25000.",
		},
		{
			name:    "空问题",
			message: "   ",
			repo:    newFAQRepo(),
			mock: func(ctrl *gomock.Controller) (role.Service, ai.LLMService) {
				return rolemocks.NewMockService(ctrl), aimocks.NewMockService(ctrl)
			},
			wantErr: ErrEmptyMessage,
		},
		{
			name:    "大模型失败",
			message: "stipend?",
			repo:    newFAQRepo(),
			mock: func(ctrl *gomock.Controller) (role.Service, ai.LLMService) {
				roleSvc := rolemocks.NewMockService(ctrl)
				roleSvc.EXPECT().List(gomock.Any()).Return(roles, nil)
				llmSvc := aimocks.NewMockService(ctrl)
				llmSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).Return(ai.LLMResponse{}, errors.New("mock error"))
				return roleSvc, llmSvc
			},
			want: FallbackAnswer,
		},
		{
			name:    "空回答",
			message: "stipend?",
			repo:    newFAQRepo(),
			mock: func(ctrl *gomock.Controller) (role.Service, ai.LLMService) {
				roleSvc := rolemocks.NewMockService(ctrl)
				roleSvc.EXPECT().List(gomock.Any()).Return(nil, nil)
				llmSvc := aimocks.NewMockService(ctrl)
				llmSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).Return(ai.LLMResponse{Answer: " "}, nil)
				return roleSvc, llmSvc
			},
			want: FallbackAnswer,
		},
		{
			name:    "FAQ 查询失败",
			message: "stipend?",
			repo:    &memoryFAQRepo{err: errors.New("mock error")},
			mock: func(ctrl *gomock.Controller) (role.Service, ai.LLMService) {
				return rolemocks.NewMockService(ctrl), aimocks.NewMockService(ctrl)
			},
			want: FallbackAnswer,
		},
		{
			name:    "岗位查询失败",
			message: "stipend?",
			repo:    newFAQRepo(),
			mock: func(ctrl *gomock.Controller) (role.Service, ai.LLMService) {
				roleSvc := rolemocks.NewMockService(ctrl)
				roleSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("mock error"))
				return roleSvc, aimocks.NewMockService(ctrl)
			},
			want: FallbackAnswer,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			roleSvc, llmSvc := tc.mock(ctrl)
			svc := NewChatService(NewFAQService(tc.repo), roleSvc, llmSvc)
			answer, err := svc.Answer(context.Background(), tc.message, "applying")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, answer)
		})
	}
}

func TestFAQService(t *testing.T) {
	ctx := context.Background()
	admin := authz.AdminOperator(1)
	svc := NewFAQService(&memoryFAQRepo{})

	_, err := svc.Save(ctx, authz.Operator{Uid: 2}, domain.FAQ{Question: "q", Answer: "a"})
	assert.ErrorIs(t, err, authz.ErrPermissionDenied)

	_, err = svc.Save(ctx, admin, domain.FAQ{Question: "q"})
	assert.ErrorIs(t, err, domain.ErrInvalidFAQ)

	faq, err := svc.Save(ctx, admin, domain.FAQ{Question: "Is it paid?", Answer: "Yes"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), faq.ID)

	faq.Answer = "Yes, monthly"
	faq, err = svc.Save(ctx, admin, faq)
	require.NoError(t, err)
	assert.Equal(t, "Yes, monthly", faq.Answer)

	_, err = svc.Save(ctx, admin, domain.FAQ{ID: 9, Question: "q", Answer: "a"})
	assert.ErrorIs(t, err, ErrFAQNotFound)

	res, err := svc.Search(ctx, "paid internship", 3)
	require.NoError(t, err)
	assert.Len(t, res, 1)

	assert.NoError(t, svc.Delete(ctx, admin, 1))
	assert.ErrorIs(t, svc.Delete(ctx, admin, 1), ErrFAQNotFound)
}
