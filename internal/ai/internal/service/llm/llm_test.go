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

package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/internhub/internal/ai/internal/domain"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm/handler/biz"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/internhub/internal/ai/internal/service/llm/handler/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfigRepo struct {
	cfgs map[string]domain.BizConfig
}

func (f *fakeConfigRepo) GetConfig(ctx context.Context, b string) (domain.BizConfig, error) {
	cfg, ok := f.cfgs[b]
	if !ok {
		return domain.BizConfig{}, errors.New("record not found")
	}
	return cfg, nil
}

func (f *fakeConfigRepo) Save(ctx context.Context, cfg domain.BizConfig) (int64, error) {
	return 0, nil
}

func (f *fakeConfigRepo) List(ctx context.Context) ([]domain.BizConfig, error) {
	return nil, nil
}

func (f *fakeConfigRepo) GetById(ctx context.Context, id int64) (domain.BizConfig, error) {
	return domain.BizConfig{}, nil
}

type fakeLogRepo struct {
	records []domain.LLMRecord
	err     error
}

func (f *fakeLogRepo) SaveLog(ctx context.Context, l domain.LLMRecord) (int64, error) {
	f.records = append(f.records, l)
	return int64(len(f.records)), f.err
}

func newService(cfgRepo *fakeConfigRepo, logRepo *fakeLogRepo, platform handler.Handler) Service {
	common := []handler.Builder{
		log.NewHandler(),
		config.NewBuilder(cfgRepo),
		record.NewHandler(logRepo),
	}
	facade := biz.NewHandler(map[string]handler.Handler{
		domain.BizResumeScore: biz.NewCombinedBizHandler(domain.BizResumeScore, common, platform),
	})
	return NewLLMService(facade)
}

func TestLLMService_Invoke(t *testing.T) {
	cfgRepo := &fakeConfigRepo{cfgs: map[string]domain.BizConfig{
		domain.BizResumeScore: {
			Biz:            domain.BizResumeScore,
			Model:          "gpt-4o-mini",
			MaxInput:       20,
			PromptTemplate: "JD: %s | Resume: %s",
		},
	}}

	testCases := []struct {
		name       string
		req        domain.LLMRequest
		platform   handler.HandleFunc
		logErr     error
		wantErr    error
		wantAnswer string
		wantStatus domain.RecordStatus
		wantRecord bool
	}{
		{
			name: "成功",
			req:  domain.LLMRequest{Biz: domain.BizResumeScore, Input: []string{"go", "gopher"}},
			platform: func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
				// 配置已经由 config handler 填好了
				if req.Prompt() != "JD: go | Resume: gopher" {
					return domain.LLMResponse{}, errors.New("prompt 不对")
				}
				return domain.LLMResponse{Tokens: 10, Answer: "ok"}, nil
			},
			wantAnswer: "ok",
			wantStatus: domain.RecordStatusSuccess,
			wantRecord: true,
		},
		{
			name: "记录失败不影响结果",
			req:  domain.LLMRequest{Biz: domain.BizResumeScore, Input: []string{"go", "gopher"}},
			platform: func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
				return domain.LLMResponse{Answer: "ok"}, nil
			},
			logErr:     errors.New("db error"),
			wantAnswer: "ok",
			wantStatus: domain.RecordStatusSuccess,
			wantRecord: true,
		},
		{
			name: "平台失败",
			req:  domain.LLMRequest{Biz: domain.BizResumeScore, Input: []string{"go", "gopher"}},
			platform: func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
				return domain.LLMResponse{}, errors.New("timeout")
			},
			wantErr:    errors.New("timeout"),
			wantStatus: domain.RecordStatusFailed,
			wantRecord: true,
		},
		{
			name:     "输入过长",
			req:      domain.LLMRequest{Biz: domain.BizResumeScore, Input: []string{"0123456789", "01234567890"}},
			platform: nil,
			wantErr:  config.ErrInputTooLong,
		},
		{
			name:    "未知业务",
			req:     domain.LLMRequest{Biz: "unknown"},
			wantErr: biz.ErrUnknownBiz,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logRepo := &fakeLogRepo{err: tc.logErr}
			svc := newService(cfgRepo, logRepo, tc.platform)
			resp, err := svc.Invoke(context.Background(), tc.req)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr) || err.Error() == tc.wantErr.Error(),
					"期望错误 %v, 实际 %v", tc.wantErr, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantAnswer, resp.Answer)
			}
			if !tc.wantRecord {
				assert.Empty(t, logRepo.records)
				return
			}
			require.Len(t, logRepo.records, 1)
			assert.Equal(t, tc.wantStatus, logRepo.records[0].Status)
			assert.NotEmpty(t, logRepo.records[0].Tid)
		})
	}
}
