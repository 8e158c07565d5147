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
	"regexp"

	"github.com/ecodeclub/internhub/internal/ai"
	"github.com/ecodeclub/internhub/internal/application/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

const FallbackFeedback = "Unable to score resume at this time."

// 大模型经常会在 JSON 外面包一层 ```json
const jsonExpr = `\{(?s:.*)\}`

var jsonRegexp = regexp.MustCompile(jsonExpr)

type Score struct {
	Score    int
	Feedback string
}

// Scorer 评分失败不会返回 error，而是返回兜底的分数
//
//go:generate mockgen -source=./scoring.go -destination=../../mocks/scorer.mock.go -package=applicationmocks Scorer
type Scorer interface {
	Score(ctx context.Context, resumeText, jobDescription string) Score
}

type LLMScorer struct {
	llmSvc ai.LLMService
	logger *elog.Component
}

func NewLLMScorer(llmSvc ai.LLMService) Scorer {
	return &LLMScorer{
		llmSvc: llmSvc,
		logger: elog.DefaultLogger,
	}
}

func (s *LLMScorer) Score(ctx context.Context, resumeText, jobDescription string) Score {
	res, err := s.score(ctx, resumeText, jobDescription)
	if err != nil {
		s.logger.Error("简历评分失败，使用兜底分数", elog.FieldErr(err))
		return Score{Score: 0, Feedback: FallbackFeedback}
	}
	return res
}

func (s *LLMScorer) score(ctx context.Context, resumeText, jobDescription string) (Score, error) {
	resp, err := s.llmSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizResumeScore,
		Input: []string{jobDescription, resumeText},
	})
	if err != nil {
		return Score{}, err
	}
	return parseScore(resp.Answer)
}

func parseScore(answer string) (Score, error) {
	raw := jsonRegexp.FindString(answer)
	if raw == "" {
		return Score{}, errors.New("回答里面没有 JSON")
	}
	var res struct {
		Score    *float64 `json:"score"`
		Feedback string   `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return Score{}, err
	}
	if res.Score == nil {
		return Score{}, errors.New("回答里面没有 score")
	}
	return Score{
		Score:    domain.ClampScore(int(*res.Score)),
		Feedback: domain.TruncateFeedback(res.Feedback),
	}, nil
}
