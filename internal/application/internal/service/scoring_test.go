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
	"errors"
	"strings"
	"testing"

	"github.com/ecodeclub/internhub/internal/ai"
	aimocks "github.com/ecodeclub/internhub/internal/ai/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLLMScorer_Score(t *testing.T) {
	testCases := []struct {
		name   string
		answer string
		err    error
		want   Score
	}{
		{
			name:   "正常",
			answer: `{"score": 82, "feedback": "Strong fit"}`,
			want:   Score{Score: 82, Feedback: "Strong fit"},
		},
		{
			name:   "包了代码块",
			answer: "```json\n{\"score\": 40, \"feedback\": \"meh\"}\n```",
			want:   Score{Score: 40, Feedback: "meh"},
		},
		{
			name:   "超过上限",
			answer: `{"score": 150, "feedback": "wow"}`,
			want:   Score{Score: 100, Feedback: "wow"},
		},
		{
			name:   "低于下限",
			answer: `{"score": -20, "feedback": "no"}`,
			want:   Score{Score: 0, Feedback: "no"},
		},
		{
			name:   "小数",
			answer: `{"score": 77.6, "feedback": "ok"}`,
			want:   Score{Score: 77, Feedback: "ok"},
		},
		{
			name:   "反馈过长",
			answer: `{"score": 60, "feedback": "` + strings.Repeat("a", 300) + `"}`,
			want:   Score{Score: 60, Feedback: strings.Repeat("a", 200)},
		},
		{
			name:   "不是 JSON",
			answer: "I think this candidate is fine",
			want:   Score{Score: 0, Feedback: FallbackFeedback},
		},
		{
			name:   "JSON 格式错误",
			answer: `{"score": "high"}`,
			want:   Score{Score: 0, Feedback: FallbackFeedback},
		},
		{
			name:   "缺少 score",
			answer: `{"feedback": "good"}`,
			want:   Score{Score: 0, Feedback: FallbackFeedback},
		},
		{
			name: "大模型调用失败",
			err:  errors.New("mock error"),
			want: Score{Score: 0, Feedback: FallbackFeedback},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			llmSvc := aimocks.NewMockService(ctrl)
			llmSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
					assert.Equal(t, ai.BizResumeScore, req.Biz)
					assert.Equal(t, []string{"jd", "resume"}, req.Input)
					return ai.LLMResponse{Answer: tc.answer}, tc.err
				})
			scorer := NewLLMScorer(llmSvc)
			assert.Equal(t, tc.want, scorer.Score(context.Background(), "resume", "jd"))
		})
	}
}
