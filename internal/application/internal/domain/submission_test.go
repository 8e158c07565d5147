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

package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() Submission {
	return Submission{
		RoleID:     1,
		FullName:   "Asha Rao",
		Email:      "asha@example.com",
		Phone:      "+91 9876543210",
		University: "IIT Madras",
		Course:     "B.Tech CSE",
		Year:       "3",
		CGPA:       "8.5",
		Motivation: strings.Repeat("m", 50),
		ResumeURL:  "resumes/1700000000000-cv.pdf",
	}
}

func TestSubmission_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(s *Submission)
		wantErr bool
	}{
		{name: "合法", modify: func(s *Submission) {}},
		{name: "百分比形式的 CGPA", modify: func(s *Submission) { s.CGPA = "85%" }},
		{name: "名字太短", modify: func(s *Submission) { s.FullName = "A" }, wantErr: true},
		{name: "非法邮箱", modify: func(s *Submission) { s.Email = "not-an-email" }, wantErr: true},
		{name: "手机号太短", modify: func(s *Submission) { s.Phone = "12345" }, wantErr: true},
		{name: "学校太短", modify: func(s *Submission) { s.University = "I" }, wantErr: true},
		{name: "专业太短", modify: func(s *Submission) { s.Course = "C" }, wantErr: true},
		{name: "没有年级", modify: func(s *Submission) { s.Year = "" }, wantErr: true},
		{name: "没有 CGPA", modify: func(s *Submission) { s.CGPA = "" }, wantErr: true},
		{name: "CGPA 不是数字", modify: func(s *Submission) { s.CGPA = "good" }, wantErr: true},
		{name: "CGPA 是 NaN", modify: func(s *Submission) { s.CGPA = "NaN" }, wantErr: true},
		{name: "CGPA 是 Inf", modify: func(s *Submission) { s.CGPA = "Inf" }, wantErr: true},
		{name: "CGPA 是负数", modify: func(s *Submission) { s.CGPA = "-1e308" }, wantErr: true},
		{name: "CGPA 溢出", modify: func(s *Submission) { s.CGPA = "1e400" }, wantErr: true},
		{name: "动机不足 50 字", modify: func(s *Submission) { s.Motivation = strings.Repeat("m", 49) }, wantErr: true},
		{name: "没有简历", modify: func(s *Submission) { s.ResumeURL = "" }, wantErr: true},
		{name: "没有岗位", modify: func(s *Submission) { s.RoleID = 0 }, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSubmission()
			tc.modify(&s)
			err := s.Normalize().Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidApplication)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSubmission_ToApplication(t *testing.T) {
	s := validSubmission()
	s.CGPA = " 85% "
	s = s.Normalize()
	require.NoError(t, s.Validate())
	app := s.ToApplication()
	assert.Equal(t, StatusPending, app.Status)
	assert.Equal(t, 85.0, app.CGPA)
	assert.Equal(t, int64(1), app.RoleID)
	assert.Equal(t, "resumes/1700000000000-cv.pdf", app.ResumeURL)
}
