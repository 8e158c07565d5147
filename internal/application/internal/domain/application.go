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
	"errors"
	"fmt"
	"strings"
)

const (
	MinScore = 0
	MaxScore = 100
	// 反馈最多 200 个字符
	MaxFeedbackLen = 200
	// UnknownRoleTitle 岗位已经被删除
	UnknownRoleTitle = "unknown"
)

var (
	ErrInvalidApplication = errors.New("申请信息不合法")
	ErrInvalidTransition  = errors.New("非法的状态流转")
)

type Application struct {
	ID         int64
	RoleID     int64
	FullName   string
	Email      string
	Phone      string
	University string
	Course     string
	Year       string
	CGPA       float64
	Motivation string
	// 对象存储里面的 key
	ResumeURL  string
	AIScore    int
	AIFeedback string
	Status     Status
	// 只读，查询的时候填充
	Role  RoleBrief
	Ctime int64
	Utime int64
}

// ResumeText 简历全文。目前没有解析简历文件，用表单内容拼起来
func (a Application) ResumeText() string {
	return strings.Join([]string{a.FullName, a.Email, a.University, a.Course, a.Motivation}, " ")
}

type RoleBrief struct {
	Title      string
	Department string
}

// ClampScore 任何写入的分数都必须在 [0, 100] 之内
func ClampScore(score int) int {
	return min(MaxScore, max(MinScore, score))
}

func TruncateFeedback(feedback string) string {
	runes := []rune(feedback)
	if len(runes) <= MaxFeedbackLen {
		return feedback
	}
	return string(runes[:MaxFeedbackLen])
}

type Stats struct {
	Total       int64
	Pending     int64
	Shortlisted int64
	ActiveRoles int64
}

// StatusFilter 空字符串或者 all 表示不过滤
type StatusFilter string

const FilterAll StatusFilter = "all"

func (f StatusFilter) Status() (Status, bool, error) {
	if f == "" || f == FilterAll {
		return "", false, nil
	}
	s := Status(f)
	if !s.Valid() {
		return "", false, fmt.Errorf("%w: 未知的状态 %s", ErrInvalidApplication, f)
	}
	return s, true, nil
}
