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
	"time"
)

const (
	DefaultLocation = "Remote"
	DefaultDuration = 3
	DefaultStipend  = 25000

	DeadlineLayout = "2006-01-02"
)

var ErrInvalidRole = errors.New("岗位信息不合法")

// Role 实习岗位
type Role struct {
	ID           int64
	Title        string
	Department   string
	Description  string
	Requirements string
	Location     string
	// 月
	Duration int
	Stipend  int64
	// YYYY-MM-DD
	ApplicationDeadline string
	// 只是一个标记位，列表不会按照它来过滤
	IsActive bool
	Ctime    int64
	Utime    int64
}

// WithDefaults 创建岗位时补全默认值。
// 补贴为 0 是合法的，默认补贴只在请求没有带这个字段的时候使用
func (r Role) WithDefaults() Role {
	if r.Location == "" {
		r.Location = DefaultLocation
	}
	if r.Duration == 0 {
		r.Duration = DefaultDuration
	}
	return r
}

func (r Role) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: 标题不能为空", ErrInvalidRole)
	}
	if r.Duration <= 0 {
		return fmt.Errorf("%w: 实习时长必须为正数 %d", ErrInvalidRole, r.Duration)
	}
	if r.Stipend < 0 {
		return fmt.Errorf("%w: 补贴不能为负数 %d", ErrInvalidRole, r.Stipend)
	}
	if _, err := time.Parse(DeadlineLayout, r.ApplicationDeadline); err != nil {
		return fmt.Errorf("%w: 截止日期格式错误 %s", ErrInvalidRole, r.ApplicationDeadline)
	}
	return nil
}

// Matches 标题、部门、描述任意一个包含 term 即可，不区分大小写
func (r Role) Matches(term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(r.Title), term) ||
		strings.Contains(strings.ToLower(r.Department), term) ||
		strings.Contains(strings.ToLower(r.Description), term)
}

// FilterRoles 保持原有的顺序。term 为空（或者全是空白）的时候原样返回
func FilterRoles(roles []Role, term string) []Role {
	term = strings.TrimSpace(term)
	if term == "" {
		return roles
	}
	res := make([]Role, 0, len(roles))
	for _, r := range roles {
		if r.Matches(term) {
			res = append(res, r)
		}
	}
	return res
}

type Stats struct {
	Total  int64
	Active int64
}
