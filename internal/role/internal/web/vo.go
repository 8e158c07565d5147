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

import "github.com/ecodeclub/internhub/internal/role/internal/domain"

type Role struct {
	ID                  int64  `json:"id,omitempty"`
	Title               string `json:"title,omitempty"`
	Department          string `json:"department,omitempty"`
	Description         string `json:"description,omitempty"`
	Requirements        string `json:"requirements,omitempty"`
	Location            string `json:"location,omitempty"`
	Duration            int    `json:"duration,omitempty"`
	Stipend             int64  `json:"stipend"`
	ApplicationDeadline string `json:"applicationDeadline,omitempty"`
	IsActive            bool   `json:"isActive"`
	Ctime               int64  `json:"ctime,omitempty"`
	Utime               int64  `json:"utime,omitempty"`
}

func newRole(r domain.Role) Role {
	return Role{
		ID:                  r.ID,
		Title:               r.Title,
		Department:          r.Department,
		Description:         r.Description,
		Requirements:        r.Requirements,
		Location:            r.Location,
		Duration:            r.Duration,
		Stipend:             r.Stipend,
		ApplicationDeadline: r.ApplicationDeadline,
		IsActive:            r.IsActive,
		Ctime:               r.Ctime,
		Utime:               r.Utime,
	}
}

// SaveRoleReq ID 为 0 的时候是新建
type SaveRoleReq struct {
	ID                  int64  `json:"id"`
	Title               string `json:"title"`
	Department          string `json:"department"`
	Description         string `json:"description"`
	Requirements        string `json:"requirements"`
	Location            string `json:"location"`
	Duration            int    `json:"duration"`
	// 新建的时候不传默认为 25000，传 0 就是没有补贴
	Stipend             *int64 `json:"stipend"`
	ApplicationDeadline string `json:"applicationDeadline"`
	// 不传默认为 true
	IsActive *bool `json:"isActive"`
}

func (r SaveRoleReq) toDomain() domain.Role {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	var stipend int64
	if r.Stipend != nil {
		stipend = *r.Stipend
	} else if r.ID == 0 {
		stipend = domain.DefaultStipend
	}
	return domain.Role{
		ID:                  r.ID,
		Title:               r.Title,
		Department:          r.Department,
		Description:         r.Description,
		Requirements:        r.Requirements,
		Location:            r.Location,
		Duration:            r.Duration,
		Stipend:             stipend,
		ApplicationDeadline: r.ApplicationDeadline,
		IsActive:            active,
	}
}

type IdReq struct {
	Id int64 `json:"id"`
}

type SearchReq struct {
	Term string `json:"term"`
}

type RoleList struct {
	List []Role `json:"list"`
}

type StatsVO struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}
