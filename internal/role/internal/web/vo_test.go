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
	"testing"

	"github.com/ecodeclub/internhub/internal/role/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSaveRoleReq_toDomain(t *testing.T) {
	zero, custom := int64(0), int64(100)
	inactive := false
	testCases := []struct {
		name        string
		req         SaveRoleReq
		wantStipend int64
		wantActive  bool
	}{
		{
			name:        "新建不传补贴",
			req:         SaveRoleReq{Title: "Backend Intern"},
			wantStipend: domain.DefaultStipend,
			wantActive:  true,
		},
		{
			name:        "新建补贴为 0",
			req:         SaveRoleReq{Title: "Volunteer Intern", Stipend: &zero},
			wantStipend: 0,
			wantActive:  true,
		},
		{
			name:        "更新不传补贴",
			req:         SaveRoleReq{ID: 7, Title: "new", IsActive: &inactive},
			wantStipend: 0,
			wantActive:  false,
		},
		{
			name:        "更新补贴",
			req:         SaveRoleReq{ID: 7, Title: "new", Stipend: &custom},
			wantStipend: 100,
			wantActive:  true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.req.toDomain()
			assert.Equal(t, tc.wantStipend, r.Stipend)
			assert.Equal(t, tc.wantActive, r.IsActive)
		})
	}
}
