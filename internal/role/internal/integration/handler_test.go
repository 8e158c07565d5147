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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/internhub/internal/pkg/authz"
	"github.com/ecodeclub/internhub/internal/role"
	"github.com/ecodeclub/internhub/internal/role/internal/errs"
	"github.com/ecodeclub/internhub/internal/role/internal/repository/dao"
	"github.com/ecodeclub/internhub/internal/role/internal/web"
	"github.com/ecodeclub/internhub/internal/test"
	testioc "github.com/ecodeclub/internhub/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 2051

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.RoleDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	m, err := role.InitModule(s.db)
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{authz.ClaimAdmin: "true"},
		}))
	})
	m.Hdl.PublicRoutes(server.Engine)
	m.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
	s.dao = dao.NewGORMRoleDAO(s.db)
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `internship_roles`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `internship_roles`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestSave() {
	t := s.T()
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		req      web.SaveRoleReq
		wantCode int
		after    func(t *testing.T, res test.Result[web.Role])
	}{
		{
			name:   "新建，补全默认值",
			before: func(t *testing.T) {},
			req: web.SaveRoleReq{
				Title:               "Backend Intern",
				Department:          "Engineering",
				ApplicationDeadline: "2026-12-31",
			},
			wantCode: 200,
			after: func(t *testing.T, res test.Result[web.Role]) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				r, err := s.dao.FindById(ctx, res.Data.ID)
				require.NoError(t, err)
				assert.Equal(t, "Remote", r.Location)
				assert.Equal(t, 3, r.Duration)
				assert.Equal(t, int64(25000), r.Stipend)
				assert.True(t, r.IsActive)
			},
		},
		{
			name:   "新建，补贴为 0",
			before: func(t *testing.T) {},
			req: web.SaveRoleReq{
				Title:               "Volunteer Intern",
				Duration:            2,
				Stipend:             int64Ptr(0),
				ApplicationDeadline: "2026-12-31",
			},
			wantCode: 200,
			after: func(t *testing.T, res test.Result[web.Role]) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				r, err := s.dao.FindById(ctx, res.Data.ID)
				require.NoError(t, err)
				assert.Equal(t, int64(0), r.Stipend)
				assert.Equal(t, int64(0), res.Data.Stipend)
			},
		},
		{
			name: "更新",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.Role{Id: 7, Title: "old", Duration: 3, ApplicationDeadline: "2026-01-01", Ctime: 1, Utime: 1}).Error
				require.NoError(t, err)
			},
			req: web.SaveRoleReq{
				ID:                  7,
				Title:               "new",
				Duration:            6,
				Stipend:             int64Ptr(100),
				ApplicationDeadline: "2026-02-01",
			},
			wantCode: 200,
			after: func(t *testing.T, res test.Result[web.Role]) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				r, err := s.dao.FindById(ctx, 7)
				require.NoError(t, err)
				assert.Equal(t, "new", r.Title)
				assert.Equal(t, 6, r.Duration)
				assert.Equal(t, "2026-02-01", r.ApplicationDeadline)
			},
		},
		{
			name:     "非法数据",
			before:   func(t *testing.T) {},
			req:      web.SaveRoleReq{Title: "x", ApplicationDeadline: "bad"},
			wantCode: 200,
			after: func(t *testing.T, res test.Result[web.Role]) {
				assert.Equal(t, errs.InvalidRole.Code, res.Code)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/roles/save", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Role]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.after(t, recorder.MustScan())
		})
	}
}

func (s *HandlerTestSuite) TestListAndSearch() {
	t := s.T()
	roles := []dao.Role{
		{Id: 1, Title: "Backend Intern", Department: "Engineering", Duration: 3, Ctime: 1, Utime: 1},
		{Id: 2, Title: "Design Intern", Department: "Product", Duration: 3, Ctime: 2, Utime: 2},
		{Id: 3, Title: "Data Intern", Department: "Analytics", Description: "engineering dashboards", Duration: 3, Ctime: 3, Utime: 3},
	}
	require.NoError(t, s.db.Create(&roles).Error)

	req, err := http.NewRequest(http.MethodGet, "/roles/list", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.RoleList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	list := recorder.MustScan().Data.List
	require.Len(t, list, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{list[0].ID, list[1].ID, list[2].ID})

	req, err = http.NewRequest(http.MethodPost, "/roles/search", iox.NewJSONReader(web.SearchReq{Term: "ENGINEERING"}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.RoleList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	list = recorder.MustScan().Data.List
	require.Len(t, list, 2)
	assert.Equal(t, []int64{3, 1}, []int64{list[0].ID, list[1].ID})
}

func (s *HandlerTestSuite) TestDelete() {
	t := s.T()
	require.NoError(t, s.db.Create(&dao.Role{Id: 9, Title: "x", Duration: 3}).Error)
	req, err := http.NewRequest(http.MethodPost, "/roles/delete", iox.NewJSONReader(web.IdReq{Id: 9}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	_, err = s.dao.FindById(context.Background(), 9)
	assert.ErrorIs(t, err, dao.ErrRecordNotFound)
}

func TestRoleHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func int64Ptr(v int64) *int64 {
	return &v
}
