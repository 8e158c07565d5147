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
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/internhub/internal/ai"
	aimocks "github.com/ecodeclub/internhub/internal/ai/mocks"
	"github.com/ecodeclub/internhub/internal/application"
	"github.com/ecodeclub/internhub/internal/application/internal/errs"
	"github.com/ecodeclub/internhub/internal/application/internal/event"
	"github.com/ecodeclub/internhub/internal/application/internal/repository/dao"
	"github.com/ecodeclub/internhub/internal/application/internal/web"
	"github.com/ecodeclub/internhub/internal/pkg/authz"
	"github.com/ecodeclub/internhub/internal/role"
	"github.com/ecodeclub/internhub/internal/test"
	testioc "github.com/ecodeclub/internhub/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const uid = 3012

type HandlerTestSuite struct {
	suite.Suite
	server   *egin.Component
	db       *egorm.Component
	dao      dao.ApplicationDAO
	consumer mq.Consumer
	roleId   int64
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	q := testioc.InitMQ()
	consumer, err := q.Consumer(event.ApplicationEventTopic, "application_test")
	require.NoError(s.T(), err)
	s.consumer = consumer

	ctrl := gomock.NewController(s.T())
	llmSvc := aimocks.NewMockService(ctrl)
	llmSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		Return(ai.LLMResponse{Answer: "```json{\"score\": 130, \"feedback\": \"great fit\"}```"}, nil).AnyTimes()

	roleModule, err := role.InitModule(s.db)
	require.NoError(s.T(), err)
	m, err := application.InitModule(s.db, q, roleModule, &ai.Module{Svc: llmSvc})
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
	s.dao = dao.NewGORMApplicationDAO(s.db)

	r, err := roleModule.Svc.Create(context.Background(), authz.AdminOperator(uid), role.Role{
		Title:               "Backend Intern",
		Department:          "Engineering",
		Description:         "Build Go services",
		ApplicationDeadline: "2026-12-31",
	})
	require.NoError(s.T(), err)
	s.roleId = r.ID
}

func (s *HandlerTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.db.Exec("DROP TABLE `applications`").Error)
	require.NoError(s.T(), s.db.Exec("DROP TABLE `internship_roles`").Error)
}

func (s *HandlerTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `applications`").Error)
}

func (s *HandlerTestSuite) submitReq() web.SubmitReq {
	return web.SubmitReq{
		RoleId:     s.roleId,
		FullName:   "Asha Rao",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		University: "IIT Madras",
		Course:     "B.Tech CSE",
		Year:       "3",
		CGPA:       "8.5",
		Motivation: strings.Repeat("I love distributed systems. ", 3),
		ResumeURL:  "resumes/1700000000000-cv.pdf",
	}
}

func (s *HandlerTestSuite) post(path string, body any) *test.JSONResponseRecorder[web.Application] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Application]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder
}

func (s *HandlerTestSuite) nextEvent() event.ApplicationEvent {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	msg, err := s.consumer.Consume(ctx)
	require.NoError(s.T(), err)
	var evt event.ApplicationEvent
	require.NoError(s.T(), json.Unmarshal(msg.Value, &evt))
	return evt
}

func (s *HandlerTestSuite) TestSubmit() {
	testCases := []struct {
		name     string
		req      func() web.SubmitReq
		wantCode int
		after    func(t *testing.T)
	}{
		{
			name:     "提交成功",
			req:      s.submitReq,
			wantCode: 0,
			after: func(t *testing.T) {
				apps, err := s.dao.List(context.Background(), "")
				require.NoError(t, err)
				require.Len(t, apps, 1)
				assert.Equal(t, "pending", apps[0].Status)
				assert.Equal(t, 100, apps[0].AiScore)
				assert.Equal(t, "great fit", apps[0].AiFeedback)
				evt := s.nextEvent()
				assert.Equal(t, event.TypeSubmitted, evt.Type)
				assert.Equal(t, "Backend Intern", evt.RoleTitle)
			},
		},
		{
			name: "动机太短",
			req: func() web.SubmitReq {
				req := s.submitReq()
				req.Motivation = "short"
				return req
			},
			wantCode: errs.InvalidApplication.Code,
			after: func(t *testing.T) {
				apps, err := s.dao.List(context.Background(), "")
				require.NoError(t, err)
				assert.Empty(t, apps)
			},
		},
		{
			name: "岗位不存在",
			req: func() web.SubmitReq {
				req := s.submitReq()
				req.RoleId = s.roleId + 1000
				return req
			},
			wantCode: errs.InvalidApplication.Code,
			after:    func(t *testing.T) {},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			recorder := s.post("/applications/submit", tc.req())
			assert.Equal(t, tc.wantCode, recorder.MustScan().Code)
			tc.after(t)
			require.NoError(t, s.db.Exec("TRUNCATE TABLE `applications`").Error)
		})
	}
}

// TestLifecycle 提交，入围，录用，然后尝试回退
func (s *HandlerTestSuite) TestLifecycle() {
	t := s.T()
	s.post("/applications/submit", s.submitReq())
	s.nextEvent()
	apps, err := s.dao.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	id := apps[0].Id

	res := s.post("/applications/transition", web.TransitionReq{Id: id, Status: "shortlisted", Message: "Interview on Monday"}).MustScan()
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "shortlisted", res.Data.Status)
	assert.Equal(t, "Backend Intern", res.Data.RoleTitle)
	evt := s.nextEvent()
	assert.Equal(t, event.TypeStatusUpdated, evt.Type)
	assert.Equal(t, "shortlisted", evt.Status)
	assert.Equal(t, "Interview on Monday", evt.Message)

	res = s.post("/applications/transition", web.TransitionReq{Id: id, Status: "accepted"}).MustScan()
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "accepted", res.Data.Status)
	s.nextEvent()

	res = s.post("/applications/transition", web.TransitionReq{Id: id, Status: "pending"}).MustScan()
	assert.Equal(t, errs.InvalidTransition.Code, res.Code)

	app, err := s.dao.FindById(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "accepted", app.Status)
}

func (s *HandlerTestSuite) TestUpdateAndDelete() {
	t := s.T()
	err := s.db.Create(&dao.Application{
		Id: 11, RoleId: s.roleId, FullName: "Old", Email: "old@example.com",
		AiScore: 50, Status: "shortlisted", ResumeUrl: "resumes/a.pdf", Ctime: 1, Utime: 1,
	}).Error
	require.NoError(t, err)

	res := s.post("/applications/update", web.UpdateReq{
		Id: 11, FullName: "New", Email: "new@example.com", CGPA: 9.2,
	}).MustScan()
	require.Equal(t, 0, res.Code)
	app, err := s.dao.FindById(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, "New", app.FullName)
	assert.Equal(t, 9.2, app.Cgpa)
	assert.Equal(t, "shortlisted", app.Status)
	assert.Equal(t, 50, app.AiScore)

	res = s.post("/applications/detail", web.IdReq{Id: 11}).MustScan()
	assert.Equal(t, "Backend Intern", res.Data.RoleTitle)

	res = s.post("/applications/delete", web.IdReq{Id: 11}).MustScan()
	assert.Equal(t, 0, res.Code)
	res = s.post("/applications/delete", web.IdReq{Id: 11}).MustScan()
	assert.Equal(t, errs.ApplicationNotFound.Code, res.Code)
}

func (s *HandlerTestSuite) TestListAndStats() {
	t := s.T()
	err := s.db.Create(&[]dao.Application{
		{Id: 1, RoleId: s.roleId, FullName: "A", Status: "pending", Ctime: 1, Utime: 1},
		{Id: 2, RoleId: s.roleId, FullName: "B", Status: "shortlisted", Ctime: 2, Utime: 2},
		{Id: 3, RoleId: s.roleId + 1000, FullName: "C", Status: "pending", Ctime: 3, Utime: 3},
	}).Error
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/applications/list", iox.NewJSONReader(web.ListReq{Status: "all"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ApplicationList]()
	s.server.ServeHTTP(recorder, req)
	list := recorder.MustScan().Data.List
	require.Len(t, list, 3)
	assert.Equal(t, int64(3), list[0].Id)
	assert.Equal(t, "unknown", list[0].RoleTitle)
	assert.Equal(t, int64(1), list[2].Id)

	req, err = http.NewRequest(http.MethodGet, "/applications/stats", nil)
	require.NoError(t, err)
	statsRecorder := test.NewJSONResponseRecorder[web.StatsVO]()
	s.server.ServeHTTP(statsRecorder, req)
	assert.Equal(t, web.StatsVO{Total: 3, Pending: 2, Shortlisted: 1, ActiveRoles: 1}, statsRecorder.MustScan().Data)

	req, err = http.NewRequest(http.MethodPost, "/applications/export", iox.NewJSONReader(web.ListReq{Status: "pending"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	exportRecorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(exportRecorder, req)
	assert.Equal(t, 200, exportRecorder.Code)
	assert.Contains(t, exportRecorder.Header().Get("Content-Disposition"), ".xlsx")
}
