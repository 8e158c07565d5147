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
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/internhub/internal/pkg/authz"
	"github.com/ecodeclub/internhub/internal/test"
	testioc "github.com/ecodeclub/internhub/internal/test/ioc"
	"github.com/ecodeclub/internhub/internal/user"
	"github.com/ecodeclub/internhub/internal/user/internal/errs"
	"github.com/ecodeclub/internhub/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	db     *egorm.Component
	server *egin.Component
	uid    int64
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	econf.Set("user", map[string]any{"admins": []string{"hr@octaiq.com"}})
	m := user.InitModule(s.db, testioc.InitCache())

	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  s.uid,
			Data: map[string]string{authz.ClaimAdmin: "true"},
		}))
	})
	m.Hdl.PublicRoutes(server.Engine)
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `users`").Error)
}

func (s *HandlerTestSuite) TestSignupAndLogin() {
	t := s.T()
	resp := s.post("/users/signup", web.SignupReq{Email: "HR@octaiq.com", Password: "password123"})
	require.Equal(t, 200, resp.Code)
	signup := resp.MustScan()
	assert.Equal(t, "hr@octaiq.com", signup.Data.Email)
	assert.True(t, signup.Data.Id > 0)

	resp = s.post("/users/signup", web.SignupReq{Email: "hr@octaiq.com", Password: "password123"})
	assert.Equal(t, errs.UserDuplicate.Code, resp.MustScan().Code)

	resp = s.post("/users/signup", web.SignupReq{Email: "bad", Password: "password123"})
	assert.Equal(t, errs.InvalidInput.Code, resp.MustScan().Code)

	resp = s.post("/users/login", web.LoginReq{Email: "hr@octaiq.com", Password: "password123"})
	require.Equal(t, 200, resp.Code)
	login := resp.MustScan()
	assert.Equal(t, web.Profile{Id: signup.Data.Id, Email: "hr@octaiq.com", IsAdmin: true}, login.Data)

	resp = s.post("/users/login", web.LoginReq{Email: "hr@octaiq.com", Password: "nope-nope"})
	assert.Equal(t, errs.InvalidUserOrPassword.Code, resp.MustScan().Code)

	s.uid = signup.Data.Id
	req, err := http.NewRequest(http.MethodGet, "/users/profile", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, web.Profile{Id: signup.Data.Id, Email: "hr@octaiq.com", IsAdmin: true}, recorder.MustScan().Data)
}

func (s *HandlerTestSuite) post(path string, body any) *test.JSONResponseRecorder[web.Profile] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	return recorder
}
