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

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/internhub/internal/ai"
	aimocks "github.com/ecodeclub/internhub/internal/ai/mocks"
	"github.com/ecodeclub/internhub/internal/pkg/authz"
	"github.com/ecodeclub/internhub/internal/role"
	"github.com/ecodeclub/internhub/internal/support"
	"github.com/ecodeclub/internhub/internal/support/internal/repository/dao"
	"github.com/ecodeclub/internhub/internal/support/internal/web"
	"github.com/ecodeclub/internhub/internal/test"
	testioc "github.com/ecodeclub/internhub/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.FAQDAO
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	ctrl := gomock.NewController(s.T())
	llmSvc := aimocks.NewMockService(ctrl)
	llmSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		Return(ai.LLMResponse{Answer: "Most roles pay 25000 per month."}, nil).AnyTimes()
	roleModule, err := role.InitModule(s.db)
	require.NoError(s.T(), err)
	m, err := support.InitModule(s.db, roleModule, &ai.Module{Svc: llmSvc})
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  1,
			Data: map[string]string{authz.ClaimAdmin: "true"},
		}))
	})
	m.Hdl.PublicRoutes(server.Engine)
	m.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
	s.dao = dao.NewGORMFAQDAO(s.db)
}

func (s *HandlerTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.db.Exec("DROP TABLE `faqs`").Error)
	require.NoError(s.T(), s.db.Exec("DROP TABLE `internship_roles`").Error)
}

func (s *HandlerTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `faqs`").Error)
}

func (s *HandlerTestSuite) TestSearch() {
	t := s.T()
	ctx := context.Background()
	for _, q := range []string{"What is the stipend?", "Is it remote?", "Stipend for remote interns", "How long is it?"} {
		_, err := s.dao.Save(ctx, dao.FAQ{Question: q, Answer: "answer"})
		require.NoError(t, err)
	}
	faqs, err := s.dao.Search(ctx, []string{"stipend", "remote"}, 3)
	require.NoError(t, err)
	require.Len(t, faqs, 3)
	assert.Equal(t, "What is the stipend?", faqs[0].Question)
	assert.Equal(t, "Is it remote?", faqs[1].Question)

	faqs, err = s.dao.Search(ctx, nil, 3)
	require.NoError(t, err)
	assert.Empty(t, faqs)
}

func (s *HandlerTestSuite) TestSaveAndChat() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/faqs/save", iox.NewJSONReader(web.FAQ{
		Question: "What is the stipend?", Answer: "25000 per month",
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.FAQ]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	faq := recorder.MustScan().Data
	assert.True(t, faq.Id > 0)

	req, err = http.NewRequest(http.MethodPost, "/support/chat", iox.NewJSONReader(web.ChatReq{Message: "stipend?"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	chatRecorder := test.NewJSONResponseRecorder[web.ChatResp]()
	s.server.ServeHTTP(chatRecorder, req)
	require.Equal(t, 200, chatRecorder.Code)
	assert.Equal(t, "Most roles pay 25000 per month.", chatRecorder.MustScan().Data.Answer)

	req, err = http.NewRequest(http.MethodGet, "/faqs/list", nil)
	require.NoError(t, err)
	listRecorder := test.NewJSONResponseRecorder[web.FAQList]()
	s.server.ServeHTTP(listRecorder, req)
	assert.Len(t, listRecorder.MustScan().Data.List, 1)
}
