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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsBuilder_Build(t *testing.T) {
	server := gin.New()
	server.Use(NewMetricsBuilder("internhub_test", "web").Build())
	server.GET("/roles/list", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	for _, path := range []string{"/roles/list", "/roles/list", "/not-found"} {
		req, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)
		server.ServeHTTP(httptest.NewRecorder(), req)
	}

	mfs, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	got := map[string]float64{}
	for _, mf := range mfs {
		if mf.GetName() != "internhub_test_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			var pattern, status string
			for _, l := range m.GetLabel() {
				switch l.GetName() {
				case "pattern":
					pattern = l.GetValue()
				case "status":
					status = l.GetValue()
				}
			}
			got[pattern+" "+status] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{
		"/roles/list 200": 2,
		"unknown 404":     1,
	}, got)
}
