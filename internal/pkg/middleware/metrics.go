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
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsBuilder 按照 server 维度统计接口耗时和状态码
type MetricsBuilder struct {
	Namespace string
	Server    string
	Buckets   []float64
}

func NewMetricsBuilder(namespace, server string) *MetricsBuilder {
	return &MetricsBuilder{
		Namespace: namespace,
		Server:    server,
		Buckets:   []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 3, 10},
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	labels := []string{"method", "pattern", "status"}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   b.Namespace,
		Subsystem:   "http",
		Name:        "request_duration_seconds",
		Help:        "HTTP 请求耗时",
		ConstLabels: prometheus.Labels{"server": b.Server},
		Buckets:     b.Buckets,
	}, labels)
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   b.Namespace,
		Subsystem:   "http",
		Name:        "requests_total",
		Help:        "HTTP 请求数量",
		ConstLabels: prometheus.Labels{"server": b.Server},
	}, labels)
	prometheus.MustRegister(duration, total)
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		pattern := ctx.FullPath()
		if pattern == "" {
			// 没有命中路由的统一归类，避免标签爆炸
			pattern = "unknown"
		}
		lvs := []string{ctx.Request.Method, pattern, strconv.Itoa(ctx.Writer.Status())}
		duration.WithLabelValues(lvs...).Observe(time.Since(start).Seconds())
		total.WithLabelValues(lvs...).Inc()
	}
}
