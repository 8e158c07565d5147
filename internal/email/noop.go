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

package email

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
)

// NoopService 没有配置邮件渠道的时候使用，只打印日志
type NoopService struct {
	logger *elog.Component
}

func NewNoopService() *NoopService {
	return &NoopService{
		logger: elog.DefaultLogger.With(elog.FieldComponent("email.noop")),
	}
}

func (s *NoopService) SendMail(ctx context.Context, mail Mail) error {
	s.logger.Info("未配置邮件渠道，跳过发送",
		elog.String("to", mail.To),
		elog.String("subject", mail.Subject))
	return nil
}
