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

package service

import (
	"context"

	"github.com/ecodeclub/internhub/internal/email"
	"github.com/gotomicro/ego/core/elog"
)

const fromAlias = "OctaIQ"

// Result 发送结果，失败不会返回 error
type Result struct {
	Success bool
	Error   string
}

type Service interface {
	Notify(ctx context.Context, to, subject, body string) Result
	SendConfirmation(ctx context.Context, to, name, roleTitle string) Result
	// SendStatusUpdate message 为空的时候不展示
	SendStatusUpdate(ctx context.Context, to, name, roleTitle, status, message string) Result
}

type service struct {
	emailSvc email.Service
	logger   *elog.Component
}

func NewService(emailSvc email.Service) Service {
	return &service{
		emailSvc: emailSvc,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Notify(ctx context.Context, to, subject, body string) Result {
	err := s.emailSvc.SendMail(ctx, email.Mail{
		From:    fromAlias,
		To:      to,
		Subject: subject,
		Body:    []byte(body),
	})
	if err != nil {
		s.logger.Error("发送邮件失败",
			elog.FieldErr(err),
			elog.String("to", to),
			elog.String("subject", subject))
		return Result{Success: false, Error: err.Error()}
	}
	return Result{Success: true}
}

func (s *service) SendConfirmation(ctx context.Context, to, name, roleTitle string) Result {
	body, err := renderConfirmation(name, roleTitle)
	if err != nil {
		s.logger.Error("渲染邮件失败", elog.FieldErr(err))
		return Result{Error: err.Error()}
	}
	return s.Notify(ctx, to, ConfirmationSubject, body)
}

func (s *service) SendStatusUpdate(ctx context.Context, to, name, roleTitle, status, message string) Result {
	body, err := renderStatusUpdate(name, roleTitle, status, message)
	if err != nil {
		s.logger.Error("渲染邮件失败", elog.FieldErr(err))
		return Result{Error: err.Error()}
	}
	return s.Notify(ctx, to, StatusSubject(status), body)
}
