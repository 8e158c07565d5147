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

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/internhub/internal/notification/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

var ErrUnknownEvent = errors.New("未知的申请事件")

type ApplicationEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewApplicationEventConsumer(q mq.MQ, svc service.Service) (*ApplicationEventConsumer, error) {
	const groupID = "notification.email"
	consumer, err := q.Consumer(ApplicationEventTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &ApplicationEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.email.consumer")),
	}, nil
}

func (c *ApplicationEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费申请事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *ApplicationEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt ApplicationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	return c.Handle(ctx, evt)
}

// Handle 邮件发送失败只记录，不重试
func (c *ApplicationEventConsumer) Handle(ctx context.Context, evt ApplicationEvent) error {
	var res service.Result
	switch evt.Type {
	case TypeSubmitted:
		res = c.svc.SendConfirmation(ctx, evt.Email, evt.FullName, evt.RoleTitle)
	case TypeStatusUpdated:
		res = c.svc.SendStatusUpdate(ctx, evt.Email, evt.FullName, evt.RoleTitle, evt.Status, evt.Message)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEvent, evt.Type)
	}
	if !res.Success {
		c.logger.Error("通知候选人失败",
			elog.Int64("aid", evt.ApplicationID),
			elog.String("type", evt.Type),
			elog.String("error", res.Error))
	}
	return nil
}
