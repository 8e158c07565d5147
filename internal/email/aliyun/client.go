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

package aliyun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"

	"github.com/ecodeclub/internhub/internal/email"
)

type DirectMailService struct {
	client    *dm20151123.Client
	fromEmail string
}

func NewDirectMailService(accessKeyID, accessKeySecret, accountName string) (*DirectMailService, error) {
	config := &credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	}

	cred, err := credential.NewCredential(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}

	apiConfig := &openapi.Config{
		Credential: cred,
		Endpoint:   tea.String("dm.aliyuncs.com"),
	}

	client, err := dm20151123.NewClient(apiConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create DirectMail client: %w", err)
	}

	return &DirectMailService{
		client:    client,
		fromEmail: accountName,
	}, nil
}

func (a *DirectMailService) SendMail(ctx context.Context, mail email.Mail) error {
	request := &dm20151123.SingleSendMailRequest{
		AccountName: tea.String(a.fromEmail),
		FromAlias:   tea.String(mail.From),
		// 1 表示随机账号
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	runtime := &util.RuntimeOptions{}
	if deadline, ok := ctx.Deadline(); ok {
		// SDK 不支持 context，只能换算成超时时间
		timeout := int(time.Until(deadline).Milliseconds())
		if timeout <= 0 {
			return ctx.Err()
		}
		runtime.ReadTimeout = tea.Int(timeout)
	}
	_, err := a.client.SingleSendMailWithOptions(request, runtime)
	if err != nil {
		return handleError(err)
	}
	return nil
}

func handleError(err error) error {
	var sdkError *tea.SDKError
	if !errors.As(err, &sdkError) {
		return fmt.Errorf("邮件发送失败: %w", err)
	}
	var errorData map[string]any
	if sdkError.Data != nil {
		_ = json.NewDecoder(strings.NewReader(tea.StringValue(sdkError.Data))).Decode(&errorData)
	}

	errorMsg := fmt.Sprintf("阿里云邮件推送API错误: %s", tea.StringValue(sdkError.Message))
	if recommend, ok := errorData["Recommend"]; ok {
		errorMsg += fmt.Sprintf(" | 建议: %v", recommend)
	}
	if requestId, ok := errorData["RequestId"]; ok {
		errorMsg += fmt.Sprintf(" | RequestId: %v", requestId)
	}
	return errors.New(errorMsg)
}
