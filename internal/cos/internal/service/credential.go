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
	"fmt"
	"time"

	"github.com/ecodeclub/internhub/internal/cos/internal/domain"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

type Credential struct {
	Key          string
	SecretId     string
	SecretKey    string
	SessionToken string
	StartTime    int64
	ExpiredTime  int64
	Bucket       string
	Region       string
}

type Service interface {
	// ResumeCredential 只允许上传到本次生成的 key
	ResumeCredential(ctx context.Context, filename string) (Credential, error)
}

// CredentialClient 对 sts.Client 的抽象，方便测试
type CredentialClient interface {
	GetCredential(opt *sts.CredentialOptions) (*sts.CredentialResult, error)
}

type Config struct {
	AppID  string
	Bucket string
	Region string
}

type service struct {
	client  CredentialClient
	cfg     Config
	actions []string
	nowFunc func() time.Time
}

func NewService(client CredentialClient, cfg Config) Service {
	return &service{
		client: client,
		cfg:    cfg,
		actions: []string{
			// 简单上传
			"name/cos:PostObject",
			"name/cos:PutObject",
			// 分片上传
			"name/cos:InitiateMultipartUpload",
			"name/cos:ListMultipartUploads",
			"name/cos:ListParts",
			"name/cos:UploadPart",
			"name/cos:CompleteMultipartUpload",
		},
		nowFunc: time.Now,
	}
}

func (s *service) ResumeCredential(ctx context.Context, filename string) (Credential, error) {
	upload, err := domain.NewResumeUpload(filename, s.nowFunc())
	if err != nil {
		return Credential{}, err
	}
	res, err := s.client.GetCredential(s.policy(upload))
	if err != nil {
		return Credential{}, fmt.Errorf("获取临时密钥失败: %w", err)
	}
	return Credential{
		Key:          upload.Key,
		SecretId:     res.Credentials.TmpSecretID,
		SecretKey:    res.Credentials.TmpSecretKey,
		SessionToken: res.Credentials.SessionToken,
		StartTime:    int64(res.StartTime),
		ExpiredTime:  int64(res.ExpiredTime),
		Bucket:       fmt.Sprintf("%s-%s", s.cfg.Bucket, s.cfg.AppID),
		Region:       s.cfg.Region,
	}, nil
}

// 策略概述 https://cloud.tencent.com/document/product/436/18023
func (s *service) policy(upload domain.Upload) *sts.CredentialOptions {
	// 存储桶的命名格式为 BucketName-APPID
	resource := fmt.Sprintf("qcs::cos:%s:uid/%s:%s-%s/%s",
		s.cfg.Region, s.cfg.AppID,
		s.cfg.Bucket, s.cfg.AppID, upload.Key)
	return &sts.CredentialOptions{
		DurationSeconds: int64((15 * time.Minute).Seconds()),
		Region:          s.cfg.Region,
		Policy: &sts.CredentialPolicy{
			Statement: []sts.CredentialPolicyStatement{
				{
					Action:   s.actions,
					Effect:   "allow",
					Resource: []string{resource},
					Condition: map[string]map[string]interface{}{
						"string_equal": {
							"cos:content-type": upload.ContentType,
						},
						"numeric_less_than_equal": {
							"cos:content-length": domain.MaxResumeSize,
						},
					},
				},
			},
		},
	}
}
