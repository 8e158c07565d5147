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

package domain

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"time"
)

const (
	ResumePrefix = "resumes"
	// 5MB
	MaxResumeSize = 5 << 20
)

var ErrInvalidFile = errors.New("不支持的简历文件")

var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type Upload struct {
	// 对象存储里面的 key，提交申请的时候作为简历的引用
	Key         string
	ContentType string
}

// NewResumeUpload key 为 resumes/<毫秒时间戳>-<文件名>
func NewResumeUpload(filename string, now time.Time) (Upload, error) {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if name == "" || name == "." || name == "/" {
		return Upload{}, fmt.Errorf("%w: 文件名为空", ErrInvalidFile)
	}
	ct, ok := contentTypes[strings.ToLower(path.Ext(name))]
	if !ok {
		return Upload{}, fmt.Errorf("%w: %s", ErrInvalidFile, name)
	}
	return Upload{
		Key:         fmt.Sprintf("%s/%d-%s", ResumePrefix, now.UnixMilli(), name),
		ContentType: ct,
	}, nil
}
