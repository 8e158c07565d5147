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
	"strings"
)

var ErrInvalidCredential = errors.New("邮箱或者密码格式不对")

type User struct {
	Id    int64
	Email string
	// 加密之后的密码
	Password string
	Ctime    int64
}

// NormalizeEmail 登录和注册都按照小写处理
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
