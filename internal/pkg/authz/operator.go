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

package authz

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// ClaimAdmin 登录时写入 JWT 的管理员标记位
const ClaimAdmin = "admin"

var ErrPermissionDenied = errors.New("没有管理员权限")

// Operator 发起操作的人。
// 管理员能力只在登录的时候计算一次，之后跟着 session 走，
// 需要管理员能力的操作都要显式传入 Operator。
type Operator struct {
	Uid   int64
	Admin bool
}

func (o Operator) CheckAdmin() error {
	if !o.Admin {
		return ErrPermissionDenied
	}
	return nil
}

func AdminOperator(uid int64) Operator {
	return Operator{Uid: uid, Admin: true}
}

func FromSession(sess session.Session) Operator {
	claims := sess.Claims()
	return Operator{
		Uid:   claims.Uid,
		Admin: claims.Get(ClaimAdmin).StringOrDefault("") == "true",
	}
}

// AdminPermission 管理后台的入口校验
func AdminPermission() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		xctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(xctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			elog.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		if !FromSession(sess).Admin {
			ctx.AbortWithStatus(http.StatusForbidden)
			elog.Error("非法访问 admin 接口，未设置权限", elog.Int64("uid", sess.Claims().Uid))
			return
		}
	}
}
