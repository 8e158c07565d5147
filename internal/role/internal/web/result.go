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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/internhub/internal/pkg/authz"
	"github.com/ecodeclub/internhub/internal/role/internal/domain"
	"github.com/ecodeclub/internhub/internal/role/internal/errs"
	"github.com/ecodeclub/internhub/internal/role/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

func errorResult(err error) ginx.Result {
	switch {
	case errors.Is(err, domain.ErrInvalidRole):
		return ginx.Result{Code: errs.InvalidRole.Code, Msg: err.Error()}
	case errors.Is(err, service.ErrRoleNotFound):
		return ginx.Result{Code: errs.RoleNotFound.Code, Msg: errs.RoleNotFound.Msg}
	case errors.Is(err, authz.ErrPermissionDenied):
		return ginx.Result{Code: errs.NoPermission.Code, Msg: errs.NoPermission.Msg}
	default:
		return systemErrorResult
	}
}
