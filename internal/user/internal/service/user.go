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
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/internhub/internal/user/internal/domain"
	"github.com/ecodeclub/internhub/internal/user/internal/repository"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserDuplicate         = repository.ErrUserDuplicate
	ErrInvalidUserOrPassword = errors.New("邮箱或者密码不对")
)

var validate = validator.New()

type credential struct {
	Email    string `validate:"required,email"`
	Password string `validate:"min=8,max=72"`
}

type UserService interface {
	Signup(ctx context.Context, email, password string) (domain.User, error)
	// Login 成功之后返回用户以及是否为管理员
	Login(ctx context.Context, email, password string) (domain.User, bool, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
}

type userService struct {
	repo repository.UserRepository
	// 管理员邮箱白名单
	admins []string
}

func NewUserService(repo repository.UserRepository, admins []string) UserService {
	return &userService{
		repo:   repo,
		admins: slice.Map(admins, func(idx int, src string) string { return domain.NormalizeEmail(src) }),
	}
}

func (svc *userService) Signup(ctx context.Context, email, password string) (domain.User, error) {
	email = domain.NormalizeEmail(email)
	if err := validate.Struct(credential{Email: email, Password: password}); err != nil {
		return domain.User{}, fmt.Errorf("%w: %w", domain.ErrInvalidCredential, err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	id, err := svc.repo.Create(ctx, domain.User{
		Email:    email,
		Password: string(hash),
	})
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{Id: id, Email: email}, nil
}

func (svc *userService) Login(ctx context.Context, email, password string) (domain.User, bool, error) {
	email = domain.NormalizeEmail(email)
	u, err := svc.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, false, ErrInvalidUserOrPassword
	}
	if err != nil {
		return domain.User{}, false, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return domain.User{}, false, ErrInvalidUserOrPassword
	}
	u.Password = ""
	return u, slice.Contains(svc.admins, u.Email), nil
}

func (svc *userService) Profile(ctx context.Context,
	id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}
