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

	"github.com/ecodeclub/internhub/internal/pkg/authz"
	"github.com/ecodeclub/internhub/internal/support/internal/domain"
	"github.com/ecodeclub/internhub/internal/support/internal/repository"
)

var ErrFAQNotFound = repository.ErrFAQNotFound

type FAQService interface {
	// Save id 为 0 的时候新建
	Save(ctx context.Context, op authz.Operator, faq domain.FAQ) (domain.FAQ, error)
	Delete(ctx context.Context, op authz.Operator, id int64) error
	List(ctx context.Context) ([]domain.FAQ, error)
	// Search 和用户问题最相关的若干条 FAQ
	Search(ctx context.Context, message string, limit int) ([]domain.FAQ, error)
}

type faqService struct {
	repo repository.FAQRepository
}

func NewFAQService(repo repository.FAQRepository) FAQService {
	return &faqService{repo: repo}
}

func (s *faqService) Save(ctx context.Context, op authz.Operator, faq domain.FAQ) (domain.FAQ, error) {
	if err := op.CheckAdmin(); err != nil {
		return domain.FAQ{}, err
	}
	if err := faq.Validate(); err != nil {
		return domain.FAQ{}, err
	}
	if faq.ID > 0 {
		if _, err := s.repo.FindById(ctx, faq.ID); err != nil {
			return domain.FAQ{}, err
		}
	}
	id, err := s.repo.Save(ctx, faq)
	if err != nil {
		return domain.FAQ{}, err
	}
	return s.repo.FindById(ctx, id)
}

func (s *faqService) Delete(ctx context.Context, op authz.Operator, id int64) error {
	if err := op.CheckAdmin(); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *faqService) List(ctx context.Context) ([]domain.FAQ, error) {
	return s.repo.List(ctx)
}

func (s *faqService) Search(ctx context.Context, message string, limit int) ([]domain.FAQ, error) {
	return s.repo.Search(ctx, domain.Keywords(message), limit)
}
