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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/internhub/internal/support/internal/domain"
	"github.com/ecodeclub/internhub/internal/support/internal/repository/dao"
)

var ErrFAQNotFound = dao.ErrRecordNotFound

type FAQRepository interface {
	Save(ctx context.Context, faq domain.FAQ) (int64, error)
	FindById(ctx context.Context, id int64) (domain.FAQ, error)
	List(ctx context.Context) ([]domain.FAQ, error)
	Search(ctx context.Context, keywords []string, limit int) ([]domain.FAQ, error)
	Delete(ctx context.Context, id int64) error
}

type faqRepository struct {
	dao dao.FAQDAO
}

func NewFAQRepository(d dao.FAQDAO) FAQRepository {
	return &faqRepository{dao: d}
}

func (repo *faqRepository) Save(ctx context.Context, faq domain.FAQ) (int64, error) {
	return repo.dao.Save(ctx, dao.FAQ{
		Id:       faq.ID,
		Question: faq.Question,
		Answer:   faq.Answer,
	})
}

func (repo *faqRepository) FindById(ctx context.Context, id int64) (domain.FAQ, error) {
	faq, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.FAQ{}, err
	}
	return repo.toDomain(faq), nil
}

func (repo *faqRepository) List(ctx context.Context) ([]domain.FAQ, error) {
	faqs, err := repo.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(faqs, func(idx int, src dao.FAQ) domain.FAQ {
		return repo.toDomain(src)
	}), nil
}

func (repo *faqRepository) Search(ctx context.Context, keywords []string, limit int) ([]domain.FAQ, error) {
	faqs, err := repo.dao.Search(ctx, keywords, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(faqs, func(idx int, src dao.FAQ) domain.FAQ {
		return repo.toDomain(src)
	}), nil
}

func (repo *faqRepository) Delete(ctx context.Context, id int64) error {
	cnt, err := repo.dao.DeleteById(ctx, id)
	if err != nil {
		return err
	}
	if cnt == 0 {
		return ErrFAQNotFound
	}
	return nil
}

func (repo *faqRepository) toDomain(faq dao.FAQ) domain.FAQ {
	return domain.FAQ{
		ID:       faq.Id,
		Question: faq.Question,
		Answer:   faq.Answer,
		Ctime:    faq.Ctime,
		Utime:    faq.Utime,
	}
}
