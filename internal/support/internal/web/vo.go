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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/internhub/internal/support/internal/domain"
)

type ChatReq struct {
	Message string `json:"message"`
	// 前端可以附带当前页面的信息
	Context string `json:"context"`
}

type ChatResp struct {
	Answer string `json:"answer"`
}

type FAQ struct {
	Id       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Utime    int64  `json:"utime"`
}

func (f FAQ) toDomain() domain.FAQ {
	return domain.FAQ{
		ID:       f.Id,
		Question: f.Question,
		Answer:   f.Answer,
	}
}

func newFAQ(f domain.FAQ) FAQ {
	return FAQ{
		Id:       f.ID,
		Question: f.Question,
		Answer:   f.Answer,
		Utime:    f.Utime,
	}
}

type FAQList struct {
	List []FAQ `json:"list"`
}

func toFAQList(faqs []domain.FAQ) FAQList {
	return FAQList{
		List: slice.Map(faqs, func(idx int, src domain.FAQ) FAQ {
			return newFAQ(src)
		}),
	}
}

type IdReq struct {
	Id int64 `json:"id"`
}
