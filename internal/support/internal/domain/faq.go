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
	"unicode"
)

var ErrInvalidFAQ = errors.New("FAQ 不合法")

const (
	// 关键字至少两个字符
	minKeywordLen = 2
	maxKeywords   = 8
)

// 太常见的词匹配不出有意义的 FAQ
var stopWords = map[string]struct{}{
	"the": {}, "is": {}, "an": {}, "what": {}, "how": {}, "do": {}, "does": {},
	"can": {}, "to": {}, "of": {}, "for": {}, "and": {}, "or": {}, "in": {},
	"on": {}, "my": {}, "me": {}, "you": {}, "are": {}, "when": {}, "where": {},
}

type FAQ struct {
	ID       int64
	Question string
	Answer   string
	Ctime    int64
	Utime    int64
}

func (f FAQ) Validate() error {
	if strings.TrimSpace(f.Question) == "" || strings.TrimSpace(f.Answer) == "" {
		return ErrInvalidFAQ
	}
	return nil
}

// Keywords 把用户的问题拆成关键字，用于模糊匹配 FAQ
func Keywords(message string) []string {
	words := strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	seen := make(map[string]struct{}, len(words))
	res := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) < minKeywordLen {
			continue
		}
		if _, ok := stopWords[w]; ok {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		res = append(res, w)
		if len(res) == maxKeywords {
			break
		}
	}
	return res
}
