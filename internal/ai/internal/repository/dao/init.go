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

package dao

import (
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

func InitTables(db *egorm.Component) error {
	err := db.AutoMigrate(
		&LLMRecord{},
		&BizConfig{},
	)
	if err != nil {
		return err
	}
	return initDefaultConfigs(db)
}

// initDefaultConfigs 已经存在的配置不会被覆盖
func initDefaultConfigs(db *egorm.Component) error {
	now := time.Now().UnixMilli()
	cfgs := []BizConfig{
		{
			Biz:          "resume_score",
			Model:        "gpt-4o-mini",
			Temperature:  0.3,
			MaxTokens:    300,
			MaxInput:     20000,
			SystemPrompt: "You are an AI resume scorer. Analyze the resume against the job description and provide a score (0-100) with brief feedback.",
			PromptTemplate: "Job Description: %s\n\nResume: %s\n\n" +
				"Provide a JSON response with 'score' (0-100) and 'feedback' (max 200 chars).",
			Ctime: now,
			Utime: now,
		},
		{
			Biz:         "support_chat",
			Model:       "gpt-4o-mini",
			Temperature: 0.7,
			MaxTokens:   200,
			MaxInput:    20000,
			SystemPrompt: "You are OctaIQ Assistant, a helpful chatbot for the OctaIQ internship portal. " +
				"Use the provided context to answer questions about internship roles, applications, stipends, and deadlines. " +
				"Be concise and helpful. If you don't know something, suggest contacting support.",
			PromptTemplate: "Context: %s\n\nUser question: %s",
			Ctime:          now,
			Utime:          now,
		},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&cfgs).Error
}
