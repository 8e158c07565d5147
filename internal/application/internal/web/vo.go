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
	"github.com/ecodeclub/internhub/internal/application/internal/domain"
)

type SubmitReq struct {
	RoleId     int64  `json:"roleId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	University string `json:"university"`
	Course     string `json:"course"`
	Year       string `json:"year"`
	// 8.5 或者 85%
	CGPA       string `json:"cgpa"`
	Motivation string `json:"motivation"`
	// 上传简历之后拿到的 key
	ResumeURL string `json:"resumeUrl"`
}

func (r SubmitReq) toDomain() domain.Submission {
	return domain.Submission{
		RoleID:     r.RoleId,
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		University: r.University,
		Course:     r.Course,
		Year:       r.Year,
		CGPA:       r.CGPA,
		Motivation: r.Motivation,
		ResumeURL:  r.ResumeURL,
	}
}

type IdReq struct {
	Id int64 `json:"id"`
}

type ListReq struct {
	// all 或者具体的状态
	Status string `json:"status"`
}

type TransitionReq struct {
	Id     int64  `json:"id"`
	Status string `json:"status"`
	// 会放到邮件里面
	Message string `json:"message"`
}

type UpdateReq struct {
	Id         int64   `json:"id"`
	FullName   string  `json:"fullName"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	University string  `json:"university"`
	Course     string  `json:"course"`
	Year       string  `json:"year"`
	CGPA       float64 `json:"cgpa"`
	Motivation string  `json:"motivation"`
}

func (r UpdateReq) toDomain() domain.Application {
	return domain.Application{
		ID:         r.Id,
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		University: r.University,
		Course:     r.Course,
		Year:       r.Year,
		CGPA:       r.CGPA,
		Motivation: r.Motivation,
	}
}

type Application struct {
	Id             int64   `json:"id"`
	RoleId         int64   `json:"roleId"`
	RoleTitle      string  `json:"roleTitle"`
	RoleDepartment string  `json:"roleDepartment"`
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	University     string  `json:"university"`
	Course         string  `json:"course"`
	Year           string  `json:"year"`
	CGPA           float64 `json:"cgpa"`
	Motivation     string  `json:"motivation"`
	ResumeURL      string  `json:"resumeUrl"`
	AIScore        int     `json:"aiScore"`
	AIFeedback     string  `json:"aiFeedback"`
	Status         string  `json:"status"`
	Ctime          int64   `json:"ctime"`
	Utime          int64   `json:"utime"`
}

func newApplication(app domain.Application) Application {
	return Application{
		Id:             app.ID,
		RoleId:         app.RoleID,
		RoleTitle:      app.Role.Title,
		RoleDepartment: app.Role.Department,
		FullName:       app.FullName,
		Email:          app.Email,
		Phone:          app.Phone,
		University:     app.University,
		Course:         app.Course,
		Year:           app.Year,
		CGPA:           app.CGPA,
		Motivation:     app.Motivation,
		ResumeURL:      app.ResumeURL,
		AIScore:        app.AIScore,
		AIFeedback:     app.AIFeedback,
		Status:         app.Status.String(),
		Ctime:          app.Ctime,
		Utime:          app.Utime,
	}
}

// SubmitResult 候选人只能看到自己的提交状态，看不到评分
type SubmitResult struct {
	Id     int64  `json:"id"`
	Status string `json:"status"`
}

type ApplicationList struct {
	List []Application `json:"list"`
}

func toApplicationList(apps []domain.Application) ApplicationList {
	return ApplicationList{
		List: slice.Map(apps, func(idx int, src domain.Application) Application {
			return newApplication(src)
		}),
	}
}

type StatsVO struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	Shortlisted int64 `json:"shortlisted"`
	ActiveRoles int64 `json:"activeRoles"`
}
