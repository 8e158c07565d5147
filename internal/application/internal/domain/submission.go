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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 允许 8.5 或者 85% 这种写法
	_ = v.RegisterValidation("cgpa", func(fl validator.FieldLevel) bool {
		_, err := ParseCGPA(fl.Field().String())
		return err == nil
	})
	return v
}

// ParseCGPA 只要求是一个非负的有限数，不限制上限
func ParseCGPA(val string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(val), "%"), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, fmt.Errorf("非法的 CGPA %q", val)
	}
	return f, nil
}

// Submission 候选人提交的表单
type Submission struct {
	RoleID     int64  `validate:"gt=0"`
	FullName   string `validate:"min=2"`
	Email      string `validate:"required,email"`
	Phone      string `validate:"min=10"`
	University string `validate:"min=2"`
	Course     string `validate:"min=2"`
	Year       string `validate:"min=1"`
	CGPA       string `validate:"required,cgpa"`
	Motivation string `validate:"min=50"`
	ResumeURL  string `validate:"required"`
}

func (s Submission) Normalize() Submission {
	s.FullName = strings.TrimSpace(s.FullName)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.University = strings.TrimSpace(s.University)
	s.Course = strings.TrimSpace(s.Course)
	s.Year = strings.TrimSpace(s.Year)
	s.CGPA = strings.TrimSpace(s.CGPA)
	s.Motivation = strings.TrimSpace(s.Motivation)
	s.ResumeURL = strings.TrimSpace(s.ResumeURL)
	return s
}

func (s Submission) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidApplication, err.Error())
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fmt.Errorf("%w: %s", ErrInvalidApplication, strings.Join(fields, ", "))
}

// ToApplication 调用之前必须先 Validate
func (s Submission) ToApplication() Application {
	cgpa, _ := ParseCGPA(s.CGPA)
	return Application{
		RoleID:     s.RoleID,
		FullName:   s.FullName,
		Email:      s.Email,
		Phone:      s.Phone,
		University: s.University,
		Course:     s.Course,
		Year:       s.Year,
		CGPA:       cgpa,
		Motivation: s.Motivation,
		ResumeURL:  s.ResumeURL,
		Status:     StatusPending,
	}
}
