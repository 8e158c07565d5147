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
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type FAQDAO interface {
	Save(ctx context.Context, faq FAQ) (int64, error)
	FindById(ctx context.Context, id int64) (FAQ, error)
	List(ctx context.Context) ([]FAQ, error)
	// Search 问题里面包含任意一个关键字
	Search(ctx context.Context, keywords []string, limit int) ([]FAQ, error)
	DeleteById(ctx context.Context, id int64) (int64, error)
}

type GORMFAQDAO struct {
	db *egorm.Component
}

func NewGORMFAQDAO(db *egorm.Component) FAQDAO {
	return &GORMFAQDAO{db: db}
}

func (dao *GORMFAQDAO) Save(ctx context.Context, faq FAQ) (int64, error) {
	now := time.Now().UnixMilli()
	faq.Ctime = now
	faq.Utime = now
	err := dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{"question", "answer", "utime"}),
	}).Create(&faq).Error
	return faq.Id, err
}

func (dao *GORMFAQDAO) FindById(ctx context.Context, id int64) (FAQ, error) {
	var faq FAQ
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&faq).Error
	return faq, err
}

func (dao *GORMFAQDAO) List(ctx context.Context) ([]FAQ, error) {
	var faqs []FAQ
	err := dao.db.WithContext(ctx).Order("id ASC").Find(&faqs).Error
	return faqs, err
}

func (dao *GORMFAQDAO) Search(ctx context.Context, keywords []string, limit int) ([]FAQ, error) {
	var faqs []FAQ
	if len(keywords) == 0 {
		return faqs, nil
	}
	cond := dao.db.Where("question LIKE ?", "%"+keywords[0]+"%")
	for _, kw := range keywords[1:] {
		cond = cond.Or("question LIKE ?", "%"+kw+"%")
	}
	err := dao.db.WithContext(ctx).Where(cond).Order("id ASC").Limit(limit).Find(&faqs).Error
	return faqs, err
}

func (dao *GORMFAQDAO) DeleteById(ctx context.Context, id int64) (int64, error) {
	res := dao.db.WithContext(ctx).Where("id = ?", id).Delete(&FAQ{})
	return res.RowsAffected, res.Error
}

type FAQ struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Question string `gorm:"type:varchar(512);not null"`
	Answer   string `gorm:"type:text"`
	Ctime    int64
	Utime    int64
}

func (FAQ) TableName() string {
	return "faqs"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&FAQ{})
}
