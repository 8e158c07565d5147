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
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ApplicationDAO interface {
	Insert(ctx context.Context, app Application) (int64, error)
	FindById(ctx context.Context, id int64) (Application, error)
	// List status 为空的时候返回全部
	List(ctx context.Context, status string) ([]Application, error)
	UpdateFields(ctx context.Context, app Application) (int64, error)
	// UpdateStatus 只有当前状态是 from 的时候才会更新
	UpdateStatus(ctx context.Context, id int64, from, to string) (int64, error)
	DeleteById(ctx context.Context, id int64) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (dao *GORMApplicationDAO) Insert(ctx context.Context, app Application) (int64, error) {
	now := time.Now().UnixMilli()
	app.Ctime = now
	app.Utime = now
	err := dao.db.WithContext(ctx).Create(&app).Error
	return app.Id, err
}

func (dao *GORMApplicationDAO) FindById(ctx context.Context, id int64) (Application, error) {
	var app Application
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	return app, err
}

func (dao *GORMApplicationDAO) List(ctx context.Context, status string) ([]Application, error) {
	var apps []Application
	db := dao.db.WithContext(ctx)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Order("ctime DESC, id DESC").Find(&apps).Error
	return apps, err
}

func (dao *GORMApplicationDAO) UpdateFields(ctx context.Context, app Application) (int64, error) {
	res := dao.db.WithContext(ctx).Model(&Application{}).Where("id = ?", app.Id).
		Updates(map[string]any{
			"full_name":  app.FullName,
			"email":      app.Email,
			"phone":      app.Phone,
			"university": app.University,
			"course":     app.Course,
			"year":       app.Year,
			"cgpa":       app.Cgpa,
			"motivation": app.Motivation,
			"utime":      time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (dao *GORMApplicationDAO) UpdateStatus(ctx context.Context, id int64, from, to string) (int64, error) {
	res := dao.db.WithContext(ctx).Model(&Application{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (dao *GORMApplicationDAO) DeleteById(ctx context.Context, id int64) (int64, error) {
	res := dao.db.WithContext(ctx).Where("id = ?", id).Delete(&Application{})
	return res.RowsAffected, res.Error
}

func (dao *GORMApplicationDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Application{}).Count(&cnt).Error
	return cnt, err
}

func (dao *GORMApplicationDAO) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Cnt    int64
	}
	err := dao.db.WithContext(ctx).Model(&Application{}).
		Select("status, COUNT(*) AS cnt").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make(map[string]int64, len(rows))
	for _, r := range rows {
		res[r.Status] = r.Cnt
	}
	return res, nil
}

type Application struct {
	Id         int64  `gorm:"primaryKey,autoIncrement"`
	RoleId     int64  `gorm:"index"`
	FullName   string `gorm:"type:varchar(256);not null"`
	Email      string `gorm:"type:varchar(256);index"`
	Phone      string `gorm:"type:varchar(64)"`
	University string `gorm:"type:varchar(256)"`
	Course     string `gorm:"type:varchar(256)"`
	Year       string `gorm:"type:varchar(16)"`
	Cgpa       float64
	Motivation string `gorm:"type:text"`
	ResumeUrl  string `gorm:"type:varchar(512)"`
	AiScore    int
	AiFeedback string `gorm:"type:varchar(1024)"`
	Status     string `gorm:"type:varchar(32);index;not null;default:pending"`
	Ctime      int64  `gorm:"index"`
	Utime      int64
}

func (Application) TableName() string {
	return "applications"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Application{})
}
