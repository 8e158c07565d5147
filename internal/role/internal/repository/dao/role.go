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

type RoleDAO interface {
	Insert(ctx context.Context, r Role) (int64, error)
	Update(ctx context.Context, r Role) error
	FindById(ctx context.Context, id int64) (Role, error)
	FindByIds(ctx context.Context, ids []int64) ([]Role, error)
	List(ctx context.Context) ([]Role, error)
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	DeleteById(ctx context.Context, id int64) (int64, error)
}

type GORMRoleDAO struct {
	db *egorm.Component
}

func NewGORMRoleDAO(db *egorm.Component) RoleDAO {
	return &GORMRoleDAO{
		db: db,
	}
}

func (dao *GORMRoleDAO) Insert(ctx context.Context, r Role) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := dao.db.WithContext(ctx).Create(&r).Error
	return r.Id, err
}

func (dao *GORMRoleDAO) Update(ctx context.Context, r Role) error {
	return dao.db.WithContext(ctx).Model(&Role{}).Where("id = ?", r.Id).
		Updates(map[string]any{
			"title":                r.Title,
			"department":           r.Department,
			"description":          r.Description,
			"requirements":         r.Requirements,
			"location":             r.Location,
			"duration":             r.Duration,
			"stipend":              r.Stipend,
			"application_deadline": r.ApplicationDeadline,
			"is_active":            r.IsActive,
			"utime":                time.Now().UnixMilli(),
		}).Error
}

func (dao *GORMRoleDAO) FindById(ctx context.Context, id int64) (Role, error) {
	var r Role
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	return r, err
}

func (dao *GORMRoleDAO) FindByIds(ctx context.Context, ids []int64) ([]Role, error) {
	var roles []Role
	if len(ids) == 0 {
		return roles, nil
	}
	err := dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&roles).Error
	return roles, err
}

// List 最新创建的在前面
func (dao *GORMRoleDAO) List(ctx context.Context) ([]Role, error) {
	var roles []Role
	err := dao.db.WithContext(ctx).Order("ctime DESC, id DESC").Find(&roles).Error
	return roles, err
}

func (dao *GORMRoleDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Role{}).Count(&cnt).Error
	return cnt, err
}

func (dao *GORMRoleDAO) CountActive(ctx context.Context) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Role{}).Where("is_active = ?", true).Count(&cnt).Error
	return cnt, err
}

func (dao *GORMRoleDAO) DeleteById(ctx context.Context, id int64) (int64, error) {
	res := dao.db.WithContext(ctx).Where("id = ?", id).Delete(&Role{})
	return res.RowsAffected, res.Error
}

type Role struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	Title        string `gorm:"type:varchar(256);not null"`
	Department   string `gorm:"type:varchar(256)"`
	Description  string `gorm:"type:text"`
	Requirements string `gorm:"type:text"`
	Location     string `gorm:"type:varchar(256)"`
	// 月
	Duration            int
	Stipend             int64
	ApplicationDeadline string `gorm:"type:varchar(16)"`
	IsActive            bool   `gorm:"index"`
	// 创建时间
	Ctime int64 `gorm:"index"`
	// 更新时间
	Utime int64
}

func (Role) TableName() string {
	return "internship_roles"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Role{})
}
