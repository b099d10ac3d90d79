package models

import "time"

// User 用户表
type User struct {
	// 显式关闭自增，配合手动生成的雪花 ID
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Username   string    `gorm:"column:username;type:varchar(64);uniqueIndex:uk_users_username;not null" json:"username"`
	Email      string    `gorm:"column:email;type:varchar(128);not null;default:''" json:"email"`
	DateJoined time.Time `gorm:"column:date_joined;autoCreateTime" json:"date_joined"`
	LastActive time.Time `gorm:"column:last_active;autoUpdateTime" json:"last_active"`
}

func (User) TableName() string {
	return "users"
}
