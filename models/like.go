package models

import "time"

// Like 点赞表
type Like struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	// 联合唯一索引：一个用户对同一帖子只能点赞一次，防止计数虚高
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_likes_user_post" json:"user_id"`
	PostID    int64     `gorm:"column:post_id;not null;uniqueIndex:uk_likes_user_post;index:idx_likes_post_id" json:"post_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
