package models

import "time"

// Friendship 关注表，user_id 关注 friend_id，单向关系
type Friendship struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	// 联合唯一索引：同一对 (user_id, friend_id) 只允许一条关注记录
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_friendships_user_friend;index:idx_friendships_user_id" json:"user_id"`
	FriendID  int64     `gorm:"column:friend_id;not null;uniqueIndex:uk_friendships_user_friend" json:"friend_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Friendship) TableName() string {
	return "friendships"
}
