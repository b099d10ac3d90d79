package models

import "time"

// Topic 话题表
type Topic struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"column:name;type:varchar(64);uniqueIndex:uk_topics_name;not null" json:"name"`

	// 冗余统计字段，只允许 StatsService 修改
	PostCount int64 `gorm:"column:post_count;not null;default:0;index:idx_topics_post_count" json:"post_count"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Topic) TableName() string {
	return "topics"
}
