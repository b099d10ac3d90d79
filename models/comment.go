package models

import "time"

// Comment 评论表，本身无统计字段，只贡献 Post.comment_count
type Comment struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_comments_user_created,priority:1" json:"user_id"`
	PostID    int64     `gorm:"column:post_id;not null;index:idx_comments_post_id" json:"post_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_comments_user_created,priority:2" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
