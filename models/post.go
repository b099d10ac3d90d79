package models

import "time"

// Post 帖子表
//
// 读路径依赖的索引全部声明在这里：
//   - (user_id, created_at)     用户帖子时间线
//   - (topic_id, created_at)    话题帖子时间线
//   - (user_id, like_count)     用户 top-k 点赞
//   - (user_id, comment_count)  用户 top-k 评论
type Post struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID  int64  `gorm:"column:user_id;not null;index:idx_posts_user_created,priority:1;index:idx_posts_user_likes,priority:1;index:idx_posts_user_comments,priority:1" json:"user_id"`
	Content string `gorm:"column:content;type:varchar(256);not null" json:"content"`
	TopicID int64  `gorm:"column:topic_id;not null;index:idx_posts_topic_created,priority:1" json:"topic_id"`

	// 冗余统计字段，只允许 StatsService 修改
	LikeCount    int64 `gorm:"column:like_count;not null;default:0;index:idx_posts_user_likes,priority:2" json:"like_count"`
	CommentCount int64 `gorm:"column:comment_count;not null;default:0;index:idx_posts_user_comments,priority:2" json:"comment_count"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_posts_user_created,priority:2;index:idx_posts_topic_created,priority:2" json:"created_at"`
}

func (Post) TableName() string {
	return "posts"
}
