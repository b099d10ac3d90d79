package types

import "time"

// CommentWithPost 用户评论列表条目，带父帖的冗余展示字段。
// 父帖解析不到时两个冗余字段整体缺省，不视为错误。
type CommentWithPost struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	PostAuthorID *int64 `json:"post_author_id,omitempty"`
	PostExcerpt  string `json:"post_excerpt,omitempty"`
}

// TopicPost 话题帖子列表条目，带作者用户名
type TopicPost struct {
	PostResponse
	Username string `json:"username,omitempty"`
}

// FeedPost 好友动态条目，带作者用户名和话题名
type FeedPost struct {
	PostResponse
	Username  string `json:"username,omitempty"`
	TopicName string `json:"topic_name,omitempty"`
}

// PostExcerpt 帖子摘要（批量解析的返回单元）
type PostExcerpt struct {
	AuthorID int64  `json:"author_id"`
	Excerpt  string `json:"excerpt"`
}
