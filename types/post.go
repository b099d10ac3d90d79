package types

import "time"

type CreatePostRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	TopicID string `json:"topic_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type CreateLikeRequest struct {
	UserID string `json:"user_id" binding:"required"`
	PostID string `json:"post_id" binding:"required"`
}

type CreateCommentRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	PostID  string `json:"post_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type PostResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Content      string    `json:"content"`
	TopicID      int64     `json:"topic_id"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}
