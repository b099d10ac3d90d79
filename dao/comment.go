package dao

import (
	"context"

	"Weave/models"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

// ListByUser 用户评论列表（按时间倒序），走 idx_comments_user_created
func (d *CommentDAO) ListByUser(ctx context.Context, userID int64, limit int) ([]*models.Comment, error) {
	var comments []*models.Comment
	query := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&comments).Error
	return comments, err
}

// CountByPost 按帖子统计评论数（对账/测试用）
func (d *CommentDAO) CountByPost(ctx context.Context, postID int64) (int64, error) {
	return d.Repo.Count(ctx, "post_id = ?", postID)
}
