package dao

import (
	"context"
	"time"

	"Weave/models"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

func (d *PostDAO) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	return d.Repo.FindByWhere(ctx, "id = ?", postID)
}

// BatchGetByIDs 批量查帖子（摘要解析用）
func (d *PostDAO) BatchGetByIDs(ctx context.Context, postIDs []int64) ([]*models.Post, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var posts []*models.Post
	err := d.Db.WithContext(ctx).Where("id IN ?", postIDs).Find(&posts).Error
	return posts, err
}

// ListByUser 用户帖子时间线，走 idx_posts_user_created
// limit <= 0 表示不限制
func (d *PostDAO) ListByUser(ctx context.Context, userID int64, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	query := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&posts).Error
	return posts, err
}

// ListByTopic 话题帖子时间线，走 idx_posts_topic_created
func (d *PostDAO) ListByTopic(ctx context.Context, topicID int64, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	query := d.Db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&posts).Error
	return posts, err
}

// TopKByLikeCount 用户点赞数前 k 的帖子，计数相同按时间倒序保证稳定
func (d *PostDAO) TopKByLikeCount(ctx context.Context, userID int64, k int) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("like_count DESC, created_at DESC").
		Limit(k).
		Find(&posts).Error
	return posts, err
}

// TopKByCommentCount 用户评论数前 k 的帖子
func (d *PostDAO) TopKByCommentCount(ctx context.Context, userID int64, k int) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("comment_count DESC, created_at DESC").
		Limit(k).
		Find(&posts).Error
	return posts, err
}

// ListRecentByAuthors 好友动态：集合过滤 + 时间窗口合成一条语句下推到存储层，
// 走 idx_posts_user_created，避免逐好友查询或全表扫
func (d *PostDAO) ListRecentByAuthors(ctx context.Context, authorIDs []int64, since time.Time) ([]*models.Post, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Where("user_id IN ? AND created_at >= ?", authorIDs, since).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// IncrLikeCount 点赞计数 +1，单条 SQL 原子自增
func (d *PostDAO) IncrLikeCount(ctx context.Context, tx *gorm.DB, postID int64) error {
	if tx == nil {
		tx = d.Db
	}
	return tx.WithContext(ctx).Exec(
		"UPDATE posts SET like_count = like_count + 1 WHERE id = ?",
		postID,
	).Error
}

// IncrCommentCount 评论计数 +1，单条 SQL 原子自增
func (d *PostDAO) IncrCommentCount(ctx context.Context, tx *gorm.DB, postID int64) error {
	if tx == nil {
		tx = d.Db
	}
	return tx.WithContext(ctx).Exec(
		"UPDATE posts SET comment_count = comment_count + 1 WHERE id = ?",
		postID,
	).Error
}

// RecomputeLikeCount 对账钩子：按 likes 表重算覆盖
func (d *PostDAO) RecomputeLikeCount(ctx context.Context, postID int64) error {
	return d.Db.WithContext(ctx).Exec(
		"UPDATE posts SET like_count = (SELECT COUNT(*) FROM likes WHERE post_id = ?) WHERE id = ?",
		postID, postID,
	).Error
}

// RecomputeCommentCount 对账钩子：按 comments 表重算覆盖
func (d *PostDAO) RecomputeCommentCount(ctx context.Context, postID int64) error {
	return d.Db.WithContext(ctx).Exec(
		"UPDATE posts SET comment_count = (SELECT COUNT(*) FROM comments WHERE post_id = ?) WHERE id = ?",
		postID, postID,
	).Error
}
