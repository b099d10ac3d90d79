package dao

import (
	"context"

	"Weave/models"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

// IsLiked 查询指定用户对指定帖子是否已点赞
func (d *LikeDAO) IsLiked(ctx context.Context, userID, postID int64) (bool, error) {
	return d.Repo.IsExist(ctx, "user_id = ? AND post_id = ?", userID, postID)
}

// CountByPost 按帖子统计点赞数（对账/测试用，热路径读冗余字段）
func (d *LikeDAO) CountByPost(ctx context.Context, postID int64) (int64, error) {
	return d.Repo.Count(ctx, "post_id = ?", postID)
}
