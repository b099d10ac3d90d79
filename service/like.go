package service

import (
	"context"
	"errors"

	"Weave/dao"
	"Weave/models"
	"Weave/pkg/errs"
	"Weave/pkg/snowflake"

	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	CreateLike(ctx context.Context, userID, postID int64) (int64, error)
}

type LikeService struct {
	DB      *gorm.DB
	UserDAO *dao.UserDAO
	PostDAO *dao.PostDAO
	LikeDAO *dao.LikeDAO
	Stats   IStatsService
}

// CreateLike 点赞。一个用户对同一帖子只能点一次，
// 点赞记录和计数自增同事务提交
func (s *LikeService) CreateLike(ctx context.Context, userID, postID int64) (int64, error) {
	exist, err := s.UserDAO.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return 0, err
	}
	if !exist {
		return 0, errs.Errorf(errs.ENOTFOUND, "用户 %d 不存在", userID)
	}

	exist, err = s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return 0, err
	}
	if !exist {
		return 0, errs.Errorf(errs.ENOTFOUND, "帖子 %d 不存在", postID)
	}

	liked, err := s.LikeDAO.IsLiked(ctx, userID, postID)
	if err != nil {
		return 0, err
	}
	if liked {
		return 0, errs.Errorf(errs.ECONFLICT, "已经点赞过该帖子")
	}

	like := &models.Like{
		ID:     snowflake.GenID(),
		UserID: userID,
		PostID: postID,
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(like).Error; err != nil {
			return err
		}
		return s.Stats.OnLikeCreated(ctx, tx, postID)
	})
	if err != nil {
		// 并发下预检查可能同时通过，唯一索引是最后一道闸
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errs.Errorf(errs.ECONFLICT, "已经点赞过该帖子")
		}
		return 0, err
	}
	return like.ID, nil
}
