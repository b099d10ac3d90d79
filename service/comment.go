package service

import (
	"context"

	"Weave/dao"
	"Weave/models"
	"Weave/pkg/errs"
	"Weave/pkg/snowflake"

	"gorm.io/gorm"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	CreateComment(ctx context.Context, userID, postID int64, content string) (int64, error)
}

type CommentService struct {
	DB         *gorm.DB
	UserDAO    *dao.UserDAO
	PostDAO    *dao.PostDAO
	CommentDAO *dao.CommentDAO
	Stats      IStatsService
}

// CreateComment 评论。评论插入和帖子评论数自增同事务提交
func (s *CommentService) CreateComment(ctx context.Context, userID, postID int64, content string) (int64, error) {
	if content == "" {
		return 0, errs.Errorf(errs.EINVALID, "评论内容不能为空")
	}

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

	comment := &models.Comment{
		ID:      snowflake.GenID(),
		UserID:  userID,
		PostID:  postID,
		Content: content,
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return s.Stats.OnCommentCreated(ctx, tx, postID)
	})
	if err != nil {
		return 0, err
	}
	return comment.ID, nil
}
