package service

import (
	"context"

	"Weave/dao"
	"Weave/models"
	"Weave/pkg/errs"
	"Weave/pkg/snowflake"

	"gorm.io/gorm"
)

const maxPostContentBytes = 256

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	CreatePost(ctx context.Context, userID, topicID int64, content string) (int64, error)
}

type PostService struct {
	DB       *gorm.DB
	UserDAO  *dao.UserDAO
	TopicDAO *dao.TopicDAO
	PostDAO  *dao.PostDAO
	Stats    IStatsService
}

// CreatePost 发帖。帖子插入和话题计数自增在同一事务里提交，
// 计数失败整个写入回滚，不会留下没计数的帖子
func (s *PostService) CreatePost(ctx context.Context, userID, topicID int64, content string) (int64, error) {
	if content == "" {
		return 0, errs.Errorf(errs.EINVALID, "内容不能为空")
	}
	if len(content) > maxPostContentBytes {
		return 0, errs.Errorf(errs.EINVALID, "内容超过 %d 字节", maxPostContentBytes)
	}

	exist, err := s.UserDAO.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return 0, err
	}
	if !exist {
		return 0, errs.Errorf(errs.ENOTFOUND, "用户 %d 不存在", userID)
	}

	exist, err = s.TopicDAO.IsExist(ctx, "id = ?", topicID)
	if err != nil {
		return 0, err
	}
	if !exist {
		return 0, errs.Errorf(errs.ENOTFOUND, "话题 %d 不存在", topicID)
	}

	post := &models.Post{
		ID:      snowflake.GenID(),
		UserID:  userID,
		TopicID: topicID,
		Content: content,
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return s.Stats.OnPostCreated(ctx, tx, topicID)
	})
	if err != nil {
		return 0, err
	}

	// 热度榜镜像在事务外同步，丢了由读路径回退
	s.Stats.BumpTopicRank(ctx, topicID)

	return post.ID, nil
}
