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

var _ ITopicService = (*TopicService)(nil)

type ITopicService interface {
	CreateTopic(ctx context.Context, name string) (int64, error)
}

type TopicService struct {
	TopicDAO *dao.TopicDAO
}

func (s *TopicService) CreateTopic(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, errs.Errorf(errs.EINVALID, "话题名不能为空")
	}

	existing, err := s.TopicDAO.FindByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, errs.Errorf(errs.ECONFLICT, "话题 %s 已存在", name)
	}

	topic := &models.Topic{
		ID:   snowflake.GenID(),
		Name: name,
	}
	if err := s.TopicDAO.Create(ctx, topic); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errs.Errorf(errs.ECONFLICT, "话题 %s 已存在", name)
		}
		return 0, err
	}
	return topic.ID, nil
}
