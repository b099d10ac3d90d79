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

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	CreateFriendship(ctx context.Context, userID, friendID int64) (int64, error)
}

type FollowService struct {
	UserDAO       *dao.UserDAO
	FriendshipDAO *dao.FriendshipDAO
}

// CreateFriendship userID 关注 friendID，单向边，不隐含互关
func (s *FollowService) CreateFriendship(ctx context.Context, userID, friendID int64) (int64, error) {
	if userID == friendID {
		return 0, errs.Errorf(errs.EINVALID, "不能关注自己")
	}

	// 写入前校验两端都存在
	for _, id := range []int64{userID, friendID} {
		exist, err := s.UserDAO.IsExist(ctx, "id = ?", id)
		if err != nil {
			return 0, err
		}
		if !exist {
			return 0, errs.Errorf(errs.ENOTFOUND, "用户 %d 不存在", id)
		}
	}

	following, err := s.FriendshipDAO.IsFollowing(ctx, userID, friendID)
	if err != nil {
		return 0, err
	}
	if following {
		return 0, errs.Errorf(errs.ECONFLICT, "已经关注过该用户")
	}

	friendship := &models.Friendship{
		ID:       snowflake.GenID(),
		UserID:   userID,
		FriendID: friendID,
	}
	if err := s.FriendshipDAO.Create(ctx, friendship); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errs.Errorf(errs.ECONFLICT, "已经关注过该用户")
		}
		return 0, err
	}
	return friendship.ID, nil
}
