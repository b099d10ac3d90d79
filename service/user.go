package service

import (
	"context"
	"errors"

	"Weave/dao"
	"Weave/models"
	"Weave/pkg/errs"
	"Weave/pkg/snowflake"
	"Weave/types"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	CreateUser(ctx context.Context, req *types.CreateUserRequest) (int64, error)
	GetUser(ctx context.Context, userID int64) (*types.UserResponse, error)
}

type UserService struct {
	UserDAO *dao.UserDAO
}

func (s *UserService) CreateUser(ctx context.Context, req *types.CreateUserRequest) (int64, error) {
	if req.Username == "" {
		return 0, errs.Errorf(errs.EINVALID, "用户名不能为空")
	}

	// 先查一次给出友好错误，真正的唯一性由 uk_users_username 兜底
	exist, err := s.UserDAO.IsUsernameExist(ctx, req.Username)
	if err != nil {
		return 0, err
	}
	if exist {
		return 0, errs.Errorf(errs.ECONFLICT, "用户名 %s 已存在", req.Username)
	}

	user := &models.User{
		ID:       snowflake.GenID(),
		Username: req.Username,
		Email:    req.Email,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errs.Errorf(errs.ECONFLICT, "用户名 %s 已存在", req.Username)
		}
		return 0, err
	}
	return user.ID, nil
}

func (s *UserService) GetUser(ctx context.Context, userID int64) (*types.UserResponse, error) {
	user, err := s.UserDAO.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.Errorf(errs.ENOTFOUND, "用户不存在")
	}
	return &types.UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		DateJoined: user.DateJoined,
		LastActive: user.LastActive,
	}, nil
}
