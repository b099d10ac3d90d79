package dao

import (
	"context"

	"Weave/models"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

// FindByUsername 用户名查询
func (d *UserDAO) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return d.Repo.FindByWhere(ctx, "username = ?", username)
}

// IsUsernameExist 判断用户名是否已被占用
func (d *UserDAO) IsUsernameExist(ctx context.Context, username string) (bool, error) {
	return d.Repo.IsExist(ctx, "username = ?", username)
}

func (d *UserDAO) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	return d.Repo.FindByWhere(ctx, "id = ?", userID)
}

// BatchGetByIDs 批量查用户，一次 IN 查询，调用方自己建 map
func (d *UserDAO) BatchGetByIDs(ctx context.Context, userIDs []int64) ([]*models.User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var users []*models.User
	err := d.Db.WithContext(ctx).Where("id IN ?", userIDs).Find(&users).Error
	return users, err
}
