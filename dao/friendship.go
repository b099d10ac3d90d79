package dao

import (
	"context"

	"Weave/models"

	"gorm.io/gorm"
)

type FriendshipDAO struct {
	Repo[models.Friendship]
}

func NewFriendshipDAO(db *gorm.DB) *FriendshipDAO {
	return &FriendshipDAO{Repo: NewRepo[models.Friendship](db)}
}

// IsFollowing 检查是否已关注
func (d *FriendshipDAO) IsFollowing(ctx context.Context, userID, friendID int64) (bool, error) {
	return d.Repo.IsExist(ctx, "user_id = ? AND friend_id = ?", userID, friendID)
}

// GetFriendIDs 取某用户关注的全部用户 ID（好友动态查询的 fan-out 第一步）
func (d *FriendshipDAO) GetFriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	var friendIDs []int64
	err := d.Db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("user_id = ?", userID).
		Pluck("friend_id", &friendIDs).Error
	return friendIDs, err
}
