package dao

import (
	"context"

	"Weave/models"

	"gorm.io/gorm"
)

type TopicDAO struct {
	Repo[models.Topic]
}

func NewTopicDAO(db *gorm.DB) *TopicDAO {
	return &TopicDAO{Repo: NewRepo[models.Topic](db)}
}

// FindByName 根据名称精确查询话题
func (d *TopicDAO) FindByName(ctx context.Context, name string) (*models.Topic, error) {
	return d.Repo.FindByWhere(ctx, "name = ?", name)
}

func (d *TopicDAO) GetByID(ctx context.Context, topicID int64) (*models.Topic, error) {
	return d.Repo.FindByWhere(ctx, "id = ?", topicID)
}

// BatchGetByIDs 批量查话题
func (d *TopicDAO) BatchGetByIDs(ctx context.Context, topicIDs []int64) ([]*models.Topic, error) {
	if len(topicIDs) == 0 {
		return nil, nil
	}
	var topics []*models.Topic
	err := d.Db.WithContext(ctx).Where("id IN ?", topicIDs).Find(&topics).Error
	return topics, err
}

// TopKByPostCount 按帖子数取前 k 个话题，走 idx_topics_post_count
// 计数相同按创建时间倒序，保证重复调用结果稳定
func (d *TopicDAO) TopKByPostCount(ctx context.Context, k int) ([]*models.Topic, error) {
	var topics []*models.Topic
	err := d.Db.WithContext(ctx).
		Order("post_count DESC, created_at DESC").
		Limit(k).
		Find(&topics).Error
	return topics, err
}

// IncrPostCount 帖子计数 +1，单条 SQL 原子自增，绝不读改写
// tx 传入写路径所在事务，让子记录插入和计数自增一起提交
func (d *TopicDAO) IncrPostCount(ctx context.Context, tx *gorm.DB, topicID int64) error {
	if tx == nil {
		tx = d.Db
	}
	return tx.WithContext(ctx).Exec(
		"UPDATE topics SET post_count = post_count + 1 WHERE id = ?",
		topicID,
	).Error
}

// RecomputePostCount 对账钩子：按子表直接重算并覆盖，只用于修复，不在热路径上
func (d *TopicDAO) RecomputePostCount(ctx context.Context, topicID int64) error {
	return d.Db.WithContext(ctx).Exec(
		"UPDATE topics SET post_count = (SELECT COUNT(*) FROM posts WHERE topic_id = ?) WHERE id = ?",
		topicID, topicID,
	).Error
}
