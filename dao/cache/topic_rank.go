package cache

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// TopicRankStorage 话题热度榜，ZSET 镜像 topics.post_count。
// 只是展示加速，数据库里的计数才是权威值，镜像丢了可以随时重建。
type TopicRankStorage struct {
	redis *redis.Client
}

func NewTopicRankStorage(redis *redis.Client) *TopicRankStorage {
	return &TopicRankStorage{redis: redis}
}

func (c *TopicRankStorage) rankKey() string {
	return "topic:rank:post_count"
}

// Incr 发帖计数镜像 +1
func (c *TopicRankStorage) Incr(ctx context.Context, topicID int64) error {
	return c.redis.ZIncrBy(ctx, c.rankKey(), 1, strconv.FormatInt(topicID, 10)).Err()
}

// Set 覆盖某个话题的镜像值（对账重算后同步用）
func (c *TopicRankStorage) Set(ctx context.Context, topicID int64, postCount int64) error {
	return c.redis.ZAdd(ctx, c.rankKey(), redis.Z{
		Score:  float64(postCount),
		Member: strconv.FormatInt(topicID, 10),
	}).Err()
}

// TopicScore 榜单条目
type TopicScore struct {
	TopicID   int64
	PostCount int64
}

// TopK 按镜像计数取前 k，镜像为空时返回空切片，由调用方回退数据库
func (c *TopicRankStorage) TopK(ctx context.Context, k int) ([]TopicScore, error) {
	items, err := c.redis.ZRevRangeWithScores(ctx, c.rankKey(), 0, int64(k-1)).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]TopicScore, 0, len(items))
	for _, item := range items {
		member, ok := item.Member.(string)
		if !ok {
			continue
		}
		topicID, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		scores = append(scores, TopicScore{TopicID: topicID, PostCount: int64(item.Score)})
	}
	return scores, nil
}
