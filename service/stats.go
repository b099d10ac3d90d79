package service

import (
	"context"

	"Weave/dao"
	"Weave/dao/cache"
	"Weave/pkg/log"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IStatsService = (*StatsService)(nil)

// IStatsService 冗余计数的唯一写入口。
// like_count / comment_count / post_count 只有这里能改，
// 写路径在创建子记录的事务里调 On* 钩子，增量和子记录一起提交。
type IStatsService interface {
	OnPostCreated(ctx context.Context, tx *gorm.DB, topicID int64) error
	OnLikeCreated(ctx context.Context, tx *gorm.DB, postID int64) error
	OnCommentCreated(ctx context.Context, tx *gorm.DB, postID int64) error

	// BumpTopicRank 同步 Redis 热度榜镜像，提交之后调用，失败只记日志
	BumpTopicRank(ctx context.Context, topicID int64)

	// Recompute* 对账钩子：按子表重算覆盖，只用于漂移修复，不上热路径
	RecomputePostCounters(ctx context.Context, postID int64) error
	RecomputeTopicPostCount(ctx context.Context, topicID int64) error
}

type StatsService struct {
	PostDAO  *dao.PostDAO
	TopicDAO *dao.TopicDAO
	Rank     *cache.TopicRankStorage
}

// OnPostCreated 话题帖子数 +1
// 自增是针对单条父记录的单语句原子操作，并发提交互不丢失，
// 所以这里不需要任何跨记录的锁
func (s *StatsService) OnPostCreated(ctx context.Context, tx *gorm.DB, topicID int64) error {
	return s.TopicDAO.IncrPostCount(ctx, tx, topicID)
}

// OnLikeCreated 帖子点赞数 +1
func (s *StatsService) OnLikeCreated(ctx context.Context, tx *gorm.DB, postID int64) error {
	return s.PostDAO.IncrLikeCount(ctx, tx, postID)
}

// OnCommentCreated 帖子评论数 +1
func (s *StatsService) OnCommentCreated(ctx context.Context, tx *gorm.DB, postID int64) error {
	return s.PostDAO.IncrCommentCount(ctx, tx, postID)
}

func (s *StatsService) BumpTopicRank(ctx context.Context, topicID int64) {
	// 镜像未配置时直接跳过
	if s.Rank == nil {
		return
	}
	if err := s.Rank.Incr(ctx, topicID); err != nil {
		// 镜像落后无所谓，读路径会回退数据库
		log.L.Warn("bump topic rank failed", zap.Int64("topicID", topicID), zap.Error(err))
	}
}

func (s *StatsService) RecomputePostCounters(ctx context.Context, postID int64) error {
	if err := s.PostDAO.RecomputeLikeCount(ctx, postID); err != nil {
		return err
	}
	return s.PostDAO.RecomputeCommentCount(ctx, postID)
}

func (s *StatsService) RecomputeTopicPostCount(ctx context.Context, topicID int64) error {
	if err := s.TopicDAO.RecomputePostCount(ctx, topicID); err != nil {
		return err
	}

	// 重算后把镜像也对齐
	if s.Rank == nil {
		return nil
	}
	topic, err := s.TopicDAO.GetByID(ctx, topicID)
	if err != nil || topic == nil {
		return err
	}
	if err := s.Rank.Set(ctx, topicID, topic.PostCount); err != nil {
		log.L.Warn("sync topic rank failed", zap.Int64("topicID", topicID), zap.Error(err))
	}
	return nil
}
