package service

import (
	"context"
	"time"

	"Weave/dao"
	"Weave/dao/cache"
	"Weave/models"
	"Weave/pkg/errs"
	"Weave/pkg/log"
	"Weave/types"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// 好友动态时间窗口
const feedWindow = 24 * time.Hour

var _ IQueryService = (*QueryService)(nil)

// IQueryService 固定的七种读模式，全部只读、无状态。
// 未知的 userID / topicID 一律返回空序列，不报错：
// 读侧分不清"这个人没发过帖"和"这个人不存在"。
type IQueryService interface {
	AllPostsByUser(ctx context.Context, userID int64, limit int) ([]*types.PostResponse, error)
	TopKLikedPostsByUser(ctx context.Context, userID int64, k int) ([]*types.PostResponse, error)
	TopKCommentedPostsByUser(ctx context.Context, userID int64, k int) ([]*types.PostResponse, error)
	AllCommentsByUser(ctx context.Context, userID int64, limit int) ([]*types.CommentWithPost, error)
	AllPostsOnTopic(ctx context.Context, topicID int64, limit int) ([]*types.TopicPost, error)
	TopKPopularTopics(ctx context.Context, k int) ([]*types.TopicResponse, error)
	FriendRecentPosts(ctx context.Context, userID int64) ([]*types.FeedPost, error)
}

type QueryService struct {
	PostDAO       *dao.PostDAO
	CommentDAO    *dao.CommentDAO
	TopicDAO      *dao.TopicDAO
	FriendshipDAO *dao.FriendshipDAO
	Rank          *cache.TopicRankStorage
	Enrich        IEnrichService
}

func (s *QueryService) AllPostsByUser(ctx context.Context, userID int64, limit int) ([]*types.PostResponse, error) {
	posts, err := s.PostDAO.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	return toPostResponses(posts), nil
}

func (s *QueryService) TopKLikedPostsByUser(ctx context.Context, userID int64, k int) ([]*types.PostResponse, error) {
	if k <= 0 {
		return nil, errs.Errorf(errs.EINVALID, "k 必须为正整数")
	}
	posts, err := s.PostDAO.TopKByLikeCount(ctx, userID, k)
	if err != nil {
		return nil, err
	}
	return toPostResponses(posts), nil
}

func (s *QueryService) TopKCommentedPostsByUser(ctx context.Context, userID int64, k int) ([]*types.PostResponse, error) {
	if k <= 0 {
		return nil, errs.Errorf(errs.EINVALID, "k 必须为正整数")
	}
	posts, err := s.PostDAO.TopKByCommentCount(ctx, userID, k)
	if err != nil {
		return nil, err
	}
	return toPostResponses(posts), nil
}

// AllCommentsByUser 用户评论列表，父帖作者和摘要按整页去重后一次批量解析，
// 解析不到的父帖冗余字段缺省（帖子没了不算错误）
func (s *QueryService) AllCommentsByUser(ctx context.Context, userID int64, limit int) ([]*types.CommentWithPost, error) {
	comments, err := s.CommentDAO.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return []*types.CommentWithPost{}, nil
	}

	postIDs := make([]int64, 0, len(comments))
	for _, comment := range comments {
		postIDs = append(postIDs, comment.PostID)
	}
	excerpts, err := s.Enrich.ResolvePostExcerpts(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*types.CommentWithPost, 0, len(comments))
	for _, comment := range comments {
		item := &types.CommentWithPost{
			ID:        comment.ID,
			PostID:    comment.PostID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}
		if excerpt, ok := excerpts[comment.PostID]; ok {
			authorID := excerpt.AuthorID
			item.PostAuthorID = &authorID
			item.PostExcerpt = excerpt.Excerpt
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *QueryService) AllPostsOnTopic(ctx context.Context, topicID int64, limit int) ([]*types.TopicPost, error) {
	posts, err := s.PostDAO.ListByTopic(ctx, topicID, limit)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return []*types.TopicPost{}, nil
	}

	userIDs := make([]int64, 0, len(posts))
	for _, post := range posts {
		userIDs = append(userIDs, post.UserID)
	}
	usernames, err := s.Enrich.ResolveUsernames(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*types.TopicPost, 0, len(posts))
	for _, post := range posts {
		result = append(result, &types.TopicPost{
			PostResponse: *toPostResponse(post),
			Username:     usernames[post.UserID],
		})
	}
	return result, nil
}

// TopKPopularTopics 优先读 Redis 热度榜镜像，镜像不可用或可用条目
// 不足 k 时回退 idx_topics_post_count，数据库计数是权威值。
// 零计数话题只在库里有，镜像条目够不够 k 必须判过才能用。
func (s *QueryService) TopKPopularTopics(ctx context.Context, k int) ([]*types.TopicResponse, error) {
	if k <= 0 {
		return nil, errs.Errorf(errs.EINVALID, "k 必须为正整数")
	}

	var scores []cache.TopicScore
	if s.Rank != nil {
		var err error
		scores, err = s.Rank.TopK(ctx, k)
		if err != nil {
			log.L.Warn("topic rank cache unavailable", zap.Error(err))
			scores = nil
		}
	}
	if len(scores) < k {
		return s.topKTopicsFromDB(ctx, k)
	}

	topicIDs := make([]int64, 0, len(scores))
	for _, score := range scores {
		topicIDs = append(topicIDs, score.TopicID)
	}
	names, err := s.Enrich.ResolveTopicNames(ctx, topicIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*types.TopicResponse, 0, len(scores))
	for _, score := range scores {
		name, ok := names[score.TopicID]
		if !ok {
			// 镜像里有、库里没有的脏条目直接跳过
			continue
		}
		result = append(result, &types.TopicResponse{
			ID:        score.TopicID,
			Name:      name,
			PostCount: score.PostCount,
		})
	}
	if len(result) < k {
		// 剔除脏条目后不足 k，回库重取完整榜单
		return s.topKTopicsFromDB(ctx, k)
	}
	return result, nil
}

func (s *QueryService) topKTopicsFromDB(ctx context.Context, k int) ([]*types.TopicResponse, error) {
	topics, err := s.TopicDAO.TopKByPostCount(ctx, k)
	if err != nil {
		return nil, err
	}
	result := make([]*types.TopicResponse, 0, len(topics))
	for _, topic := range topics {
		result = append(result, &types.TopicResponse{
			ID:        topic.ID,
			Name:      topic.Name,
			PostCount: topic.PostCount,
		})
	}
	return result, nil
}

// FriendRecentPosts 两步 fan-out：先一次索引查询拿好友集合，
// 再把集合过滤 + 24h 窗口整体下推成一条语句；用户名和话题名并发批量解析
func (s *QueryService) FriendRecentPosts(ctx context.Context, userID int64) ([]*types.FeedPost, error) {
	friendIDs, err := s.FriendshipDAO.GetFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(friendIDs) == 0 {
		return []*types.FeedPost{}, nil
	}

	cutoff := time.Now().Add(-feedWindow)
	posts, err := s.PostDAO.ListRecentByAuthors(ctx, friendIDs, cutoff)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return []*types.FeedPost{}, nil
	}

	userIDs := make([]int64, 0, len(posts))
	topicIDs := make([]int64, 0, len(posts))
	for _, post := range posts {
		userIDs = append(userIDs, post.UserID)
		topicIDs = append(topicIDs, post.TopicID)
	}

	var (
		usernames  map[int64]string
		topicNames map[int64]string
		userErr    error
		topicErr   error
		wg         conc.WaitGroup
	)
	wg.Go(func() {
		usernames, userErr = s.Enrich.ResolveUsernames(ctx, userIDs)
	})
	wg.Go(func() {
		topicNames, topicErr = s.Enrich.ResolveTopicNames(ctx, topicIDs)
	})
	wg.Wait()

	if userErr != nil {
		return nil, userErr
	}
	if topicErr != nil {
		return nil, topicErr
	}

	result := make([]*types.FeedPost, 0, len(posts))
	for _, post := range posts {
		result = append(result, &types.FeedPost{
			PostResponse: *toPostResponse(post),
			Username:     usernames[post.UserID],
			TopicName:    topicNames[post.TopicID],
		})
	}
	return result, nil
}

func toPostResponse(post *models.Post) *types.PostResponse {
	return &types.PostResponse{
		ID:           post.ID,
		UserID:       post.UserID,
		Content:      post.Content,
		TopicID:      post.TopicID,
		LikeCount:    post.LikeCount,
		CommentCount: post.CommentCount,
		CreatedAt:    post.CreatedAt,
	}
}

func toPostResponses(posts []*models.Post) []*types.PostResponse {
	result := make([]*types.PostResponse, 0, len(posts))
	for _, post := range posts {
		result = append(result, toPostResponse(post))
	}
	return result
}
