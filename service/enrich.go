package service

import (
	"context"

	"Weave/dao"
	"Weave/types"
)

const excerptLimit = 50

var _ IEnrichService = (*EnrichService)(nil)

// IEnrichService 批量解析展示字段。
// 每次查询每种外键只允许调用一次，入参是结果页里出现过的 ID 集合，
// 解析不到的 ID 直接从返回 map 里缺省，调用方按缺省处理。
type IEnrichService interface {
	ResolveUsernames(ctx context.Context, userIDs []int64) (map[int64]string, error)
	ResolveTopicNames(ctx context.Context, topicIDs []int64) (map[int64]string, error)
	ResolvePostExcerpts(ctx context.Context, postIDs []int64) (map[int64]types.PostExcerpt, error)
}

type EnrichService struct {
	UserDAO  *dao.UserDAO
	TopicDAO *dao.TopicDAO
	PostDAO  *dao.PostDAO
}

func (s *EnrichService) ResolveUsernames(ctx context.Context, userIDs []int64) (map[int64]string, error) {
	users, err := s.UserDAO.BatchGetByIDs(ctx, dedupIDs(userIDs))
	if err != nil {
		return nil, err
	}
	result := make(map[int64]string, len(users))
	for _, user := range users {
		result[user.ID] = user.Username
	}
	return result, nil
}

func (s *EnrichService) ResolveTopicNames(ctx context.Context, topicIDs []int64) (map[int64]string, error) {
	topics, err := s.TopicDAO.BatchGetByIDs(ctx, dedupIDs(topicIDs))
	if err != nil {
		return nil, err
	}
	result := make(map[int64]string, len(topics))
	for _, topic := range topics {
		result[topic.ID] = topic.Name
	}
	return result, nil
}

func (s *EnrichService) ResolvePostExcerpts(ctx context.Context, postIDs []int64) (map[int64]types.PostExcerpt, error) {
	posts, err := s.PostDAO.BatchGetByIDs(ctx, dedupIDs(postIDs))
	if err != nil {
		return nil, err
	}
	result := make(map[int64]types.PostExcerpt, len(posts))
	for _, post := range posts {
		result[post.ID] = types.PostExcerpt{
			AuthorID: post.UserID,
			Excerpt:  truncateExcerpt(post.Content),
		}
	}
	return result, nil
}

// truncateExcerpt 超过 50 个字符截断并补省略号，否则原样返回
func truncateExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLimit {
		return content
	}
	return string(runes[:excerptLimit]) + "..."
}

// dedupIDs 去重，保持首次出现顺序
func dedupIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
