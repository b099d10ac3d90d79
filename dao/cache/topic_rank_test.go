package cache

import (
	"context"
	"os"
	"testing"

	"Weave/pkg/snowflake"

	"github.com/redis/go-redis/v9"
)

// 依赖真实 Redis，未配置 WEAVE_TEST_REDIS 时跳过，
// 例如 WEAVE_TEST_REDIS="127.0.0.1:6379"
func testRank(t *testing.T) *TopicRankStorage {
	t.Helper()

	addr := os.Getenv("WEAVE_TEST_REDIS")
	if addr == "" {
		t.Skip("WEAVE_TEST_REDIS 未设置，跳过 Redis 集成测试")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("connect test redis: %v", err)
	}
	return NewTopicRankStorage(client)
}

func TestTopicRank_IncrAndTopK(t *testing.T) {
	rank := testRank(t)
	ctx := context.Background()

	hot := snowflake.GenID()
	cold := snowflake.GenID()

	for i := 0; i < 3; i++ {
		if err := rank.Incr(ctx, hot); err != nil {
			t.Fatal(err)
		}
	}
	if err := rank.Incr(ctx, cold); err != nil {
		t.Fatal(err)
	}

	scores, err := rank.TopK(ctx, 1<<20)
	if err != nil {
		t.Fatal(err)
	}

	byID := make(map[int64]int64, len(scores))
	for _, score := range scores {
		byID[score.TopicID] = score.PostCount
	}
	if byID[hot] != 3 || byID[cold] != 1 {
		t.Fatalf("unexpected scores: hot=%d cold=%d", byID[hot], byID[cold])
	}

	// 榜单按分数倒序
	for i := 1; i < len(scores); i++ {
		if scores[i].PostCount > scores[i-1].PostCount {
			t.Fatal("scores not in descending order")
		}
	}
}

func TestTopicRank_Set(t *testing.T) {
	rank := testRank(t)
	ctx := context.Background()

	topicID := snowflake.GenID()
	if err := rank.Set(ctx, topicID, 42); err != nil {
		t.Fatal(err)
	}

	scores, err := rank.TopK(ctx, 1<<20)
	if err != nil {
		t.Fatal(err)
	}
	for _, score := range scores {
		if score.TopicID == topicID {
			if score.PostCount != 42 {
				t.Fatalf("expected 42, got %d", score.PostCount)
			}
			return
		}
	}
	t.Fatal("topic missing from rank")
}
