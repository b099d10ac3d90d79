package service

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"Weave/dao/cache"
	"Weave/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// 读路径的时间序帖子统一从这里造，时间都取整秒，避免 MySQL 秒级精度干扰排序断言
func tAgo(d time.Duration) time.Time {
	return time.Now().Add(-d).Truncate(time.Second)
}

func TestAllPostsByUser_OrderAndExactMatch(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	author := e.mustCreateUser(t, "author")
	other := e.mustCreateUser(t, "other")
	topic := e.mustCreateTopic(t, "feed")

	oldest := e.seedPost(t, author, topic, "oldest", tAgo(3*time.Hour), 0, 0)
	newest := e.seedPost(t, author, topic, "newest", tAgo(1*time.Hour), 0, 0)
	middle := e.seedPost(t, author, topic, "middle", tAgo(2*time.Hour), 0, 0)
	e.seedPost(t, other, topic, "not mine", tAgo(1*time.Hour), 0, 0)

	posts, err := e.query.AllPostsByUser(ctx, author, 0)
	if err != nil {
		t.Fatal(err)
	}

	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	wantOrder := []int64{newest, middle, oldest}
	for i, want := range wantOrder {
		if posts[i].ID != want {
			t.Fatalf("position %d: expected %d, got %d", i, want, posts[i].ID)
		}
	}
	// 时间序严格不增
	for i := 1; i < len(posts); i++ {
		if posts[i].CreatedAt.After(posts[i-1].CreatedAt) {
			t.Fatal("posts not in descending created_at order")
		}
	}
}

func TestTopKLikedPostsByUser(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	author := e.mustCreateUser(t, "author")
	topic := e.mustCreateTopic(t, "rank")

	e.seedPost(t, author, topic, "one like", tAgo(4*time.Hour), 1, 0)
	top := e.seedPost(t, author, topic, "five likes", tAgo(3*time.Hour), 5, 0)
	tieNew := e.seedPost(t, author, topic, "tie newer", tAgo(1*time.Hour), 3, 0)
	e.seedPost(t, author, topic, "tie older", tAgo(2*time.Hour), 3, 0)

	// k 必须为正
	if _, err := e.query.TopKLikedPostsByUser(ctx, author, 0); errs.ErrorCode(err) != errs.EINVALID {
		t.Fatalf("expected EINVALID for k=0, got %v", err)
	}

	posts, err := e.query.TopKLikedPostsByUser(ctx, author, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	// 前缀性质：必须是全序的前两名；同计数按时间倒序破平
	if posts[0].ID != top || posts[1].ID != tieNew {
		t.Fatalf("unexpected top-2: [%d %d]", posts[0].ID, posts[1].ID)
	}

	// 同一数据上重复调用结果稳定
	again, err := e.query.TopKLikedPostsByUser(ctx, author, 2)
	if err != nil {
		t.Fatal(err)
	}
	if again[0].ID != posts[0].ID || again[1].ID != posts[1].ID {
		t.Fatal("top-k not stable across repeated calls")
	}
}

func TestTopKCommentedPostsByUser(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	author := e.mustCreateUser(t, "author")
	topic := e.mustCreateTopic(t, "rank")

	most := e.seedPost(t, author, topic, "most commented", tAgo(2*time.Hour), 0, 7)
	e.seedPost(t, author, topic, "least commented", tAgo(1*time.Hour), 0, 2)

	posts, err := e.query.TopKCommentedPostsByUser(ctx, author, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 || posts[0].ID != most {
		t.Fatalf("unexpected top-1 by comments: %+v", posts)
	}
}

func TestAllCommentsByUser_Enrichment(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	author := e.mustCreateUser(t, "author")
	commenter := e.mustCreateUser(t, "commenter")
	topic := e.mustCreateTopic(t, "chat")

	longContent := strings.Repeat("a", 120)
	shortContent := "short enough"
	longPost := e.seedPost(t, author, topic, longContent, tAgo(2*time.Hour), 0, 0)
	shortPost := e.seedPost(t, author, topic, shortContent, tAgo(2*time.Hour), 0, 0)

	e.seedComment(t, commenter, longPost, "comment on long", tAgo(30*time.Minute))
	e.seedComment(t, commenter, shortPost, "comment on short", tAgo(10*time.Minute))

	comments, err := e.query.AllCommentsByUser(ctx, commenter, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}

	// 时间倒序：短帖评论在前
	if comments[0].PostID != shortPost || comments[1].PostID != longPost {
		t.Fatal("comments not in descending created_at order")
	}

	// 长帖摘要截断补省略号，短帖原样
	if comments[1].PostExcerpt != strings.Repeat("a", 50)+"..." {
		t.Fatalf("unexpected excerpt: %q", comments[1].PostExcerpt)
	}
	if comments[0].PostExcerpt != shortContent {
		t.Fatalf("unexpected excerpt: %q", comments[0].PostExcerpt)
	}

	// 父帖作者 ID 回填
	for _, comment := range comments {
		if comment.PostAuthorID == nil || *comment.PostAuthorID != author {
			t.Fatalf("post author not resolved: %+v", comment)
		}
	}
}

// 父帖没了不算错误，冗余字段整体缺省
func TestAllCommentsByUser_MissingPost(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	commenter := e.mustCreateUser(t, "commenter")
	e.seedComment(t, commenter, -404, "orphan comment", tAgo(time.Minute))

	comments, err := e.query.AllCommentsByUser(ctx, commenter, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
	if comments[0].PostAuthorID != nil || comments[0].PostExcerpt != "" {
		t.Fatalf("expected omitted enrichment fields, got %+v", comments[0])
	}
}

func TestAllPostsOnTopic_UsernameEnrichment(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	author := e.mustCreateUser(t, "author")
	topic := e.mustCreateTopic(t, "go")
	otherTopic := e.mustCreateTopic(t, "rust")

	e.seedPost(t, author, topic, "on topic", tAgo(time.Hour), 0, 0)
	e.seedPost(t, author, otherTopic, "off topic", tAgo(time.Hour), 0, 0)

	posts, err := e.query.AllPostsOnTopic(ctx, topic, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].Username == "" {
		t.Fatal("username not resolved")
	}
}

func TestTopKPopularTopics_DBFallback(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	author := e.mustCreateUser(t, "author")
	big := e.mustCreateTopic(t, "big")
	small := e.mustCreateTopic(t, "small")

	for i := 0; i < 3; i++ {
		e.mustCreatePost(t, author, big, "post")
	}
	e.mustCreatePost(t, author, small, "post")

	// 测试环境没配 Redis，走数据库回退
	topics, err := e.query.TopKPopularTopics(ctx, 1000)
	if err != nil {
		t.Fatal(err)
	}

	var bigRank, smallRank = -1, -1
	for i, topic := range topics {
		switch topic.ID {
		case big:
			bigRank = i
		case small:
			smallRank = i
		}
	}
	if bigRank == -1 || smallRank == -1 {
		t.Fatal("created topics missing from ranking")
	}
	if bigRank > smallRank {
		t.Fatalf("expected big topic ranked above small: big=%d small=%d", bigRank, smallRank)
	}

	if _, err := e.query.TopKPopularTopics(ctx, -1); errs.ErrorCode(err) != errs.EINVALID {
		t.Fatalf("expected EINVALID, got %v", err)
	}
}

// 镜像只会收录发过帖的话题，k 超出镜像可用条目数时必须回库补全，
// 零计数话题也得出现在榜单里
func TestTopKPopularTopics_ShortMirrorFallsBack(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	addr := os.Getenv("WEAVE_TEST_REDIS")
	if addr == "" {
		t.Skip("WEAVE_TEST_REDIS 未设置，跳过 Redis 集成测试")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("connect test redis: %v", err)
	}
	e.query.Rank = cache.NewTopicRankStorage(client)

	author := e.mustCreateUser(t, "author")
	posted := e.mustCreateTopic(t, "posted")
	silent := e.mustCreateTopic(t, "silent")
	e.mustCreatePost(t, author, posted, "post")

	// 镜像里只有发过帖的话题
	if err := e.query.Rank.Incr(ctx, posted); err != nil {
		t.Fatal(err)
	}

	topics, err := e.query.TopKPopularTopics(ctx, 1<<20)
	if err != nil {
		t.Fatal(err)
	}

	var postedRank, silentRank = -1, -1
	for i, topic := range topics {
		switch topic.ID {
		case posted:
			postedRank = i
		case silent:
			silentRank = i
		}
	}
	if silentRank == -1 {
		t.Fatal("zero-count topic missing from ranking")
	}
	if postedRank == -1 || postedRank > silentRank {
		t.Fatalf("expected posted topic ranked above silent: posted=%d silent=%d", postedRank, silentRank)
	}
}

// 规格场景：A 关注 B、C 不关注 D；B 1 小时前发帖，C 30 小时前发帖，
// D 1 小时前发帖 —— 结果只含 B 的帖子
func TestFriendRecentPosts(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	a := e.mustCreateUser(t, "a")
	b := e.mustCreateUser(t, "b")
	c := e.mustCreateUser(t, "c")
	d := e.mustCreateUser(t, "d")
	topic := e.mustCreateTopic(t, "daily")

	if _, err := e.follows.CreateFriendship(ctx, a, b); err != nil {
		t.Fatal(err)
	}
	if _, err := e.follows.CreateFriendship(ctx, a, c); err != nil {
		t.Fatal(err)
	}

	bPost := e.seedPost(t, b, topic, "fresh from b", tAgo(time.Hour), 0, 0)
	e.seedPost(t, c, topic, "stale from c", tAgo(30*time.Hour), 0, 0)
	e.seedPost(t, d, topic, "fresh but unfollowed", tAgo(time.Hour), 0, 0)

	feed, err := e.query.FriendRecentPosts(ctx, a)
	if err != nil {
		t.Fatal(err)
	}
	if len(feed) != 1 || feed[0].ID != bPost {
		t.Fatalf("expected exactly b's post, got %+v", feed)
	}

	// 用户名和话题名都要解析出来
	if feed[0].Username == "" || feed[0].TopicName == "" {
		t.Fatalf("enrichment missing: %+v", feed[0])
	}
}

// 未知身份从读侧不可区分"没有数据"，一律返回空序列
func TestQueries_UnknownIdentity(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	const ghost = int64(-99999)

	posts, err := e.query.AllPostsByUser(ctx, ghost, 0)
	if err != nil || len(posts) != 0 {
		t.Fatalf("expected empty posts, got %v %v", posts, err)
	}

	comments, err := e.query.AllCommentsByUser(ctx, ghost, 0)
	if err != nil || len(comments) != 0 {
		t.Fatalf("expected empty comments, got %v %v", comments, err)
	}

	feed, err := e.query.FriendRecentPosts(ctx, ghost)
	if err != nil || len(feed) != 0 {
		t.Fatalf("expected empty feed, got %v %v", feed, err)
	}

	topicPosts, err := e.query.AllPostsOnTopic(ctx, ghost, 0)
	if err != nil || len(topicPosts) != 0 {
		t.Fatalf("expected empty topic posts, got %v %v", topicPosts, err)
	}
}
