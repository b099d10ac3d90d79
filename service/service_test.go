package service

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"Weave/dao"
	"Weave/models"
	"Weave/pkg/database"
	"Weave/pkg/snowflake"
	"Weave/types"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// 集成测试依赖真实 MySQL，未配置 WEAVE_TEST_DSN 时整体跳过，
// 例如 WEAVE_TEST_DSN="root:root@tcp(127.0.0.1:3306)/weave_test?charset=utf8mb4&parseTime=True&loc=Local"
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("WEAVE_TEST_DSN")
	if dsn == "" {
		t.Skip("WEAVE_TEST_DSN 未设置，跳过数据库集成测试")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// env 手工装配的一套服务，和 wire_gen 的装配保持一致；
// 测试不配 Redis，热度榜走数据库回退路径
type env struct {
	db *gorm.DB

	userDAO       *dao.UserDAO
	friendshipDAO *dao.FriendshipDAO
	topicDAO      *dao.TopicDAO
	postDAO       *dao.PostDAO
	likeDAO       *dao.LikeDAO
	commentDAO    *dao.CommentDAO

	stats   *StatsService
	users   *UserService
	follows *FollowService
	topics  *TopicService
	posts   *PostService
	likes   *LikeService
	comment *CommentService
	query   *QueryService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testDB(t)

	e := &env{db: db}
	e.userDAO = dao.NewUserDAO(db)
	e.friendshipDAO = dao.NewFriendshipDAO(db)
	e.topicDAO = dao.NewTopicDAO(db)
	e.postDAO = dao.NewPostDAO(db)
	e.likeDAO = dao.NewLikeDAO(db)
	e.commentDAO = dao.NewCommentDAO(db)

	e.stats = &StatsService{PostDAO: e.postDAO, TopicDAO: e.topicDAO}
	e.users = &UserService{UserDAO: e.userDAO}
	e.follows = &FollowService{UserDAO: e.userDAO, FriendshipDAO: e.friendshipDAO}
	e.topics = &TopicService{TopicDAO: e.topicDAO}
	e.posts = &PostService{DB: db, UserDAO: e.userDAO, TopicDAO: e.topicDAO, PostDAO: e.postDAO, Stats: e.stats}
	e.likes = &LikeService{DB: db, UserDAO: e.userDAO, PostDAO: e.postDAO, LikeDAO: e.likeDAO, Stats: e.stats}
	e.comment = &CommentService{DB: db, UserDAO: e.userDAO, PostDAO: e.postDAO, CommentDAO: e.commentDAO, Stats: e.stats}

	enrich := &EnrichService{UserDAO: e.userDAO, TopicDAO: e.topicDAO, PostDAO: e.postDAO}
	e.query = &QueryService{
		PostDAO:       e.postDAO,
		CommentDAO:    e.commentDAO,
		TopicDAO:      e.topicDAO,
		FriendshipDAO: e.friendshipDAO,
		Enrich:        enrich,
	}
	return e
}

// mustCreateUser 用户名带雪花后缀，避免测试间唯一索引冲突
func (e *env) mustCreateUser(t *testing.T, prefix string) int64 {
	t.Helper()
	username := fmt.Sprintf("%s_%d", prefix, snowflake.GenID())
	userID, err := e.users.CreateUser(context.Background(), &types.CreateUserRequest{
		Username: username,
		Email:    username + "@example.com",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return userID
}

func (e *env) mustCreateTopic(t *testing.T, prefix string) int64 {
	t.Helper()
	topicID, err := e.topics.CreateTopic(context.Background(), fmt.Sprintf("%s_%d", prefix, snowflake.GenID()))
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}
	return topicID
}

func (e *env) mustCreatePost(t *testing.T, userID, topicID int64, content string) int64 {
	t.Helper()
	postID, err := e.posts.CreatePost(context.Background(), userID, topicID, content)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	return postID
}

// seedPost 绕开写 API 直插帖子，指定时间和计数，只给读路径测试用
func (e *env) seedPost(t *testing.T, userID, topicID int64, content string, createdAt time.Time, likeCount, commentCount int64) int64 {
	t.Helper()
	post := &models.Post{
		ID:           snowflake.GenID(),
		UserID:       userID,
		TopicID:      topicID,
		Content:      content,
		LikeCount:    likeCount,
		CommentCount: commentCount,
		CreatedAt:    createdAt,
	}
	if err := e.postDAO.Create(context.Background(), post); err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return post.ID
}

func (e *env) seedComment(t *testing.T, userID, postID int64, content string, createdAt time.Time) int64 {
	t.Helper()
	comment := &models.Comment{
		ID:        snowflake.GenID(),
		UserID:    userID,
		PostID:    postID,
		Content:   content,
		CreatedAt: createdAt,
	}
	if err := e.commentDAO.Create(context.Background(), comment); err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	return comment.ID
}

func (e *env) getPost(t *testing.T, postID int64) *models.Post {
	t.Helper()
	post, err := e.postDAO.GetByID(context.Background(), postID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if post == nil {
		t.Fatalf("post %d not found", postID)
	}
	return post
}
