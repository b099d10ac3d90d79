package handler

import (
	"Weave/pkg/context"
	"Weave/pkg/response"
	"Weave/service"

	"github.com/gin-gonic/gin"
)

// QueryHandler 七种固定读模式的路由
type QueryHandler struct {
	QueryService service.IQueryService
}

func (h *QueryHandler) RegisterRouter(r gin.IRouter) {
	users := r.Group("/v1/users")
	users.GET("/:userID/posts", context.Wrap(h.AllPostsByUser))
	users.GET("/:userID/posts/top-liked", context.Wrap(h.TopKLikedPostsByUser))
	users.GET("/:userID/posts/top-commented", context.Wrap(h.TopKCommentedPostsByUser))
	users.GET("/:userID/comments", context.Wrap(h.AllCommentsByUser))
	users.GET("/:userID/feed", context.Wrap(h.FriendRecentPosts))

	topics := r.Group("/v1/topics")
	topics.GET("/top", context.Wrap(h.TopKPopularTopics))
	topics.GET("/:topicID/posts", context.Wrap(h.AllPostsOnTopic))
}

func (h *QueryHandler) AllPostsByUser(c *gin.Context) error {
	userID, err := parseID(c.Param("userID"), "用户ID")
	if err != nil {
		return err
	}

	posts, err := h.QueryService.AllPostsByUser(c.Request.Context(), userID, parseLimit(c.Query("limit")))
	if err != nil {
		return response.FromErr(err)
	}

	response.Success(c, posts)
	return nil
}

func (h *QueryHandler) TopKLikedPostsByUser(c *gin.Context) error {
	userID, err := parseID(c.Param("userID"), "用户ID")
	if err != nil {
		return err
	}
	k, err := parseK(c.DefaultQuery("k", "10"))
	if err != nil {
		return err
	}

	posts, err := h.QueryService.TopKLikedPostsByUser(c.Request.Context(), userID, k)
	if err != nil {
		return response.FromErr(err)
	}

	response.Success(c, posts)
	return nil
}

func (h *QueryHandler) TopKCommentedPostsByUser(c *gin.Context) error {
	userID, err := parseID(c.Param("userID"), "用户ID")
	if err != nil {
		return err
	}
	k, err := parseK(c.DefaultQuery("k", "10"))
	if err != nil {
		return err
	}

	posts, err := h.QueryService.TopKCommentedPostsByUser(c.Request.Context(), userID, k)
	if err != nil {
		return response.FromErr(err)
	}

	response.Success(c, posts)
	return nil
}

func (h *QueryHandler) AllCommentsByUser(c *gin.Context) error {
	userID, err := parseID(c.Param("userID"), "用户ID")
	if err != nil {
		return err
	}

	comments, err := h.QueryService.AllCommentsByUser(c.Request.Context(), userID, parseLimit(c.Query("limit")))
	if err != nil {
		return response.FromErr(err)
	}

	response.Success(c, comments)
	return nil
}

func (h *QueryHandler) AllPostsOnTopic(c *gin.Context) error {
	topicID, err := parseID(c.Param("topicID"), "话题ID")
	if err != nil {
		return err
	}

	posts, err := h.QueryService.AllPostsOnTopic(c.Request.Context(), topicID, parseLimit(c.Query("limit")))
	if err != nil {
		return response.FromErr(err)
	}

	response.Success(c, posts)
	return nil
}

func (h *QueryHandler) TopKPopularTopics(c *gin.Context) error {
	k, err := parseK(c.DefaultQuery("k", "10"))
	if err != nil {
		return err
	}

	topics, err := h.QueryService.TopKPopularTopics(c.Request.Context(), k)
	if err != nil {
		return response.FromErr(err)
	}

	response.Success(c, topics)
	return nil
}

func (h *QueryHandler) FriendRecentPosts(c *gin.Context) error {
	userID, err := parseID(c.Param("userID"), "用户ID")
	if err != nil {
		return err
	}

	posts, err := h.QueryService.FriendRecentPosts(c.Request.Context(), userID)
	if err != nil {
		return response.FromErr(err)
	}

	response.Success(c, posts)
	return nil
}
