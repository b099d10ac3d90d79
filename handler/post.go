package handler

import (
	"net/http"

	"Weave/pkg/context"
	"Weave/pkg/response"
	"Weave/service"
	"Weave/types"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	PostService service.IPostService
}

func (h *PostHandler) RegisterRouter(r gin.IRouter) {
	r.POST("/v1/posts", context.Wrap(h.CreatePost))
}

func (h *PostHandler) CreatePost(c *gin.Context) error {
	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := parseID(req.UserID, "用户ID")
	if err != nil {
		return err
	}
	topicID, err := parseID(req.TopicID, "话题ID")
	if err != nil {
		return err
	}

	postID, err := h.PostService.CreatePost(c.Request.Context(), userID, topicID, req.Content)
	if err != nil {
		return response.FromErr(err)
	}

	response.Success(c, types.CreatedResponse{ID: postID})
	return nil
}
