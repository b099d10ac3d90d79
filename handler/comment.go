package handler

import (
	"net/http"

	"Weave/pkg/context"
	"Weave/pkg/response"
	"Weave/service"
	"Weave/types"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	CommentService service.ICommentService
}

func (h *CommentHandler) RegisterRouter(r gin.IRouter) {
	r.POST("/v1/comments", context.Wrap(h.CreateComment))
}

func (h *CommentHandler) CreateComment(c *gin.Context) error {
	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := parseID(req.UserID, "用户ID")
	if err != nil {
		return err
	}
	postID, err := parseID(req.PostID, "帖子ID")
	if err != nil {
		return err
	}

	commentID, err := h.CommentService.CreateComment(c.Request.Context(), userID, postID, req.Content)
	if err != nil {
		return response.FromErr(err)
	}

	response.Success(c, types.CreatedResponse{ID: commentID})
	return nil
}
