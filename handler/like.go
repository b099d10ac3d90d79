package handler

import (
	"net/http"

	"Weave/pkg/context"
	"Weave/pkg/response"
	"Weave/service"
	"Weave/types"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	LikeService service.ILikeService
}

func (h *LikeHandler) RegisterRouter(r gin.IRouter) {
	r.POST("/v1/likes", context.Wrap(h.CreateLike))
}

func (h *LikeHandler) CreateLike(c *gin.Context) error {
	var req types.CreateLikeRequest
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

	likeID, err := h.LikeService.CreateLike(c.Request.Context(), userID, postID)
	if err != nil {
		return response.FromErr(err)
	}

	response.Success(c, types.CreatedResponse{ID: likeID})
	return nil
}
