package handler

import (
	"net/http"

	"Weave/pkg/context"
	"Weave/pkg/response"
	"Weave/service"
	"Weave/types"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	FollowService service.IFollowService
}

func (h *FollowHandler) RegisterRouter(r gin.IRouter) {
	r.POST("/v1/friendships", context.Wrap(h.CreateFriendship))
}

func (h *FollowHandler) CreateFriendship(c *gin.Context) error {
	var req types.CreateFriendshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := parseID(req.UserID, "用户ID")
	if err != nil {
		return err
	}
	friendID, err := parseID(req.FriendID, "被关注用户ID")
	if err != nil {
		return err
	}

	friendshipID, err := h.FollowService.CreateFriendship(c.Request.Context(), userID, friendID)
	if err != nil {
		return response.FromErr(err)
	}

	response.Success(c, types.CreatedResponse{ID: friendshipID})
	return nil
}
