package handler

import (
	"net/http"

	"Weave/pkg/context"
	"Weave/pkg/response"
	"Weave/service"
	"Weave/types"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	UserService service.IUserService
}

func (h *UserHandler) RegisterRouter(r gin.IRouter) {
	users := r.Group("/v1/users")
	users.POST("", context.Wrap(h.CreateUser))
	users.GET("/:userID", context.Wrap(h.GetUser))
}

func (h *UserHandler) CreateUser(c *gin.Context) error {
	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := h.UserService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		return response.FromErr(err)
	}

	response.Success(c, types.CreatedResponse{ID: userID})
	return nil
}

func (h *UserHandler) GetUser(c *gin.Context) error {
	userID, err := parseID(c.Param("userID"), "用户ID")
	if err != nil {
		return err
	}

	user, err := h.UserService.GetUser(c.Request.Context(), userID)
	if err != nil {
		return response.FromErr(err)
	}

	response.Success(c, user)
	return nil
}
