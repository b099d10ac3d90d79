package handler

import (
	"net/http"

	"Weave/pkg/context"
	"Weave/pkg/response"
	"Weave/service"
	"Weave/types"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	TopicService service.ITopicService
}

func (h *TopicHandler) RegisterRouter(r gin.IRouter) {
	r.POST("/v1/topics", context.Wrap(h.CreateTopic))
}

func (h *TopicHandler) CreateTopic(c *gin.Context) error {
	var req types.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	topicID, err := h.TopicService.CreateTopic(c.Request.Context(), req.Name)
	if err != nil {
		return response.FromErr(err)
	}

	response.Success(c, types.CreatedResponse{ID: topicID})
	return nil
}
