package server

import (
	"Weave/handler"
)

type Handlers struct {
	User    *handler.UserHandler
	Follow  *handler.FollowHandler
	Topic   *handler.TopicHandler
	Post    *handler.PostHandler
	Like    *handler.LikeHandler
	Comment *handler.CommentHandler
	Query   *handler.QueryHandler
}
