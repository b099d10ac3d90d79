//go:build wireinject
// +build wireinject

package main

import (
	"Weave/config"
	"Weave/dao"
	"Weave/dao/cache"
	"Weave/handler"
	"Weave/pkg/client"
	"Weave/pkg/database"
	"Weave/pkg/server"
	"Weave/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.UserHandler), "*"),
		wire.Struct(new(handler.FollowHandler), "*"),
		wire.Struct(new(handler.TopicHandler), "*"),
		wire.Struct(new(handler.PostHandler), "*"),
		wire.Struct(new(handler.LikeHandler), "*"),
		wire.Struct(new(handler.CommentHandler), "*"),
		wire.Struct(new(handler.QueryHandler), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
