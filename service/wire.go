//go:build wireinject

package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(TopicService), "*"),
	wire.Bind(new(ITopicService), new(*TopicService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	wire.Struct(new(StatsService), "*"),
	wire.Bind(new(IStatsService), new(*StatsService)),

	wire.Struct(new(EnrichService), "*"),
	wire.Bind(new(IEnrichService), new(*EnrichService)),

	wire.Struct(new(QueryService), "*"),
	wire.Bind(new(IQueryService), new(*QueryService)),
)
