package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 生成全局唯一的实体 ID（用户/帖子/话题/点赞/评论/关注共用一套）
func GenID() int64 {
	return node.Generate().Int64()
}
