package types

type CreateTopicRequest struct {
	Name string `json:"name" binding:"required"`
}

type TopicResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	PostCount int64  `json:"post_count"`
}
