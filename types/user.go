package types

import "time"

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
}

type UserResponse struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	DateJoined time.Time `json:"date_joined"`
	LastActive time.Time `json:"last_active"`
}

// CreateFriendshipRequest ID 统一用字符串传入，边界处解析一次
type CreateFriendshipRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	FriendID string `json:"friend_id" binding:"required"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}
