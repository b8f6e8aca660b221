package domain

import (
	"time"
)

type ReplyCreationData struct {
	TopicId   TopicId
	Message   string
	Solution  bool
	AuthorId  UserId
	CreatedAt time.Time
}

type Reply struct {
	Id        ReplyId
	Message   string
	CreatedAt time.Time
	Solution  bool
	AuthorId  UserId
	TopicId   TopicId
}
