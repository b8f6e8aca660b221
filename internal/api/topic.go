package api

import (
	"time"
)

// Request DTOs

type CreateTopicRequest struct {
	Title      string `json:"title" validate:"required"`
	Message    string `json:"message" validate:"required"`
	CourseName string `json:"course_name" validate:"required"`
}

// Update deliberately skips required-field validation; empty values are
// rejected by the storage constraints and surfaced as a validation error.
type UpdateTopicRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Response DTOs

type CreateTopicResponse struct {
	Id int64 `json:"id"`
}

// TopicSummary is the flattened listing view: no reply data, cross-entity
// references collapsed to summaries.
type TopicSummary struct {
	Id      int64         `json:"id"`
	Title   string        `json:"title"`
	Message string        `json:"message"`
	Author  UserSummary   `json:"author"`
	Course  CourseSummary `json:"course"`
}

// AdminTopicSummary additionally exposes the soft-delete flag.
type AdminTopicSummary struct {
	TopicSummary
	Status bool `json:"status"`
}

// TopicDetail aggregates the topic with its full ordered reply list.
type TopicDetail struct {
	Id      int64         `json:"id"`
	Title   string        `json:"title"`
	Message string        `json:"message"`
	Author  UserSummary   `json:"author"`
	Course  CourseSummary `json:"course"`
	Replies []ReplyView   `json:"replies"`
	Status  bool          `json:"status"`
}

type ReplyView struct {
	Id        int64     `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Solution  bool      `json:"solution"`
	AuthorId  int64     `json:"author_id"`
	TopicId   int64     `json:"topic_id"`
}

type CreateReplyRequest struct {
	Message  string `json:"message" validate:"required"`
	Solution bool   `json:"solution,omitempty"`
}
