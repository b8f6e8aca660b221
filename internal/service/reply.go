package service

import (
	"strings"
	"time"

	"github.com/forumhub-dev/forumhub/internal/domain"
	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
)

type ReplyService interface {
	Create(topicId domain.TopicId, message string, solution bool, authorLogin domain.Login, createdAt time.Time) (domain.ReplyId, error)
}

type Reply struct {
	storage   ReplyStorage
	topics    TopicFinder
	identity  IdentityDirectory
	sanitizer Sanitizer
}

type ReplyStorage interface {
	CreateReply(data domain.ReplyCreationData) (domain.ReplyId, error)
}

// TopicFinder is the id-only lookup. It is deliberately not status-filtered:
// replies can be attached to a soft-deleted topic.
type TopicFinder interface {
	GetTopic(id domain.TopicId) (domain.Topic, error)
}

func NewReply(storage ReplyStorage, topics TopicFinder, identity IdentityDirectory, sanitizer Sanitizer) *Reply {
	return &Reply{storage, topics, identity, sanitizer}
}

func (r *Reply) Create(topicId domain.TopicId, message string, solution bool, authorLogin domain.Login, createdAt time.Time) (domain.ReplyId, error) {
	if strings.TrimSpace(message) == "" {
		return 0, internal_errors.NewValidation("Message is required")
	}

	author, err := r.identity.ResolveByLogin(authorLogin)
	if err != nil {
		return 0, err
	}

	topic, err := r.topics.GetTopic(topicId)
	if err != nil {
		return 0, err
	}

	return r.storage.CreateReply(domain.ReplyCreationData{
		TopicId:   topic.Id,
		Message:   r.sanitizer.Sanitize(message),
		Solution:  solution,
		AuthorId:  author.Id,
		CreatedAt: createdAt,
	})
}
