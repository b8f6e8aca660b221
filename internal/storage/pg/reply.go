package pg

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/forumhub-dev/forumhub/internal/domain"
	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
)

func (s *Storage) CreateReply(data domain.ReplyCreationData) (domain.ReplyId, error) {
	var id domain.ReplyId
	err := s.db.QueryRow(`
        INSERT INTO replies (message, created_at, solution, author_id, topic_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`,
		data.Message, data.CreatedAt.UTC(), data.Solution, data.AuthorId, data.TopicId,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation {
			// the service checks both references upfront, this only fires on
			// rows that vanished in between
			switch pqErr.Constraint {
			case "replies_topic_id_fkey":
				return 0, internal_errors.NewNotFound("Topic not found")
			case "replies_author_id_fkey":
				return 0, internal_errors.NewNotFound("Author not found")
			}
		}
		if mapped := constraintError(err, "Duplicate reply"); mapped != err {
			return 0, mapped
		}
		return 0, fmt.Errorf("failed to insert reply: %w", err)
	}
	return id, nil
}
