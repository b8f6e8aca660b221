package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/forumhub-dev/forumhub/internal/domain"
	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
)

// topicColumns is the join projection shared by every topic read. Author and
// course summaries are always resolved alongside the topic row.
const topicColumns = `
        t.id, t.title, t.message, t.created_at, t.status,
        u.id, u.name, u.login,
        c.id, c.name, c.category`

const topicFrom = `
    FROM topics t
    JOIN users u ON u.id = t.author_id
    JOIN courses c ON c.id = t.course_id`

func scanTopic(row interface{ Scan(...any) error }) (domain.Topic, error) {
	var t domain.Topic
	err := row.Scan(
		&t.Id, &t.Title, &t.Message, &t.CreatedAt, &t.Status,
		&t.Author.Id, &t.Author.Name, &t.Author.Login,
		&t.Course.Id, &t.Course.Name, &t.Course.Category,
	)
	return t, err
}

func (s *Storage) ExistsByTitleAndMessage(title, message string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM topics WHERE title = $1 AND message = $2)",
		title, message,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check topic existence: %w", err)
	}
	return exists, nil
}

func (s *Storage) CreateTopic(data domain.TopicCreationData) (domain.TopicId, error) {
	var id domain.TopicId
	createdTs := time.Now().UTC().Round(time.Microsecond) // database rounds to microsecond anyway
	err := s.db.QueryRow(`
        INSERT INTO topics (title, message, author_id, course_id, created_at, status)
        VALUES ($1, $2, $3, $4, $5, TRUE)
        RETURNING id`,
		data.Title, data.Message, data.Author.Id, data.Course.Id, createdTs,
	).Scan(&id)
	if err != nil {
		// the unique constraint catches creators that raced past the
		// application-level existence check
		if mapped := constraintError(err, "Topic with the same title and message already exists"); mapped != err {
			return 0, mapped
		}
		return 0, fmt.Errorf("failed to insert topic: %w", err)
	}
	return id, nil
}

// GetTopic fetches a topic by id regardless of status, without replies.
func (s *Storage) GetTopic(id domain.TopicId) (domain.Topic, error) {
	topic, err := scanTopic(s.db.QueryRow(
		"SELECT"+topicColumns+topicFrom+" WHERE t.id = $1", id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Topic{}, internal_errors.NewNotFound("Topic not found")
		}
		return domain.Topic{}, fmt.Errorf("failed to fetch topic: %w", err)
	}
	return topic, nil
}

// GetActiveTopic fetches an active topic with its replies ordered by creation.
// Soft-deleted topics look exactly like absent ones.
func (s *Storage) GetActiveTopic(id domain.TopicId) (domain.Topic, error) {
	topic, err := scanTopic(s.db.QueryRow(
		"SELECT"+topicColumns+topicFrom+" WHERE t.id = $1 AND t.status = TRUE", id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Topic{}, internal_errors.NewNotFound("Topic not found")
		}
		return domain.Topic{}, fmt.Errorf("failed to fetch topic: %w", err)
	}

	rows, err := s.db.Query(`
        SELECT id, message, created_at, solution, author_id, topic_id
        FROM replies
        WHERE topic_id = $1
        ORDER BY created_at, id`, id)
	if err != nil {
		return domain.Topic{}, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r domain.Reply
		if err := rows.Scan(&r.Id, &r.Message, &r.CreatedAt, &r.Solution, &r.AuthorId, &r.TopicId); err != nil {
			return domain.Topic{}, fmt.Errorf("failed to scan reply: %w", err)
		}
		topic.Replies = append(topic.Replies, r)
	}
	if err = rows.Err(); err != nil {
		return domain.Topic{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return topic, nil
}

func (s *Storage) ListActiveTopics(page domain.PageRequest) (domain.Page[domain.Topic], error) {
	return s.listTopics(page,
		"WHERE t.status = TRUE",
		"SELECT COUNT(*) FROM topics t WHERE t.status = TRUE",
	)
}

func (s *Storage) ListTopicsByCreation(page domain.PageRequest) (domain.Page[domain.Topic], error) {
	return s.listTopics(page,
		"",
		"SELECT COUNT(*) FROM topics t",
	)
}

func (s *Storage) ListTopicsByCourseAndYear(course domain.CourseName, year int, page domain.PageRequest) (domain.Page[domain.Topic], error) {
	where := "WHERE c.name = $3 AND EXTRACT(YEAR FROM t.created_at) = $4"
	count := "SELECT COUNT(*) FROM topics t JOIN courses c ON c.id = t.course_id WHERE c.name = $1 AND EXTRACT(YEAR FROM t.created_at) = $2"
	return s.listTopics(page, where, count, course, year)
}

// listTopics runs a paged, joined listing ordered by creation time ascending.
// Extra filter args are numbered after limit ($1) and offset ($2).
func (s *Storage) listTopics(page domain.PageRequest, where, countQuery string, filterArgs ...any) (domain.Page[domain.Topic], error) {
	result := domain.Page[domain.Topic]{Page: page.Page, Size: page.Size}

	if err := s.db.QueryRow(countQuery, filterArgs...).Scan(&result.Total); err != nil {
		return domain.Page[domain.Topic]{}, fmt.Errorf("failed to count topics: %w", err)
	}

	query := "SELECT" + topicColumns + topicFrom + " " + where +
		" ORDER BY t.created_at, t.id LIMIT $1 OFFSET $2"
	args := append([]any{page.Size, page.Offset()}, filterArgs...)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return domain.Page[domain.Topic]{}, fmt.Errorf("failed to list topics: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		topic, err := scanTopic(rows)
		if err != nil {
			return domain.Page[domain.Topic]{}, fmt.Errorf("failed to scan topic: %w", err)
		}
		result.Items = append(result.Items, topic)
	}
	if err = rows.Err(); err != nil {
		return domain.Page[domain.Topic]{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

func (s *Storage) UpdateTopic(id domain.TopicId, title, message string) error {
	result, err := s.db.Exec(
		"UPDATE topics SET title = $2, message = $3 WHERE id = $1",
		id, title, message,
	)
	if err != nil {
		if mapped := updateConstraintError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to update topic: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NewNotFound("Topic not found")
	}
	return nil
}

// SetTopicStatus flips the soft-delete flag. Updating an already-deleted
// topic is a no-op that still reports success.
func (s *Storage) SetTopicStatus(id domain.TopicId, status bool) error {
	result, err := s.db.Exec("UPDATE topics SET status = $2 WHERE id = $1", id, status)
	if err != nil {
		return fmt.Errorf("failed to update topic status: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NewNotFound("Topic not found")
	}
	return nil
}
