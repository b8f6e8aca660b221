package service

import (
	"strings"

	"github.com/forumhub-dev/forumhub/internal/api"
	"github.com/forumhub-dev/forumhub/internal/domain"
	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
)

// to mock service in tests
type TopicService interface {
	Create(title, message string, courseName domain.CourseName, authorLogin domain.Login) (domain.TopicId, error)
	ListActive(page domain.PageRequest, filter domain.TopicFilter) (domain.Page[api.TopicSummary], error)
	ListAll(page domain.PageRequest, filter domain.TopicFilter) (domain.Page[api.AdminTopicSummary], error)
	GetDetail(id domain.TopicId) (api.TopicDetail, error)
	Update(id domain.TopicId, title, message string) error
	Delete(id domain.TopicId) error
}

type Topic struct {
	storage   TopicStorage
	identity  IdentityDirectory
	courses   CourseDirectory
	sanitizer Sanitizer
}

// IdentityDirectory resolves an authenticated login to a user record.
type IdentityDirectory interface {
	ResolveByLogin(login domain.Login) (domain.User, error)
}

// CourseDirectory resolves a course name to a course record.
type CourseDirectory interface {
	ResolveByName(name domain.CourseName) (domain.Course, error)
}

type TopicStorage interface {
	ExistsByTitleAndMessage(title, message string) (bool, error)
	CreateTopic(data domain.TopicCreationData) (domain.TopicId, error)
	// GetTopic looks up by id regardless of status, without replies.
	GetTopic(id domain.TopicId) (domain.Topic, error)
	// GetActiveTopic returns status=true topics only, replies loaded in order.
	GetActiveTopic(id domain.TopicId) (domain.Topic, error)
	ListActiveTopics(page domain.PageRequest) (domain.Page[domain.Topic], error)
	ListTopicsByCreation(page domain.PageRequest) (domain.Page[domain.Topic], error)
	ListTopicsByCourseAndYear(course domain.CourseName, year int, page domain.PageRequest) (domain.Page[domain.Topic], error)
	UpdateTopic(id domain.TopicId, title, message string) error
	SetTopicStatus(id domain.TopicId, status bool) error
}

type Sanitizer interface {
	Sanitize(text string) string
}

func NewTopic(storage TopicStorage, identity IdentityDirectory, courses CourseDirectory, sanitizer Sanitizer) *Topic {
	return &Topic{storage, identity, courses, sanitizer}
}

// Create validates and persists a new active topic, returning the assigned id.
// Validation order: required fields, author login, (title, message) uniqueness
// across all topics regardless of status, then course existence. An unknown
// course is a business-rule rejection, not a missing resource, so it surfaces
// as a validation error unlike the author lookup.
func (t *Topic) Create(title, message string, courseName domain.CourseName, authorLogin domain.Login) (domain.TopicId, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(message) == "" {
		return 0, internal_errors.NewValidation("Title and message are required")
	}

	title = t.sanitizer.Sanitize(title)
	message = t.sanitizer.Sanitize(message)

	author, err := t.identity.ResolveByLogin(authorLogin)
	if err != nil {
		return 0, err
	}

	exists, err := t.storage.ExistsByTitleAndMessage(title, message)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, internal_errors.NewConflict("Topic with the same title and message already exists")
	}

	course, err := t.courses.ResolveByName(courseName)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return 0, internal_errors.NewValidation("Course is not registered")
		}
		return 0, err
	}

	return t.storage.CreateTopic(domain.TopicCreationData{
		Title:   title,
		Message: message,
		Author:  author,
		Course:  course,
	})
}

// ListActive returns active topics only. Course/year filter parameters are
// accepted for API compatibility but do not narrow this listing.
func (t *Topic) ListActive(page domain.PageRequest, _ domain.TopicFilter) (domain.Page[api.TopicSummary], error) {
	topics, err := t.storage.ListActiveTopics(clampPage(page))
	if err != nil {
		return domain.Page[api.TopicSummary]{}, err
	}
	return domain.MapPage(topics, SummaryView), nil
}

// ListAll is the administrative listing: every status, ordered by creation
// time ascending. The course/year filter applies only when both are present.
func (t *Topic) ListAll(page domain.PageRequest, filter domain.TopicFilter) (domain.Page[api.AdminTopicSummary], error) {
	page = clampPage(page)

	var topics domain.Page[domain.Topic]
	var err error
	if filter.Applies() {
		topics, err = t.storage.ListTopicsByCourseAndYear(filter.CourseName, *filter.Year, page)
	} else {
		topics, err = t.storage.ListTopicsByCreation(page)
	}
	if err != nil {
		return domain.Page[api.AdminTopicSummary]{}, err
	}
	return domain.MapPage(topics, AdminSummaryView), nil
}

// GetDetail assembles the full view of an active topic. Soft-deleted topics
// are indistinguishable from absent ones here.
func (t *Topic) GetDetail(id domain.TopicId) (api.TopicDetail, error) {
	topic, err := t.storage.GetActiveTopic(id)
	if err != nil {
		return api.TopicDetail{}, err
	}
	return DetailView(topic), nil
}

// Update overwrites title and message, leaving author, course, status and
// creation timestamp untouched. Storage constraint violations come back as
// validation errors.
func (t *Topic) Update(id domain.TopicId, title, message string) error {
	if _, err := t.storage.GetTopic(id); err != nil {
		return err
	}

	return t.storage.UpdateTopic(id, t.sanitizer.Sanitize(title), t.sanitizer.Sanitize(message))
}

// Delete flips the status flag. The row stays in the store; repeated deletes
// are no-ops that keep status=false.
func (t *Topic) Delete(id domain.TopicId) error {
	return t.storage.SetTopicStatus(id, false)
}

func clampPage(page domain.PageRequest) domain.PageRequest {
	page.Page = max(1, page.Page)
	page.Size = max(1, page.Size)
	return page
}
