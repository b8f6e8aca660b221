package service

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forumhub-dev/forumhub/internal/domain"
	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
)

// --- Mocks ---

// MockTopicStorage mocks the TopicStorage interface.
type MockTopicStorage struct {
	existsFunc           func(title, message string) (bool, error)
	createFunc           func(data domain.TopicCreationData) (domain.TopicId, error)
	getFunc              func(id domain.TopicId) (domain.Topic, error)
	getActiveFunc        func(id domain.TopicId) (domain.Topic, error)
	listActiveFunc       func(page domain.PageRequest) (domain.Page[domain.Topic], error)
	listByCreationFunc   func(page domain.PageRequest) (domain.Page[domain.Topic], error)
	listByCourseYearFunc func(course domain.CourseName, year int, page domain.PageRequest) (domain.Page[domain.Topic], error)
	updateFunc           func(id domain.TopicId, title, message string) error
	setStatusFunc        func(id domain.TopicId, status bool) error

	mu                     sync.Mutex
	createCalled           bool
	existsCalled           bool
	listByCreationCalled   bool
	listByCourseYearCalled bool
	setStatusCalled        bool
	setStatusArg           bool
}

func (m *MockTopicStorage) ExistsByTitleAndMessage(title, message string) (bool, error) {
	m.mu.Lock()
	m.existsCalled = true
	m.mu.Unlock()
	if m.existsFunc != nil {
		return m.existsFunc(title, message)
	}
	return false, nil
}

func (m *MockTopicStorage) CreateTopic(data domain.TopicCreationData) (domain.TopicId, error) {
	m.mu.Lock()
	m.createCalled = true
	m.mu.Unlock()
	if m.createFunc != nil {
		return m.createFunc(data)
	}
	return 1, nil
}

func (m *MockTopicStorage) GetTopic(id domain.TopicId) (domain.Topic, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return domain.Topic{Id: id, Status: true}, nil
}

func (m *MockTopicStorage) GetActiveTopic(id domain.TopicId) (domain.Topic, error) {
	if m.getActiveFunc != nil {
		return m.getActiveFunc(id)
	}
	return domain.Topic{Id: id, Status: true}, nil
}

func (m *MockTopicStorage) ListActiveTopics(page domain.PageRequest) (domain.Page[domain.Topic], error) {
	if m.listActiveFunc != nil {
		return m.listActiveFunc(page)
	}
	return domain.Page[domain.Topic]{Page: page.Page, Size: page.Size}, nil
}

func (m *MockTopicStorage) ListTopicsByCreation(page domain.PageRequest) (domain.Page[domain.Topic], error) {
	m.mu.Lock()
	m.listByCreationCalled = true
	m.mu.Unlock()
	if m.listByCreationFunc != nil {
		return m.listByCreationFunc(page)
	}
	return domain.Page[domain.Topic]{Page: page.Page, Size: page.Size}, nil
}

func (m *MockTopicStorage) ListTopicsByCourseAndYear(course domain.CourseName, year int, page domain.PageRequest) (domain.Page[domain.Topic], error) {
	m.mu.Lock()
	m.listByCourseYearCalled = true
	m.mu.Unlock()
	if m.listByCourseYearFunc != nil {
		return m.listByCourseYearFunc(course, year, page)
	}
	return domain.Page[domain.Topic]{Page: page.Page, Size: page.Size}, nil
}

func (m *MockTopicStorage) UpdateTopic(id domain.TopicId, title, message string) error {
	if m.updateFunc != nil {
		return m.updateFunc(id, title, message)
	}
	return nil
}

func (m *MockTopicStorage) SetTopicStatus(id domain.TopicId, status bool) error {
	m.mu.Lock()
	m.setStatusCalled = true
	m.setStatusArg = status
	m.mu.Unlock()
	if m.setStatusFunc != nil {
		return m.setStatusFunc(id, status)
	}
	return nil
}

// MockIdentityDirectory mocks the IdentityDirectory interface.
type MockIdentityDirectory struct {
	resolveFunc func(login domain.Login) (domain.User, error)
}

func (m *MockIdentityDirectory) ResolveByLogin(login domain.Login) (domain.User, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(login)
	}
	return domain.User{Id: 1, Name: "Alice", Login: login}, nil
}

// MockCourseDirectory mocks the CourseDirectory interface.
type MockCourseDirectory struct {
	resolveFunc func(name domain.CourseName) (domain.Course, error)
}

func (m *MockCourseDirectory) ResolveByName(name domain.CourseName) (domain.Course, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(name)
	}
	return domain.Course{Id: 7, Name: name, Category: "Programming"}, nil
}

// passthroughSanitizer leaves text untouched.
type passthroughSanitizer struct{}

func (passthroughSanitizer) Sanitize(text string) string { return text }

// markerSanitizer proves the sanitizer ran by prefixing the text.
type markerSanitizer struct{}

func (markerSanitizer) Sanitize(text string) string { return "clean:" + text }

func newTopicService(storage *MockTopicStorage, identity *MockIdentityDirectory, courses *MockCourseDirectory) *Topic {
	return NewTopic(storage, identity, courses, passthroughSanitizer{})
}

// --- Tests ---

func TestTopicCreate(t *testing.T) {
	validTitle := "Intro to Go"
	validMessage := "How do channels work?"
	validCourse := "Go Programming"
	validLogin := "alice@example.com"

	t.Run("successful creation", func(t *testing.T) {
		storage := &MockTopicStorage{}
		identity := &MockIdentityDirectory{}
		courses := &MockCourseDirectory{}
		service := newTopicService(storage, identity, courses)

		storage.createFunc = func(data domain.TopicCreationData) (domain.TopicId, error) {
			assert.Equal(t, validTitle, data.Title)
			assert.Equal(t, validMessage, data.Message)
			assert.Equal(t, domain.UserId(1), data.Author.Id)
			assert.Equal(t, domain.CourseId(7), data.Course.Id)
			return 42, nil
		}

		id, err := service.Create(validTitle, validMessage, validCourse, validLogin)

		require.NoError(t, err)
		assert.Equal(t, domain.TopicId(42), id)
		assert.True(t, storage.createCalled, "Storage CreateTopic should be called")
	})

	t.Run("empty title or message fails validation", func(t *testing.T) {
		storage := &MockTopicStorage{}
		service := newTopicService(storage, &MockIdentityDirectory{}, &MockCourseDirectory{})

		for _, tc := range []struct{ title, message string }{
			{"", validMessage},
			{validTitle, ""},
			{"   ", validMessage},
			{"", ""},
		} {
			_, err := service.Create(tc.title, tc.message, validCourse, validLogin)
			require.Error(t, err)
			assert.True(t, internal_errors.IsValidation(err))
		}
		assert.False(t, storage.existsCalled, "validation failures should not reach storage")
	})

	t.Run("unknown author login propagates not found", func(t *testing.T) {
		storage := &MockTopicStorage{}
		identity := &MockIdentityDirectory{resolveFunc: func(login domain.Login) (domain.User, error) {
			return domain.User{}, internal_errors.NewNotFound("User not found")
		}}
		service := newTopicService(storage, identity, &MockCourseDirectory{})

		_, err := service.Create(validTitle, validMessage, validCourse, "ghost@example.com")

		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
		assert.False(t, storage.createCalled)
	})

	t.Run("duplicate title and message fails with conflict", func(t *testing.T) {
		storage := &MockTopicStorage{existsFunc: func(title, message string) (bool, error) {
			return true, nil
		}}
		service := newTopicService(storage, &MockIdentityDirectory{}, &MockCourseDirectory{})

		_, err := service.Create(validTitle, validMessage, validCourse, validLogin)

		require.Error(t, err)
		assert.True(t, internal_errors.IsConflict(err))
		assert.False(t, storage.createCalled)
	})

	t.Run("unknown course fails with validation, not not-found", func(t *testing.T) {
		courses := &MockCourseDirectory{resolveFunc: func(name domain.CourseName) (domain.Course, error) {
			return domain.Course{}, internal_errors.NewNotFound("Course not found")
		}}
		storage := &MockTopicStorage{}
		service := newTopicService(storage, &MockIdentityDirectory{}, courses)

		_, err := service.Create(validTitle, validMessage, "Underwater Basket Weaving", validLogin)

		require.Error(t, err)
		assert.True(t, internal_errors.IsValidation(err))
		assert.False(t, internal_errors.IsNotFound(err))
		assert.False(t, storage.createCalled)
	})

	t.Run("collaborator failures are propagated", func(t *testing.T) {
		storageErr := errors.New("db down")
		storage := &MockTopicStorage{existsFunc: func(title, message string) (bool, error) {
			return false, storageErr
		}}
		service := newTopicService(storage, &MockIdentityDirectory{}, &MockCourseDirectory{})

		_, err := service.Create(validTitle, validMessage, validCourse, validLogin)

		require.ErrorIs(t, err, storageErr)
	})

	t.Run("message is sanitized before persisting", func(t *testing.T) {
		storage := &MockTopicStorage{}
		storage.createFunc = func(data domain.TopicCreationData) (domain.TopicId, error) {
			assert.True(t, strings.HasPrefix(data.Title, "clean:"))
			assert.True(t, strings.HasPrefix(data.Message, "clean:"))
			return 1, nil
		}
		service := NewTopic(storage, &MockIdentityDirectory{}, &MockCourseDirectory{}, markerSanitizer{})

		_, err := service.Create(validTitle, validMessage, validCourse, validLogin)

		require.NoError(t, err)
	})
}

func TestTopicListActive(t *testing.T) {
	year := 2024
	sample := domain.Topic{
		Id:      1,
		Title:   "Intro to Go",
		Message: "How do channels work?",
		Author:  domain.User{Id: 2, Name: "Alice", Login: "alice@example.com"},
		Course:  domain.Course{Id: 3, Name: "Go Programming", Category: "Programming"},
		Status:  true,
	}

	t.Run("returns flattened summaries", func(t *testing.T) {
		storage := &MockTopicStorage{listActiveFunc: func(page domain.PageRequest) (domain.Page[domain.Topic], error) {
			return domain.Page[domain.Topic]{Items: []domain.Topic{sample}, Page: page.Page, Size: page.Size, Total: 1}, nil
		}}
		service := newTopicService(storage, &MockIdentityDirectory{}, &MockCourseDirectory{})

		page, err := service.ListActive(domain.PageRequest{Page: 1, Size: 10}, domain.TopicFilter{})

		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		got := page.Items[0]
		assert.Equal(t, int64(1), got.Id)
		assert.Equal(t, "Intro to Go", got.Title)
		assert.Equal(t, "Alice", got.Author.Name)
		assert.Equal(t, "alice@example.com", got.Author.Login)
		assert.Equal(t, "Go Programming", got.Course.Name)
		assert.Equal(t, "Programming", got.Course.Category)
		assert.Equal(t, int64(1), page.Total)
	})

	t.Run("filter parameters do not narrow active listing", func(t *testing.T) {
		called := 0
		storage := &MockTopicStorage{listActiveFunc: func(page domain.PageRequest) (domain.Page[domain.Topic], error) {
			called++
			return domain.Page[domain.Topic]{}, nil
		}}
		service := newTopicService(storage, &MockIdentityDirectory{}, &MockCourseDirectory{})

		_, err := service.ListActive(domain.PageRequest{Page: 1, Size: 10}, domain.TopicFilter{CourseName: "Go Programming", Year: &year})

		require.NoError(t, err)
		assert.Equal(t, 1, called)
		assert.False(t, storage.listByCourseYearCalled, "active listing should not use the filtered query")
	})

	t.Run("page and size are clamped", func(t *testing.T) {
		storage := &MockTopicStorage{listActiveFunc: func(page domain.PageRequest) (domain.Page[domain.Topic], error) {
			assert.Equal(t, 1, page.Page)
			assert.Equal(t, 1, page.Size)
			return domain.Page[domain.Topic]{}, nil
		}}
		service := newTopicService(storage, &MockIdentityDirectory{}, &MockCourseDirectory{})

		_, err := service.ListActive(domain.PageRequest{Page: -3, Size: 0}, domain.TopicFilter{})

		require.NoError(t, err)
	})
}

func TestTopicListAll(t *testing.T) {
	year := 2023

	t.Run("without full filter lists by creation time", func(t *testing.T) {
		storage := &MockTopicStorage{}
		service := newTopicService(storage, &MockIdentityDirectory{}, &MockCourseDirectory{})

		_, err := service.ListAll(domain.PageRequest{Page: 1, Size: 10}, domain.TopicFilter{CourseName: "Go Programming"})

		require.NoError(t, err)
		assert.True(t, storage.listByCreationCalled)
		assert.False(t, storage.listByCourseYearCalled, "course filter alone should not trigger filtered query")
	})

	t.Run("course and year together trigger filtered query", func(t *testing.T) {
		storage := &MockTopicStorage{listByCourseYearFunc: func(course domain.CourseName, y int, page domain.PageRequest) (domain.Page[domain.Topic], error) {
			assert.Equal(t, "Go Programming", course)
			assert.Equal(t, 2023, y)
			return domain.Page[domain.Topic]{}, nil
		}}
		service := newTopicService(storage, &MockIdentityDirectory{}, &MockCourseDirectory{})

		_, err := service.ListAll(domain.PageRequest{Page: 1, Size: 10}, domain.TopicFilter{CourseName: "Go Programming", Year: &year})

		require.NoError(t, err)
		assert.True(t, storage.listByCourseYearCalled)
		assert.False(t, storage.listByCreationCalled)
	})

	t.Run("summaries expose the status flag", func(t *testing.T) {
		storage := &MockTopicStorage{listByCreationFunc: func(page domain.PageRequest) (domain.Page[domain.Topic], error) {
			return domain.Page[domain.Topic]{Items: []domain.Topic{
				{Id: 1, Title: "a", Message: "b", Status: true},
				{Id: 2, Title: "c", Message: "d", Status: false},
			}, Total: 2}, nil
		}}
		service := newTopicService(storage, &MockIdentityDirectory{}, &MockCourseDirectory{})

		page, err := service.ListAll(domain.PageRequest{Page: 1, Size: 10}, domain.TopicFilter{})

		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.True(t, page.Items[0].Status)
		assert.False(t, page.Items[1].Status)
	})
}

func TestTopicGetDetail(t *testing.T) {
	t.Run("aggregates replies in order", func(t *testing.T) {
		created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		storage := &MockTopicStorage{getActiveFunc: func(id domain.TopicId) (domain.Topic, error) {
			return domain.Topic{
				Id:      id,
				Title:   "Intro to Go",
				Message: "How do channels work?",
				Author:  domain.User{Id: 2, Name: "Alice", Login: "alice@example.com"},
				Course:  domain.Course{Id: 3, Name: "Go Programming", Category: "Programming"},
				Status:  true,
				Replies: []domain.Reply{
					{Id: 10, Message: "Use select{}", CreatedAt: created, Solution: false, AuthorId: 5, TopicId: id},
					{Id: 11, Message: "Read the tour", CreatedAt: created.Add(time.Hour), Solution: true, AuthorId: 6, TopicId: id},
				},
			}, nil
		}}
		service := newTopicService(storage, &MockIdentityDirectory{}, &MockCourseDirectory{})

		detail, err := service.GetDetail(1)

		require.NoError(t, err)
		assert.True(t, detail.Status)
		require.Len(t, detail.Replies, 2)
		assert.Equal(t, "Use select{}", detail.Replies[0].Message)
		assert.Equal(t, int64(5), detail.Replies[0].AuthorId)
		assert.Equal(t, int64(1), detail.Replies[0].TopicId)
		assert.True(t, detail.Replies[1].Solution)
	})

	t.Run("replies is empty, not null, for a fresh topic", func(t *testing.T) {
		storage := &MockTopicStorage{}
		service := newTopicService(storage, &MockIdentityDirectory{}, &MockCourseDirectory{})

		detail, err := service.GetDetail(1)

		require.NoError(t, err)
		assert.NotNil(t, detail.Replies)
		assert.Len(t, detail.Replies, 0)
	})

	t.Run("soft-deleted or missing topic is not found", func(t *testing.T) {
		storage := &MockTopicStorage{getActiveFunc: func(id domain.TopicId) (domain.Topic, error) {
			return domain.Topic{}, internal_errors.NewNotFound("Topic not found")
		}}
		service := newTopicService(storage, &MockIdentityDirectory{}, &MockCourseDirectory{})

		_, err := service.GetDetail(99)

		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}

func TestTopicUpdate(t *testing.T) {
	t.Run("missing topic fails with not found", func(t *testing.T) {
		storage := &MockTopicStorage{getFunc: func(id domain.TopicId) (domain.Topic, error) {
			return domain.Topic{}, internal_errors.NewNotFound("Topic not found")
		}}
		service := newTopicService(storage, &MockIdentityDirectory{}, &MockCourseDirectory{})

		err := service.Update(99, "new title", "new message")

		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})

	t.Run("overwrites title and message only", func(t *testing.T) {
		storage := &MockTopicStorage{updateFunc: func(id domain.TopicId, title, message string) error {
			assert.Equal(t, domain.TopicId(5), id)
			assert.Equal(t, "new title", title)
			assert.Equal(t, "new message", message)
			return nil
		}}
		service := newTopicService(storage, &MockIdentityDirectory{}, &MockCourseDirectory{})

		require.NoError(t, service.Update(5, "new title", "new message"))
	})

	t.Run("storage constraint violation surfaces as validation error", func(t *testing.T) {
		storage := &MockTopicStorage{updateFunc: func(id domain.TopicId, title, message string) error {
			return internal_errors.WrapValidation("Write rejected by data constraints", errors.New("pq: check constraint"))
		}}
		service := newTopicService(storage, &MockIdentityDirectory{}, &MockCourseDirectory{})

		err := service.Update(5, "", "")

		require.Error(t, err)
		assert.True(t, internal_errors.IsValidation(err))
	})
}

func TestTopicDelete(t *testing.T) {
	t.Run("flips status to false", func(t *testing.T) {
		storage := &MockTopicStorage{}
		service := newTopicService(storage, &MockIdentityDirectory{}, &MockCourseDirectory{})

		require.NoError(t, service.Delete(5))

		storage.mu.Lock()
		defer storage.mu.Unlock()
		assert.True(t, storage.setStatusCalled)
		assert.False(t, storage.setStatusArg, "delete should set status to false")
	})

	t.Run("missing topic fails with not found", func(t *testing.T) {
		storage := &MockTopicStorage{setStatusFunc: func(id domain.TopicId, status bool) error {
			return internal_errors.NewNotFound("Topic not found")
		}}
		service := newTopicService(storage, &MockIdentityDirectory{}, &MockCourseDirectory{})

		err := service.Delete(99)

		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}
