package handler

import (
	"time"

	"github.com/forumhub-dev/forumhub/internal/api"
	"github.com/forumhub-dev/forumhub/internal/config"
	"github.com/forumhub-dev/forumhub/internal/domain"
)

// Shared mocks for handler tests. Each mock method falls through to a
// default when the corresponding Mock* field is unset.

type MockTopicService struct {
	MockCreate     func(title, message string, courseName domain.CourseName, authorLogin domain.Login) (domain.TopicId, error)
	MockListActive func(page domain.PageRequest, filter domain.TopicFilter) (domain.Page[api.TopicSummary], error)
	MockListAll    func(page domain.PageRequest, filter domain.TopicFilter) (domain.Page[api.AdminTopicSummary], error)
	MockGetDetail  func(id domain.TopicId) (api.TopicDetail, error)
	MockUpdate     func(id domain.TopicId, title, message string) error
	MockDelete     func(id domain.TopicId) error
}

func (m *MockTopicService) Create(title, message string, courseName domain.CourseName, authorLogin domain.Login) (domain.TopicId, error) {
	if m.MockCreate != nil {
		return m.MockCreate(title, message, courseName, authorLogin)
	}
	return 1, nil
}

func (m *MockTopicService) ListActive(page domain.PageRequest, filter domain.TopicFilter) (domain.Page[api.TopicSummary], error) {
	if m.MockListActive != nil {
		return m.MockListActive(page, filter)
	}
	return domain.Page[api.TopicSummary]{Page: page.Page, Size: page.Size}, nil
}

func (m *MockTopicService) ListAll(page domain.PageRequest, filter domain.TopicFilter) (domain.Page[api.AdminTopicSummary], error) {
	if m.MockListAll != nil {
		return m.MockListAll(page, filter)
	}
	return domain.Page[api.AdminTopicSummary]{Page: page.Page, Size: page.Size}, nil
}

func (m *MockTopicService) GetDetail(id domain.TopicId) (api.TopicDetail, error) {
	if m.MockGetDetail != nil {
		return m.MockGetDetail(id)
	}
	return api.TopicDetail{Id: id, Replies: []api.ReplyView{}}, nil
}

func (m *MockTopicService) Update(id domain.TopicId, title, message string) error {
	if m.MockUpdate != nil {
		return m.MockUpdate(id, title, message)
	}
	return nil
}

func (m *MockTopicService) Delete(id domain.TopicId) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

type MockReplyService struct {
	MockCreate func(topicId domain.TopicId, message string, solution bool, authorLogin domain.Login, createdAt time.Time) (domain.ReplyId, error)
}

func (m *MockReplyService) Create(topicId domain.TopicId, message string, solution bool, authorLogin domain.Login, createdAt time.Time) (domain.ReplyId, error) {
	if m.MockCreate != nil {
		return m.MockCreate(topicId, message, solution, authorLogin, createdAt)
	}
	return 1, nil
}

type MockUserService struct {
	MockRegister func(name string, login domain.Login, password string) (domain.UserId, error)
	MockGet      func(id domain.UserId) (api.UserSummary, error)
	MockList     func(page domain.PageRequest) (domain.Page[api.UserSummary], error)
	MockUpdate   func(id domain.UserId, name, password string) error
	MockDelete   func(id domain.UserId) error
}

func (m *MockUserService) Register(name string, login domain.Login, password string) (domain.UserId, error) {
	if m.MockRegister != nil {
		return m.MockRegister(name, login, password)
	}
	return 1, nil
}

func (m *MockUserService) Get(id domain.UserId) (api.UserSummary, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return api.UserSummary{Id: id}, nil
}

func (m *MockUserService) List(page domain.PageRequest) (domain.Page[api.UserSummary], error) {
	if m.MockList != nil {
		return m.MockList(page)
	}
	return domain.Page[api.UserSummary]{Page: page.Page, Size: page.Size}, nil
}

func (m *MockUserService) Update(id domain.UserId, name, password string) error {
	if m.MockUpdate != nil {
		return m.MockUpdate(id, name, password)
	}
	return nil
}

func (m *MockUserService) Delete(id domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

type MockAuthService struct {
	MockLogin func(login domain.Login, password string) (string, domain.User, error)
}

func (m *MockAuthService) Login(login domain.Login, password string) (string, domain.User, error) {
	if m.MockLogin != nil {
		return m.MockLogin(login, password)
	}
	return "token", domain.User{Id: 1, Login: login}, nil
}

type MockCourseService struct {
	MockCreate func(name domain.CourseName, category string) (domain.CourseId, error)
	MockList   func() ([]api.CourseSummary, error)
}

func (m *MockCourseService) Create(name domain.CourseName, category string) (domain.CourseId, error) {
	if m.MockCreate != nil {
		return m.MockCreate(name, category)
	}
	return 1, nil
}

func (m *MockCourseService) List() ([]api.CourseSummary, error) {
	if m.MockList != nil {
		return m.MockList()
	}
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Public: config.Public{
			DefaultPageSize: 10,
			MaxPageSize:     100,
			JwtTTL:          time.Hour,
		},
	}
}

func testUser() *domain.User {
	return &domain.User{Id: 1, Name: "Alice", Login: "alice@example.com"}
}
