package service

import (
	"strings"

	"github.com/forumhub-dev/forumhub/internal/api"
	"github.com/forumhub-dev/forumhub/internal/domain"
	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
)

type CourseService interface {
	Create(name domain.CourseName, category string) (domain.CourseId, error)
	List() ([]api.CourseSummary, error)
}

type CourseAdmin struct {
	storage CourseStorage
}

type CourseStorage interface {
	CreateCourse(name domain.CourseName, category string) (domain.CourseId, error)
	ListCourses() ([]domain.Course, error)
}

func NewCourseAdmin(storage CourseStorage) *CourseAdmin {
	return &CourseAdmin{storage}
}

func (c *CourseAdmin) Create(name domain.CourseName, category string) (domain.CourseId, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(category) == "" {
		return 0, internal_errors.NewValidation("Name and category are required")
	}
	return c.storage.CreateCourse(name, category)
}

func (c *CourseAdmin) List() ([]api.CourseSummary, error) {
	courses, err := c.storage.ListCourses()
	if err != nil {
		return nil, err
	}

	views := make([]api.CourseSummary, len(courses))
	for i, course := range courses {
		views[i] = courseView(course)
	}
	return views, nil
}
