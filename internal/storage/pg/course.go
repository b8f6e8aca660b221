package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/forumhub-dev/forumhub/internal/domain"
	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
)

func (s *Storage) CreateCourse(name domain.CourseName, category string) (domain.CourseId, error) {
	var id domain.CourseId
	err := s.db.QueryRow(
		"INSERT INTO courses (name, category) VALUES ($1, $2) RETURNING id",
		name, category,
	).Scan(&id)
	if err != nil {
		if mapped := constraintError(err, "Course already exists"); mapped != err {
			return 0, mapped
		}
		return 0, fmt.Errorf("failed to insert course: %w", err)
	}
	return id, nil
}

// ResolveByName implements the course directory lookup.
func (s *Storage) ResolveByName(name domain.CourseName) (domain.Course, error) {
	var c domain.Course
	err := s.db.QueryRow(
		"SELECT id, name, category FROM courses WHERE name = $1", name,
	).Scan(&c.Id, &c.Name, &c.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Course{}, internal_errors.NewNotFound("Course not found")
		}
		return domain.Course{}, fmt.Errorf("failed to fetch course: %w", err)
	}
	return c, nil
}

func (s *Storage) ListCourses() ([]domain.Course, error) {
	rows, err := s.db.Query("SELECT id, name, category FROM courses ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.Id, &c.Name, &c.Category); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return courses, nil
}
