package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type TopicCreationData struct {
	Title   string
	Message string
	Author  User
	Course  Course
}

type Topic struct {
	Id        TopicId
	Title     string
	Message   string
	Author    User
	Course    Course
	CreatedAt time.Time
	// Status is the soft-delete flag: true = active, false = deleted.
	// Rows are never removed physically.
	Status  bool
	Replies []Reply
}

// TopicFilter narrows admin listings. Course and year only apply together.
type TopicFilter struct {
	CourseName string
	Year       *int
}

func (f TopicFilter) Applies() bool {
	return f.CourseName != "" && f.Year != nil
}
