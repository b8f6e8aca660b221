package domain

type Course struct {
	Id       CourseId
	Name     CourseName
	Category string
}
