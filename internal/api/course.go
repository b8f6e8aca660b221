package api

type CreateCourseRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
}

type CourseSummary struct {
	Id       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type CourseListResponse struct {
	Courses []CourseSummary `json:"courses"`
}
