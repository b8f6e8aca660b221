package handler

import (
	"net/http"

	"github.com/forumhub-dev/forumhub/internal/api"
	"github.com/forumhub-dev/forumhub/internal/utils"
)

func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var body api.CreateCourseRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.courses.Create(body.Name, body.Category)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.CourseSummary{Id: id, Name: body.Name, Category: body.Category})
}

func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if courses == nil {
		courses = []api.CourseSummary{}
	}

	writeJSON(w, api.CourseListResponse{Courses: courses})
}
