package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/forumhub-dev/forumhub/internal/api"
	"github.com/forumhub-dev/forumhub/internal/domain"
	mw "github.com/forumhub-dev/forumhub/internal/middleware"
	"github.com/forumhub-dev/forumhub/internal/utils"
)

func (h *Handler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body api.CreateTopicRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.topics.Create(body.Title, body.Message, body.CourseName, user.Login)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.CreateTopicResponse{Id: id})
}

func (h *Handler) ListActiveTopics(w http.ResponseWriter, r *http.Request) {
	page, err := h.topics.ListActive(h.parsePage(r), parseTopicFilter(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, pagedResponse(page))
}

func (h *Handler) ListAllTopics(w http.ResponseWriter, r *http.Request) {
	page, err := h.topics.ListAll(h.parsePage(r), parseTopicFilter(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, pagedResponse(page))
}

func (h *Handler) GetTopicDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(chi.URLParam(r, "id"), "topic ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	detail, err := h.topics.GetDetail(domain.TopicId(id))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, detail)
}

func (h *Handler) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(chi.URLParam(r, "id"), "topic ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.UpdateTopicRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.topics.Update(domain.TopicId(id), body.Title, body.Message); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(chi.URLParam(r, "id"), "topic ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.topics.Delete(domain.TopicId(id)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	topicId, err := parseIntParam(chi.URLParam(r, "id"), "topic ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.CreateReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	_, err = h.replies.Create(domain.TopicId(topicId), body.Message, body.Solution, user.Login, time.Now().UTC())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
