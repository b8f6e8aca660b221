package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/forumhub-dev/forumhub/internal/api"
	"github.com/forumhub-dev/forumhub/internal/config"
	"github.com/forumhub-dev/forumhub/internal/domain"
	"github.com/forumhub-dev/forumhub/internal/service"
)

type Handler struct {
	topics  service.TopicService
	replies service.ReplyService
	users   service.UserService
	auth    service.AuthService
	courses service.CourseService
	cfg     *config.Config
}

func New(topics service.TopicService, replies service.ReplyService, users service.UserService, auth service.AuthService, courses service.CourseService, cfg *config.Config) *Handler {
	return &Handler{topics, replies, users, auth, courses, cfg}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encoding failed", "error", err)
	}
}

// parseIntParam parses an integer parameter from a string and returns a meaningful error
func parseIntParam(param string, paramName string) (int, error) {
	val, err := strconv.Atoi(param)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}
	return val, nil
}

// parsePage reads page/size query params, falling back to configured defaults
// and clamping size to the configured maximum.
func (h *Handler) parsePage(r *http.Request) domain.PageRequest {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := parseIntParam(raw, "page"); err == nil && parsed > 0 {
			page = parsed
		}
	}

	size := h.cfg.Public.DefaultPageSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		if parsed, err := parseIntParam(raw, "size"); err == nil && parsed > 0 {
			size = parsed
		}
	}
	if size > h.cfg.Public.MaxPageSize {
		size = h.cfg.Public.MaxPageSize
	}

	return domain.PageRequest{Page: page, Size: size}
}

// parseTopicFilter reads the optional course/year listing filters.
func parseTopicFilter(r *http.Request) domain.TopicFilter {
	filter := domain.TopicFilter{CourseName: r.URL.Query().Get("course")}
	if raw := r.URL.Query().Get("year"); raw != "" {
		if year, err := parseIntParam(raw, "year"); err == nil {
			filter.Year = &year
		}
	}
	return filter
}

func pagedResponse[T any](p domain.Page[T]) api.PagedResponse[T] {
	items := p.Items
	if items == nil {
		items = []T{}
	}
	return api.PagedResponse[T]{Items: items, Page: p.Page, Size: p.Size, Total: p.Total}
}
