package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const requestIdKey key = 1

const RequestIdHeader = "X-Request-Id"

// RequestId tags every request with a uuid, reusing the inbound header when a
// proxy already assigned one.
func RequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIdHeader, id)
		ctx := context.WithValue(r.Context(), requestIdKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetRequestId(r *http.Request) string {
	id, _ := r.Context().Value(requestIdKey).(string)
	return id
}
