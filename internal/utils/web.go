package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/forumhub-dev/forumhub/internal/errors"
)

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		http.Error(w, err.Error(), e.StatusCode)
		return
	}
	// default error is 500
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		slog.Debug("request body decode failed", "error", err)
		return errors.NewValidation("Body is invalid json")
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		slog.Debug("request body validation failed", "error", err)
		return errors.NewValidation("Required fields missing or invalid")
	}
	return nil
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		slog.Debug("request body decode failed", "error", err)
		return errors.NewValidation("Body is invalid json")
	}
	return nil
}

func GetIP(r *http.Request) (string, error) {
	// X-REAL-IP first, then X-FORWARDED-FOR, then RemoteAddr
	ip := r.Header.Get("X-REAL-IP")
	if netIP := net.ParseIP(ip); netIP != nil {
		return ip, nil
	}

	ips := r.Header.Get("X-FORWARDED-FOR")
	for _, candidate := range strings.Split(ips, ",") {
		candidate = strings.TrimSpace(candidate)
		if netIP := net.ParseIP(candidate); netIP != nil {
			return candidate, nil
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	if netIP := net.ParseIP(ip); netIP != nil {
		return ip, nil
	}
	return "", fmt.Errorf("no valid ip found")
}
