package server

import (
	"brawlstats-sync/internal/api"
	"brawlstats-sync/internal/dto"
	"brawlstats-sync/internal/middleware"
	"brawlstats-sync/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type jsonResponse map[string]any

var (
	errNotFound   = errors.New("the requested resource could not be found")
	errBadRequest = errors.New("bad request")
)

func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", errBadRequest, raw)
	}
	return id, nil
}

// tagParam accepts a tag with or without its leading '#', escaped or not.
func tagParam(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "tag")
	tag, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w: invalid tag %q", errBadRequest, raw)
	}
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if tag == "" || tag == "#" {
		return "", fmt.Errorf("%w: empty tag", errBadRequest)
	}
	if !strings.HasPrefix(tag, "#") {
		tag = "#" + tag
	}
	return tag, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	js, err := json.Marshal(data)
	if err != nil {
		s.log(r).Error().Err(err).Msg("failed to encode response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(js, '\n'))
}

// errorResponse maps the error taxonomy onto HTTP: invalid upstream data is
// 422, upstream failures are 502 (404 when upstream said so), unknown
// resources are 404 and anything else is a 500 with a generic message.
func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFor(err)
	level := zerolog.WarnLevel
	if status == http.StatusInternalServerError {
		level = zerolog.ErrorLevel
	}
	s.log(r).WithLevel(level).Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request failed")

	env := jsonResponse{"error": message}
	if id := middleware.GetRequestID(r.Context()); id != "" {
		env["request_id"] = id
	}
	s.writeJSON(w, r, status, env)
}

func statusFor(err error) (int, string) {
	var respErr *api.ResponseError
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, dto.ErrInvalidDTO):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.As(err, &respErr) && respErr.Status == http.StatusNotFound:
		return http.StatusNotFound, err.Error()
	case errors.Is(err, api.ErrResponse), errors.Is(err, service.ErrEmptyResult):
		return http.StatusBadGateway, err.Error()
	default:
		return http.StatusInternalServerError, "the server encountered a problem and could not process your request"
	}
}

// log prefers the request-scoped logger set by the request id middleware.
func (s *Server) log(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.logger
}
