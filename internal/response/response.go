// Package response writes the JSON envelope shared by every endpoint:
// {"success":true,"data":...} or {"success":false,"error":"..."}.
package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

const (
	FailureMessage  = "request could not be completed"
	ConflictMessage = "record was modified concurrently, retry the request"
)

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func OK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func Bad(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, envelope{Error: msg})
}

func NotFound(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusNotFound, envelope{Error: msg})
}

// Error maps a use case error onto the envelope. notFound is the message
// used for entity.ErrNotFound. A lost optimistic-concurrency race is a 409
// the client may retry. Anything unrecognised is logged and reported as a
// generic 400.
func Error(w http.ResponseWriter, r *http.Request, log logger.ZapLogger, err error, notFound string) {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		Bad(w, verr.Message)
	case errors.Is(err, entity.ErrNotFound):
		NotFound(w, notFound)
	case errors.Is(err, entity.ErrConflict):
		log.Warn("request lost a concurrent update",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path))
		writeJSON(w, http.StatusConflict, envelope{Error: ConflictMessage})
	default:
		log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		Bad(w, FailureMessage)
	}
}

// Decode reads a JSON object body into dst. Malformed bodies and wrongly
// typed fields become validation errors.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return validate.Errorf("%s must be %s", typeErr.Field, jsonKind(typeErr.Type.Kind()))
		}
		if errors.Is(err, io.EOF) {
			return validate.Errorf("request body is required")
		}
		return validate.Errorf("invalid JSON body")
	}
	return nil
}

func jsonKind(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Map, reflect.Struct:
		return "an object"
	default:
		return "a number"
	}
}

// Paging reads the optional cursor and limit query parameters.
func Paging(r *http.Request) (cursor string, limit int, err error) {
	q := r.URL.Query()
	cursor = q.Get("cursor")
	if raw := q.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return "", 0, validate.Errorf("limit must be a non-negative integer")
		}
	}
	return cursor, limit, nil
}
