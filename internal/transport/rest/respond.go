package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

// Error codes returned in the JSON error envelope.
const (
	codeNotFound     = "NOT_FOUND"
	codeConflict     = "CONFLICT"
	codeValidation   = "VALIDATION_ERROR"
	codeUnauthorized = "UNAUTHORIZED"
	codeForbidden    = "FORBIDDEN"
	codeStorage      = "STORAGE_ERROR"
	codeInternal     = "INTERNAL"
	codeBadRequest   = "BAD_REQUEST"
)

type errorBody struct {
	Error errorPayload `json:"error"`
}

type errorPayload struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Reason  string       `json:"reason,omitempty"`
	Count   int          `json:"count,omitempty"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeErrorCode(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorPayload{Code: code, Message: message}})
}

// writeError maps a service error onto the JSON error envelope. Unexpected
// errors are logged and reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		vErr *domain.ValidationError
		cErr *domain.ConflictError
	)

	switch {
	case errors.As(err, &vErr):
		fields := make([]fieldError, 0, len(vErr.Errors))
		for _, fe := range vErr.Errors {
			fields = append(fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorBody{Error: errorPayload{
			Code:    codeValidation,
			Message: vErr.Error(),
			Fields:  fields,
		}})
	case errors.As(err, &cErr):
		writeJSON(w, http.StatusConflict, errorBody{Error: errorPayload{
			Code:    codeConflict,
			Message: cErr.Error(),
			Reason:  cErr.Reason.String(),
			Count:   cErr.Count,
		}})
	case errors.Is(err, domain.ErrNotFound):
		writeErrorCode(w, http.StatusNotFound, codeNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeErrorCode(w, http.StatusConflict, codeConflict, "already exists")
	case errors.Is(err, domain.ErrValidation):
		writeErrorCode(w, http.StatusBadRequest, codeValidation, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeErrorCode(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeErrorCode(w, http.StatusForbidden, codeForbidden, "forbidden")
	case errors.Is(err, context.Canceled):
		// The client went away; nobody reads the response.
		log.DebugContext(r.Context(), "request canceled", slog.String("path", r.URL.Path))
	case errors.Is(err, domain.ErrStorage):
		log.ErrorContext(r.Context(), "storage error", slog.String("error", err.Error()))
		writeErrorCode(w, http.StatusInternalServerError, codeStorage, "storage error")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeErrorCode(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

// decodeJSON reads a bounded JSON body into dst, rejecting unknown fields.
// It writes a 400 and returns false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			writeErrorCode(w, http.StatusBadRequest, codeBadRequest, "request body is empty")
			return false
		}
		writeErrorCode(w, http.StatusBadRequest, codeBadRequest, "invalid request body")
		return false
	}
	return true
}

// uuidParam parses a UUID path parameter. It writes a 400 and returns false
// when the value is malformed.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, codeValidation, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads limit and offset query parameters. Clamping is left to
// the services.
func pagination(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			return 0, 0, domain.NewValidationError("limit", "must be an integer")
		}
	}
	if v := q.Get("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil || offset < 0 {
			return 0, 0, domain.NewValidationError("offset", "must be a non-negative integer")
		}
	}
	return limit, offset, nil
}

// optionalUUID parses a UUID query parameter. An empty value yields nil.
func optionalUUID(r *http.Request, name string) (*uuid.UUID, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a UUID")
	}
	return &id, nil
}
