package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/productapi/productapi-go/internal/middleware"
	"github.com/productapi/productapi-go/internal/service"
	"github.com/productapi/productapi-go/internal/validation"
)

const maxBodyBytes = 1 << 20 // 1MB

var (
	errBodyTooLarge = errors.New("request body too large")
	errInvalidBody  = errors.New("invalid request body")
)

// decodeJSON reads a single JSON value from the request body into v. A field of
// the wrong JSON type is reported by name.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &maxErr):
			return errBodyTooLarge
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return &validation.Error{Field: typeErr.Field, Message: fmt.Sprintf("%s has an invalid type", typeErr.Field)}
		default:
			return errInvalidBody
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errBodyTooLarge
		}
		return errInvalidBody
	}
	return nil
}

// writeError maps err to a status code and writes it as a JSON error body.
// Unexpected errors are logged and replaced by a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeJSON(w, status, errorResponse("internal server error"))
		return
	}
	writeJSON(w, status, errorResponse(err.Error()))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errInvalidBody), validation.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrWrongPassword):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrEmailNotRegistered), errors.Is(err, service.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
