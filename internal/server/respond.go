package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"templehub/internal/app"
	"templehub/pkg/schedule"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"requestId,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{
		Error:     msg,
		Code:      errorCode(status, msg),
		RequestID: strings.TrimSpace(w.Header().Get("X-Request-Id")),
	})
}

// writeAppError translates application sentinels into HTTP responses.
func writeAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, schedule.ErrInvalidFormat):
		writeError(w, http.StatusBadRequest, "invalid schedule format")
	case errors.Is(err, app.ErrUnknownDay):
		writeError(w, http.StatusNotFound, "unknown day")
	case errors.Is(err, app.ErrEventNotFound):
		writeError(w, http.StatusNotFound, "event not found")
	case errors.Is(err, app.ErrAssetNotFound):
		writeError(w, http.StatusNotFound, "asset not found")
	case errors.Is(err, app.ErrAssetTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "file too large")
	case errors.Is(err, app.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, "record not found")
	case errors.Is(err, app.ErrInvalidCredentials),
		errors.Is(err, app.ErrUsernameAndPasswordRequired):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, app.ErrUsernameAlreadyExists),
		errors.Is(err, app.ErrEmailAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, app.ErrMissingFields),
		errors.Is(err, app.ErrInvalidRole):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrOwnerImmutable):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, app.ErrWeakPassword):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrPartialReplacement):
		writeError(w, http.StatusInternalServerError, "schedule replacement incomplete")
	case errors.Is(err, app.ErrAssetDeletionFailed):
		writeError(w, http.StatusInternalServerError, "asset deletion failed")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func errorCode(status int, msg string) string {
	message := strings.ToLower(strings.TrimSpace(msg))
	switch {
	case message == "invalid schedule format":
		return "SCHEDULE_INVALID_FORMAT"
	case message == "unknown day":
		return "SCHEDULE_UNKNOWN_DAY"
	case message == "event not found":
		return "SCHEDULE_EVENT_NOT_FOUND"
	case message == "asset not found":
		return "ASSET_NOT_FOUND"
	case message == "file too large":
		return "ASSET_TOO_LARGE"
	case strings.Contains(message, "file is required"):
		return "ASSET_FILE_REQUIRED"
	case message == "invalid form data":
		return "REQUEST_INVALID_UPLOAD_FORM"
	case message == "invalid json body":
		return "REQUEST_INVALID_BODY"
	case message == "record not found":
		return "RECORD_NOT_FOUND"
	case message == "unauthorized":
		return "AUTH_INVALID_TOKEN"
	case message == "forbidden":
		return "AUTH_FORBIDDEN"
	case message == "too many requests":
		return "AUTH_RATE_LIMITED"
	case message == "method not allowed":
		return "SYSTEM_METHOD_NOT_ALLOWED"
	case message == "not found":
		return "SYSTEM_NOT_FOUND"
	case message == "schedule replacement incomplete":
		return "SCHEDULE_PARTIAL_REPLACEMENT"
	case message == "asset deletion failed":
		return "ASSET_DELETE_FAILED"
	case strings.Contains(message, "password must"):
		return "AUTH_WEAK_PASSWORD"
	}

	switch status {
	case http.StatusBadRequest:
		return "REQUEST_INVALID"
	case http.StatusUnauthorized:
		return "AUTH_INVALID_TOKEN"
	case http.StatusForbidden:
		return "AUTH_FORBIDDEN"
	case http.StatusNotFound:
		return "SYSTEM_NOT_FOUND"
	case http.StatusConflict:
		return "RECORD_CONFLICT"
	case http.StatusRequestEntityTooLarge:
		return "ASSET_TOO_LARGE"
	case http.StatusMethodNotAllowed:
		return "SYSTEM_METHOD_NOT_ALLOWED"
	case http.StatusTooManyRequests:
		return "AUTH_RATE_LIMITED"
	default:
		if status >= http.StatusInternalServerError {
			return "SYSTEM_INTERNAL_ERROR"
		}
		return "REQUEST_ERROR"
	}
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func notFound(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusNotFound, msg)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
