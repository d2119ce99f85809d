// Package httputil is the JSON response and request plumbing shared by the
// feature handlers.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	id "ainadeul/pkg/domain"
	dErrors "ainadeul/pkg/domain-errors"
	"ainadeul/pkg/requestcontext"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

type errorMapping struct {
	status int
	name   string
}

var errorMappings = map[dErrors.Code]errorMapping{
	dErrors.CodeNotFound:       {http.StatusNotFound, "not_found"},
	dErrors.CodeBadRequest:     {http.StatusBadRequest, "bad_request"},
	dErrors.CodeInvalidInput:   {http.StatusBadRequest, "bad_request"},
	dErrors.CodeValidation:     {http.StatusBadRequest, "validation_error"},
	dErrors.CodeConflict:       {http.StatusConflict, "conflict"},
	dErrors.CodeUnauthorized:   {http.StatusUnauthorized, "unauthorized"},
	dErrors.CodeSessionExpired: {http.StatusUnauthorized, "session_expired"},
	dErrors.CodeForbidden:      {http.StatusForbidden, "forbidden"},
	dErrors.CodeTimeout:        {http.StatusGatewayTimeout, "timeout"},
	dErrors.CodeUnavailable:    {http.StatusServiceUnavailable, "unavailable"},
}

var internalError = errorMapping{http.StatusInternalServerError, "internal_error"}

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// the status is already on the wire; an encode failure cannot be reported
	_ = json.NewEncoder(w).Encode(response)
}

// WriteError maps err's domain code to a status and error name. Messages of
// internal errors, and of errors without a code, are never sent.
func WriteError(w http.ResponseWriter, err error) {
	var de *dErrors.Error
	if !errors.As(err, &de) {
		WriteJSON(w, internalError.status, ErrorResponse{Error: internalError.name})
		return
	}
	m, ok := errorMappings[de.Code]
	if !ok {
		WriteJSON(w, internalError.status, ErrorResponse{Error: internalError.name})
		return
	}
	WriteJSON(w, m.status, ErrorResponse{Error: m.name, Description: de.Message})
}

// RequireUserID returns the authenticated user set by the auth middleware.
// A missing user on a protected route is logged as a wiring bug.
func RequireUserID(ctx context.Context, logger *slog.Logger, requestID string) (id.UserID, error) {
	userID := requestcontext.UserID(ctx)
	if !userID.IsNil() {
		return userID, nil
	}
	if logger != nil {
		logger.ErrorContext(ctx, "user id missing on authenticated route", "request_id", requestID)
	}
	return id.UserID{}, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
}
