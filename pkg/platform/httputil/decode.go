package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	dErrors "ainadeul/pkg/domain-errors"
)

// Request DTOs opt into preparation steps by implementing these.
type (
	Sanitizable  interface{ Sanitize() }
	Normalizable interface{ Normalize() }
	Validatable  interface{ Validate() error }
)

// PrepareRequest runs Sanitize, Normalize and Validate, in that order, for
// whichever of them req implements.
func PrepareRequest(req any) error {
	if s, ok := req.(Sanitizable); ok {
		s.Sanitize()
	}
	if n, ok := req.(Normalizable); ok {
		n.Normalize()
	}
	v, ok := req.(Validatable)
	if !ok {
		return nil
	}
	err := v.Validate()
	if err == nil {
		return nil
	}
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	return dErrors.New(dErrors.CodeValidation, err.Error())
}

// DecodeAndPrepare reads a single JSON object from the body into a T and
// prepares it. On failure the error response is already written and ok is false:
//
//	req, ok := httputil.DecodeAndPrepare[models.AddChildRequest](w, r, h.logger, ctx, requestID)
//	if !ok {
//		return
//	}
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	req := new(T)
	if err := decodeBody(r.Body, req); err != nil {
		logger.WarnContext(ctx, "failed to decode request body", "error", err, "request_id", requestID)
		WriteError(w, err)
		return nil, false
	}
	if err := PrepareRequest(req); err != nil {
		logger.WarnContext(ctx, "invalid request", "error", err, "request_id", requestID)
		WriteError(w, err)
		return nil, false
	}
	return req, true
}

func decodeBody(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	err := dec.Decode(dst)

	var tooLarge *http.MaxBytesError
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	case errors.As(err, &tooLarge):
		return dErrors.Newf(dErrors.CodeBadRequest, "request body exceeds %d bytes", tooLarge.Limit)
	default:
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request body")
	}

	if dec.More() {
		return dErrors.New(dErrors.CodeBadRequest, "request body must hold a single JSON object")
	}
	return nil
}
