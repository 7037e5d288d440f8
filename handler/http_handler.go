package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"relay/backend"
)

// Relayer forwards inbound text to the LLM provider.
type Relayer interface {
	Relay(ctx context.Context, content json.RawMessage) backend.Result
}

// HTTPHandler serves the AI analysis endpoint.
type HTTPHandler struct {
	Relayer      Relayer
	MaxBodyBytes int64
}

// NewHTTPHandler creates a new instance of HTTPHandler
func NewHTTPHandler(r Relayer, maxBodyBytes int64) *HTTPHandler {
	return &HTTPHandler{
		Relayer:      r,
		MaxBodyBytes: maxBodyBytes,
	}
}

// ServeHTTP implements the http.Handler interface for HTTPHandler.
func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	payload, code, err := h.readPayload(w, r)
	if err != nil {
		msg := "invalid JSON body"
		if code == http.StatusRequestEntityTooLarge {
			msg = "request entity too large"
		}
		logAndReturnError(w, r, msg, code, fmt.Sprintf("Rejecting request body: %v", err))
		return
	}

	// A caller that goes away does not cancel the provider call.
	ctx := context.WithoutCancel(r.Context())

	switch res := h.Relayer.Relay(ctx, payload.InputText).(type) {
	case backend.Success:
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(res.Body); err != nil {
			requestLogger(r).Debugf("Client %s went away before the response was written: %v", r.RemoteAddr, err)
		}
	case backend.Failure:
		logAndReturnError(w, r, relayFailureMessage, http.StatusInternalServerError,
			fmt.Sprintf("Error communicating with Claude API: %v", res.Cause))
	default:
		logAndReturnError(w, r, relayFailureMessage, http.StatusInternalServerError,
			fmt.Sprintf("Error communicating with Claude API: unexpected result %T", res))
	}
}

// readPayload parses the body the way a JSON body parser in front of the
// endpoint would: only application/json bodies are read, an empty body is an
// empty object, and only an object or array is accepted at the top level.
func (h *HTTPHandler) readPayload(w http.ResponseWriter, r *http.Request) (RequestPayload, int, error) {
	var payload RequestPayload
	if !isJSONContent(r.Header.Get("Content-Type")) {
		return payload, http.StatusOK, nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return payload, http.StatusRequestEntityTooLarge, fmt.Errorf("body exceeds %d bytes", tooLarge.Limit)
		}
		return payload, http.StatusBadRequest, fmt.Errorf("reading body: %w", err)
	}

	body = bytes.Trim(body, " \t\r\n")
	if len(body) == 0 {
		return payload, http.StatusOK, nil
	}

	switch body[0] {
	case '{':
		// Field names match exactly, unlike struct decoding.
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil {
			return payload, http.StatusBadRequest, fmt.Errorf("decoding body: %w", err)
		}
		payload.InputText = fields["inputText"]
	case '[':
		if !json.Valid(body) {
			return payload, http.StatusBadRequest, errors.New("decoding body: invalid JSON array")
		}
	default:
		return payload, http.StatusBadRequest, errors.New("decoding body: top-level value must be an object or array")
	}
	return payload, http.StatusOK, nil
}

func isJSONContent(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}
