package handler

import "encoding/json"

// relayFailureMessage is the only failure detail a caller ever sees.
const relayFailureMessage = "Failed to communicate with Claude API"

// RequestPayload represents the expected JSON structure in the request body.
type RequestPayload struct {
	// InputText is kept as raw JSON so it reaches the provider untouched.
	// It is nil when the caller did not send the field.
	InputText json.RawMessage `json:"inputText"`
}

// ErrorPayload is the JSON body of every error response.
type ErrorPayload struct {
	Error string `json:"error"`
}
