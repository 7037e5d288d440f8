package backend

import "encoding/json"

// Message is a single conversational turn sent to the provider.
type Message struct {
	Role string `json:"role"`
	// Content is the caller's inputText exactly as it arrived. It is omitted
	// from the wire when the caller did not send one.
	Content json.RawMessage `json:"content,omitempty"`
}

// OutboundRequest is the Messages API request body.
type OutboundRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

// NewOutboundRequest builds the request for a single user turn.
func NewOutboundRequest(model string, maxTokens int, content json.RawMessage) OutboundRequest {
	return OutboundRequest{
		Model:     model,
		MaxTokens: maxTokens,
		Messages: []Message{
			{Role: "user", Content: content},
		},
	}
}
