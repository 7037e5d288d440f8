package backend

import "fmt"

// Result is the outcome of a relay call: either Success or Failure.
type Result interface {
	isResult()
}

// Success carries the provider's response body, unmodified.
type Success struct {
	Body []byte
}

// Failure carries the reason the provider could not be reached or did not
// answer successfully.
type Failure struct {
	Cause error
}

func (Success) isResult() {}
func (Failure) isResult() {}

// ProviderError is returned when the provider answers with a non-2xx status.
type ProviderError struct {
	StatusCode int
	Body       []byte
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, string(e.Body))
}
