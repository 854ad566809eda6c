package llm

import "fmt"

// ClientError represents a failure talking to the model provider
type ClientError struct {
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("llm: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("llm: %s", e.Message)
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}
