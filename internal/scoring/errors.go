package scoring

import "fmt"

// InputError is returned when Score is called with unusable arguments
type InputError struct {
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scoring input error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("scoring input error: %s", e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
