package skills

import "fmt"

// AugmentationError represents a failure in the optional augmentation step
type AugmentationError struct {
	Message string
	Cause   error
}

func (e *AugmentationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skill augmentation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("skill augmentation failed: %s", e.Message)
}

func (e *AugmentationError) Unwrap() error {
	return e.Cause
}
