// File: internal/services/assistant/errors.go
package assistant

import "fmt"

type ErrorType string

const (
	ErrTypeValidation  ErrorType = "VALIDATION"
	ErrTypeProvider    ErrorType = "PROVIDER"
	ErrTypeParse       ErrorType = "PARSE"
	ErrTypePersistence ErrorType = "PERSISTENCE"
)

type AssistantError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *AssistantError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Assistant %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("Assistant %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func NewValidationError(operation, msg string) *AssistantError {
	return &AssistantError{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

func NewParseError(operation, msg string, cause error) *AssistantError {
	return &AssistantError{Type: ErrTypeParse, Operation: operation, Message: msg, Cause: cause}
}

// IsValidation reports whether err is an assistant validation error, the only
// error class that surfaces to the HTTP caller as a hard rejection.
func IsValidation(err error) bool {
	ae, ok := err.(*AssistantError)
	return ok && ae.Type == ErrTypeValidation
}
