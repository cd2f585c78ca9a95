// File: internal/services/prayer/errors.go
package prayer

import "fmt"

type ErrorType string

const (
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeNetwork    ErrorType = "NETWORK"
	ErrTypeProvider   ErrorType = "PROVIDER"
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeNotFound   ErrorType = "NOT_FOUND"
)

type PrayerError struct {
	Type    ErrorType
	Code    int
	Message string
	Cause   error
}

func (e *PrayerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Prayer %s error: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("Prayer %s error: %s", e.Type, e.Message)
}
