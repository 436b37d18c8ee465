package appschema

import "fmt"

type ErrorKind int

const (
	ConfigurationError ErrorKind = iota
	ValidationError
	DetectionError
	UpstreamError
)

func (k ErrorKind) String() string {
	switch k {
	case ConfigurationError:
		return "configuration"
	case ValidationError:
		return "validation"
	case DetectionError:
		return "detection"
	case UpstreamError:
		return "upstream"
	default:
		return "unknown"
	}
}

// AppError tags a pipeline failure with its kind. Message is what the
// client sees; Err keeps the cause for the logs.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func NewAppError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
