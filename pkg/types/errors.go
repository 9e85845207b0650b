package types

import "fmt"

// Error code constants.
const (
	ErrCodeModuleNotFound       = "MODULE_NOT_FOUND"
	ErrCodeReadError            = "READ_ERROR"
	ErrCodeUnknownRuleID        = "UNKNOWN_RULE_ID"
	ErrCodeUnknownCategory      = "UNKNOWN_CATEGORY"
	ErrCodeIncompleteEvaluation = "INCOMPLETE_EVALUATION"
	ErrCodePathOutsideWorkspace = "PATH_OUTSIDE_WORKSPACE"
)

// EngineError is a structured error for MCP tool responses.
type EngineError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewEngineError creates a new EngineError.
func NewEngineError(code, message string) *EngineError {
	return &EngineError{Code: code, Message: message}
}
