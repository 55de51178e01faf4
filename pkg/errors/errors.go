package errors

import "fmt"

// Error codes
const (
	CodeBotError   = "BOT_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeUpstream   = "UPSTREAM_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodePermission = "PERMISSION_DENIED"
)

type BotError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *BotError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BotError) Unwrap() error {
	return e.Cause
}

func NewBotError(message, code string, statusCode int, context map[string]any) *BotError {
	return &BotError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *BotError) WithCause(cause error) *BotError {
	e.Cause = cause
	return e
}

// NotFoundError signals a confirmed-absent upstream entity. The offending id is
// kept so reply text can echo it back to the invoker.
type NotFoundError struct {
	*BotError
	EntityKind string
	ID         int
}

func NewNotFoundError(entityKind string, id int) *NotFoundError {
	return &NotFoundError{
		BotError: NewBotError(fmt.Sprintf("%s %d not found", entityKind, id), CodeNotFound, 404, map[string]any{
			"kind": entityKind,
			"id":   id,
		}),
		EntityKind: entityKind,
		ID:         id,
	}
}

// UpstreamError covers every network/parse/unexpected failure talking to a
// data source that is not a confirmed absence.
type UpstreamError struct {
	*BotError
	Source string
}

func NewUpstreamError(message, source string, statusCode int, cause error) *UpstreamError {
	return &UpstreamError{
		BotError: NewBotError(message, CodeUpstream, statusCode, map[string]any{
			"source": source,
		}).WithCause(cause),
		Source: source,
	}
}

type ValidationError struct {
	*BotError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		BotError: NewBotError(message, CodeValidation, 400, map[string]any{
			"field": field,
			"value": value,
		}),
		Field: field,
		Value: value,
	}
}

// PermissionError signals a guild-scope operation attempted without the
// administrator permission.
type PermissionError struct {
	*BotError
	Operation string
}

func NewPermissionError(operation string) *PermissionError {
	return &PermissionError{
		BotError: NewBotError(fmt.Sprintf("administrator permission required for %s", operation), CodePermission, 403, map[string]any{
			"operation": operation,
		}),
		Operation: operation,
	}
}
