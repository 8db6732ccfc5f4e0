package workflow

import (
	"errors"
	"fmt"
)

// Code identifies an error class on the JSON surface.
type Code string

// Error codes.
const (
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeInvalidAction    Code = "INVALID_ACTION"
	CodeUserCancelled    Code = "USER_CANCELLED"
	CodeHookFailed       Code = "HOOK_FAILED"
	CodeOperationFailed  Code = "OPERATION_FAILED"
	CodeDetachedHead     Code = "DETACHED_HEAD"
	CodePRNotFound       Code = "PR_NOT_FOUND"
	CodeBranchNotFound   Code = "BRANCH_NOT_FOUND"
	CodeWorktreeExists   Code = "WORKTREE_EXISTS"
	CodeTokenMissing     Code = "GH_NOT_INSTALLED"
	CodeNotAuthenticated Code = "GH_NOT_AUTHENTICATED"
	CodeForgeAPIError    Code = "GH_API_ERROR"
	CodeUnknown          Code = "UNKNOWN_ERROR"
)

// Error is a structured workflow error carrying a stable code and an
// optional remediation suggestion.
type Error struct {
	Code       Code   `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.cause
}

func newError(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func wrapError(code Code, cause error, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: cause}
}

// AsError coerces any error into a structured workflow Error, keeping an
// existing one unchanged and falling back to the unknown code.
func AsError(err error) *Error {
	var wErr *Error
	if errors.As(err, &wErr) {
		return wErr
	}
	return &Error{Code: CodeUnknown, Message: err.Error(), cause: err}
}
