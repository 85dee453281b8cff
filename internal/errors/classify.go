package errors

import (
	"context"
	"errors"
	"runtime"
)

// ErrorSeverity indicates how bad an error is.
type ErrorSeverity int

const (
	SeverityInfo    ErrorSeverity = iota // User should know, not blocking
	SeverityWarning                      // Degraded functionality
	SeverityError                        // Operation failed, can retry
	SeverityFatal                        // Process crashed
)

// String returns the lower-case severity name.
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityFatal:
		return "fatal"
	default:
		return "error"
	}
}

// ErrorAction names a follow-up the viewer can offer, such as "Retry".
type ErrorAction struct {
	Label string
}

// UIError wraps an error with a title, severity and recovery hints.
type UIError struct {
	Err      error
	Severity ErrorSeverity
	Title    string        // Short user-facing title
	Message  string        // Detailed user-facing message
	Recovery []string      // Suggested actions (bullet points)
	Actions  []ErrorAction // Buttons for user actions
	Details  string        // Technical details (collapsed by default)
}

func (e UIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Title
}

// Unwrap returns the underlying error.
func (e UIError) Unwrap() error {
	return e.Err
}

// sentinelTemplate presents every error matching target.
type sentinelTemplate struct {
	target   error
	severity ErrorSeverity
	title    string
	message  string
	recovery []string
	action   string
	details  bool
}

// sentinelTemplates are tried in order with errors.Is.
var sentinelTemplates = []sentinelTemplate{
	{
		target:   context.DeadlineExceeded,
		severity: SeverityError,
		title:    "Deadline Exceeded",
		message:  "An operation ran past its deadline.",
		recovery: []string{"Check for slow dependencies", "Increase the timeout"},
	},
	{
		target:   context.Canceled,
		severity: SeverityInfo,
		title:    "Cancelled",
		message:  "The operation was cancelled.",
	},
	{
		target:   ErrReportNotFound,
		severity: SeverityWarning,
		title:    "Report Not Found",
		message:  "The report no longer exists. It may have been cleared.",
		recovery: []string{"Refresh the report list"},
		action:   "Retry",
	},
	{
		target:   ErrInvalidReportID,
		severity: SeverityError,
		title:    "Invalid Report",
		message:  "The report identifier is not valid.",
		details:  true,
	},
	{
		target:   ErrStorageUnavailable,
		severity: SeverityError,
		title:    "Storage Unavailable",
		message:  "Reports could not be read or written.",
		recovery: []string{
			"Check the storage directory permissions",
			"Set WHOOPS_STORAGE_PATH to a writable directory",
		},
		action:  "Retry",
		details: true,
	},
}

// ClassifyError converts an error into a UIError. A UIError anywhere in the
// chain is returned as is.
func ClassifyError(err error) *UIError {
	if err == nil {
		return nil
	}

	var uiErr *UIError
	if errors.As(err, &uiErr) {
		return uiErr
	}

	for _, tmpl := range sentinelTemplates {
		if errors.Is(err, tmpl.target) {
			return tmpl.build(err)
		}
	}

	var runtimeErr runtime.Error
	if errors.As(err, &runtimeErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityFatal,
			Title:    "Runtime Error",
			Message:  runtimeErr.Error(),
			Recovery: []string{"Inspect the stack trace for the failing call"},
			Details:  err.Error(),
		}
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Validation Error",
			Message:  validationErr.Message,
			Recovery: []string{"Correct the field value and try again"},
			Details:  validationErr.Error(),
		}
	}

	return &UIError{
		Err:      err,
		Severity: SeverityError,
		Title:    "Unexpected Error",
		Message:  "An unexpected error occurred.",
		Recovery: []string{"Try again"},
		Details:  err.Error(),
	}
}

func (t sentinelTemplate) build(err error) *UIError {
	uiErr := &UIError{
		Err:      err,
		Severity: t.severity,
		Title:    t.title,
		Message:  t.message,
		Recovery: t.recovery,
	}
	if t.action != "" {
		uiErr.Actions = []ErrorAction{{Label: t.action}}
	}
	if t.details {
		uiErr.Details = err.Error()
	}
	return uiErr
}
