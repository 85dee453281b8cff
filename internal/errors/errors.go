// Package errors defines the sentinel errors of whoops and classifies
// arbitrary errors, including gRPC statuses, into titled UIErrors used for
// crash report titles and error dialogs.
package errors

import "errors"

// Sentinel errors for storage failures.
var (
	ErrReportNotFound     = errors.New("report not found")
	ErrInvalidReportID    = errors.New("invalid report id")
	ErrStorageUnavailable = errors.New("report storage unavailable")
)

// ValidationError represents a field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
