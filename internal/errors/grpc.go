package errors

import (
	"fmt"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusTemplate is the presentation for one gRPC code.
type statusTemplate struct {
	severity ErrorSeverity
	title    string
	message  string // empty means use the status message
	recovery []string
	retry    bool
	// plainDetails shows only the status message instead of code + details.
	plainDetails bool
}

var statusTemplates = map[codes.Code]statusTemplate{
	codes.Unavailable: {
		severity: SeverityError,
		title:    "Service Unavailable",
		message:  "A downstream service was not responding.",
		recovery: []string{"Check that the service is running", "Verify the address and port"},
		retry:    true,
	},
	codes.DeadlineExceeded: {
		severity: SeverityError,
		title:    "Call Timeout",
		message:  "A call took too long to complete.",
		recovery: []string{"Increase the call deadline"},
		retry:    true,
	},
	codes.Unauthenticated: {
		severity: SeverityError,
		title:    "Authentication Required",
		message:  "A call was rejected for missing credentials.",
		recovery: []string{"Check the credentials attached to outgoing calls"},
	},
	codes.PermissionDenied: {
		severity: SeverityError,
		title:    "Access Denied",
		message:  "The caller lacked permission for the failing call.",
		recovery: []string{"Contact the service administrator"},
	},
	codes.InvalidArgument: {
		severity:     SeverityError,
		title:        "Invalid Argument",
		message:      "A call was made with invalid data.",
		recovery:     []string{"Check field values", "See details for specifics"},
		plainDetails: true,
	},
	codes.Internal: {
		severity: SeverityError,
		title:    "Internal Error",
		message:  "A service encountered an unexpected error.",
		recovery: []string{"Try again later"},
		retry:    true,
	},
	codes.Unimplemented: {
		severity: SeverityWarning,
		title:    "Method Not Available",
		message:  "The called method is not implemented by the service.",
		recovery: []string{"Check method name", "Verify service version"},
	},
	codes.NotFound: {
		severity: SeverityError,
		title:    "Not Found",
		message:  "The requested resource was not found.",
		recovery: []string{"Check the call parameters"},
	},
	codes.AlreadyExists: {
		severity: SeverityError,
		title:    "Already Exists",
		message:  "The resource already exists.",
		recovery: []string{"Use a different identifier"},
	},
	codes.ResourceExhausted: {
		severity: SeverityError,
		title:    "Resource Exhausted",
		message:  "The service has insufficient resources.",
		recovery: []string{"Try again later", "Reduce request size"},
		retry:    true,
	},
	codes.FailedPrecondition: {
		severity:     SeverityError,
		title:        "Failed Precondition",
		message:      "The operation was rejected due to system state.",
		recovery:     []string{"Check system state"},
		plainDetails: true,
	},
	codes.Aborted: {
		severity: SeverityError,
		title:    "Operation Aborted",
		message:  "The operation was aborted, typically due to concurrency issues.",
		recovery: []string{"Try again"},
		retry:    true,
	},
	codes.OutOfRange: {
		severity:     SeverityError,
		title:        "Out of Range",
		message:      "A value is out of the valid range.",
		recovery:     []string{"Check input values"},
		plainDetails: true,
	},
	codes.DataLoss: {
		severity: SeverityFatal,
		title:    "Data Loss",
		message:  "Unrecoverable data loss or corruption.",
		recovery: []string{"Contact the service administrator immediately"},
	},
	codes.Canceled: {
		severity: SeverityInfo,
		title:    "Call Cancelled",
		message:  "The call was cancelled.",
		recovery: []string{},
	},
	codes.Unknown: {
		severity: SeverityError,
		title:    "Unknown Error",
		recovery: []string{"Try again"},
		retry:    true,
	},
}

// ClassifyGRPCError converts an error carrying a gRPC status into a UIError
// used to title crash reports. Errors without a status fall back to
// ClassifyError.
func ClassifyGRPCError(err error) *UIError {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return ClassifyError(err)
	}
	return classifyStatus(err, st)
}

func classifyStatus(err error, st *status.Status) *UIError {
	tmpl, ok := statusTemplates[st.Code()]
	if !ok {
		tmpl = statusTemplate{
			severity: SeverityError,
			title:    "Call Failed",
			recovery: []string{"Try again"},
		}
	}

	details := FormatStatus(st)
	if tmpl.plainDetails {
		details = st.Message()
	}
	message := tmpl.message
	if message == "" {
		message = st.Message()
	}

	uiErr := &UIError{
		Err:      err,
		Severity: tmpl.severity,
		Title:    tmpl.title,
		Message:  message,
		Recovery: tmpl.recovery,
		Details:  details,
	}
	if tmpl.retry {
		uiErr.Actions = []ErrorAction{{Label: "Retry"}}
	}
	return uiErr
}

// FormatStatus renders the code, message and rich details of a status.
func FormatStatus(st *status.Status) string {
	details := fmt.Sprintf("gRPC: %s - %s", st.Code(), st.Message())
	if extra := formatStatusDetails(st); extra != "" {
		details += "\n\n" + extra
	}
	return details
}

// formatStatusDetails extracts and formats rich error details from a gRPC status.
func formatStatusDetails(st *status.Status) string {
	details := st.Details()
	if len(details) == 0 {
		return ""
	}

	var sections []string

	for _, detail := range details {
		switch d := detail.(type) {
		case *errdetails.BadRequest:
			if fvs := d.GetFieldViolations(); len(fvs) > 0 {
				var lines []string
				lines = append(lines, "Field Violations:")
				for _, fv := range fvs {
					line := fmt.Sprintf("  %s: %s", fv.GetField(), fv.GetDescription())
					if r := fv.GetReason(); r != "" {
						line += fmt.Sprintf(" (reason: %s)", r)
					}
					lines = append(lines, line)
				}
				sections = append(sections, strings.Join(lines, "\n"))
			}

		case *errdetails.DebugInfo:
			var lines []string
			lines = append(lines, "Debug Info:")
			if d.GetDetail() != "" {
				lines = append(lines, "  "+d.GetDetail())
			}
			for _, entry := range d.GetStackEntries() {
				lines = append(lines, "  "+entry)
			}
			sections = append(sections, strings.Join(lines, "\n"))

		case *errdetails.ErrorInfo:
			var lines []string
			lines = append(lines, fmt.Sprintf("Error Info: %s", d.GetReason()))
			if d.GetDomain() != "" {
				lines = append(lines, fmt.Sprintf("  Domain: %s", d.GetDomain()))
			}
			for k, v := range d.GetMetadata() {
				lines = append(lines, fmt.Sprintf("  %s: %s", k, v))
			}
			sections = append(sections, strings.Join(lines, "\n"))

		case *errdetails.RetryInfo:
			if delay := d.GetRetryDelay(); delay != nil {
				sections = append(sections, fmt.Sprintf("Retry after: %v", delay.AsDuration()))
			}

		case *errdetails.PreconditionFailure:
			if vs := d.GetViolations(); len(vs) > 0 {
				var lines []string
				lines = append(lines, "Precondition Failures:")
				for _, v := range vs {
					lines = append(lines, fmt.Sprintf("  [%s] %s: %s", v.GetType(), v.GetSubject(), v.GetDescription()))
				}
				sections = append(sections, strings.Join(lines, "\n"))
			}

		case *errdetails.QuotaFailure:
			if vs := d.GetViolations(); len(vs) > 0 {
				var lines []string
				lines = append(lines, "Quota Failures:")
				for _, v := range vs {
					lines = append(lines, fmt.Sprintf("  %s: %s", v.GetSubject(), v.GetDescription()))
				}
				sections = append(sections, strings.Join(lines, "\n"))
			}

		case *errdetails.RequestInfo:
			sections = append(sections, fmt.Sprintf("Request ID: %s", d.GetRequestId()))

		case *errdetails.ResourceInfo:
			sections = append(sections, fmt.Sprintf("Resource: %s/%s: %s", d.GetResourceType(), d.GetResourceName(), d.GetDescription()))

		case *errdetails.Help:
			if links := d.GetLinks(); len(links) > 0 {
				var lines []string
				lines = append(lines, "Help:")
				for _, link := range links {
					lines = append(lines, fmt.Sprintf("  %s: %s", link.GetDescription(), link.GetUrl()))
				}
				sections = append(sections, strings.Join(lines, "\n"))
			}

		default:
			sections = append(sections, fmt.Sprintf("Detail: %v", detail))
		}
	}

	return strings.Join(sections, "\n\n")
}
