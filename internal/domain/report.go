package domain

import "time"

// Report is a captured crash or error with the context needed to diagnose it.
type Report struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Kind      string    `json:"kind"`  // "panic" or "error"
	Title     string    `json:"title"` // Short user-facing title from classification
	Type      string    `json:"type"`  // Go type of the panic value or error
	Message   string    `json:"message"`
	Stack     string    `json:"stack"`
	Goroutine string    `json:"goroutine,omitempty"` // Header line of the failing goroutine

	Device      Device      `json:"device"`
	Application Application `json:"application"`
	Status      *Status     `json:"status,omitempty"` // Set when the error carried a gRPC status
}

// Device describes the machine the report was captured on.
type Device struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	GoVersion string `json:"go_version"`
	NumCPU    int    `json:"num_cpu"`
	Hostname  string `json:"hostname,omitempty"`
}

// Application describes the binary that crashed.
type Application struct {
	Name     string            `json:"name"`
	Version  string            `json:"version"`
	Module   string            `json:"module,omitempty"`
	Settings map[string]string `json:"settings,omitempty"` // Build settings (vcs.revision, -tags, ...)
}

// Status is a gRPC status attached to an error report.
type Status struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"` // Human-readable rich details
	Proto   string `json:"proto,omitempty"`   // google.rpc.Status rendered as JSON
}

// Report kinds.
const (
	KindPanic = "panic"
	KindError = "error"
)
