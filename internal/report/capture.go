// Package report turns panics and errors into crash reports.
package report

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/shhac/whoops/internal/domain"
	apperrors "github.com/shhac/whoops/internal/errors"
)

// Capturer builds reports stamped with application identity.
type Capturer struct {
	AppName    string
	AppVersion string

	now      func() time.Time
	hostname func() (string, error)
	build    func() (*debug.BuildInfo, bool)
}

// NewCapturer creates a Capturer for the named application.
func NewCapturer(appName, version string) *Capturer {
	return &Capturer{
		AppName:    appName,
		AppVersion: version,
		now:        time.Now,
		hostname:   os.Hostname,
		build:      debug.ReadBuildInfo,
	}
}

// FromPanic builds a report for a recovered panic value and the stack
// captured in the deferred function.
func (c *Capturer) FromPanic(value any, stack []byte) domain.Report {
	r := c.base(domain.KindPanic)
	r.Type = fmt.Sprintf("%T", value)
	r.Message = fmt.Sprint(value)
	r.Stack = string(stack)
	r.Goroutine = goroutineHeader(r.Stack)

	if err, ok := value.(error); ok {
		c.classify(&r, err)
	} else {
		r.Title = "Panic"
	}
	return r
}

// FromError builds a report for err with the caller's stack.
func (c *Capturer) FromError(err error) domain.Report {
	r := c.base(domain.KindError)
	r.Type = fmt.Sprintf("%T", innermost(err))
	r.Message = err.Error()
	r.Stack = string(debug.Stack())
	r.Goroutine = goroutineHeader(r.Stack)
	c.classify(&r, err)
	return r
}

func (c *Capturer) base(kind string) domain.Report {
	r := domain.Report{
		ID:        NewID(),
		Timestamp: c.now().UTC(),
		Kind:      kind,
		Device: domain.Device{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			GoVersion: runtime.Version(),
			NumCPU:    runtime.NumCPU(),
		},
		Application: domain.Application{
			Name:    c.AppName,
			Version: c.AppVersion,
		},
	}
	if host, err := c.hostname(); err == nil {
		r.Device.Hostname = host
	}
	if info, ok := c.build(); ok && info != nil {
		r.Application.Module = info.Main.Path
		if len(info.Settings) > 0 {
			r.Application.Settings = make(map[string]string, len(info.Settings))
			for _, s := range info.Settings {
				r.Application.Settings[s.Key] = s.Value
			}
		}
	}
	return r
}

func (c *Capturer) classify(r *domain.Report, err error) {
	r.Title = apperrors.ClassifyGRPCError(err).Title

	st, ok := status.FromError(err)
	if !ok {
		return
	}
	s := &domain.Status{
		Code:    st.Code().String(),
		Message: st.Message(),
		Details: apperrors.FormatStatus(st),
	}
	if b, err := (protojson.MarshalOptions{Multiline: true, Indent: "  "}).Marshal(st.Proto()); err == nil {
		s.Proto = string(b)
	}
	r.Status = s
}

// NewID returns a random 16 hex character report identifier.
func NewID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%016x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

// goroutineHeader returns the first line of a stack dump,
// e.g. "goroutine 1 [running]:".
func goroutineHeader(stack string) string {
	line, _, _ := strings.Cut(stack, "\n")
	if !strings.HasPrefix(line, "goroutine ") {
		return ""
	}
	return strings.TrimSuffix(line, ":")
}

func innermost(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
