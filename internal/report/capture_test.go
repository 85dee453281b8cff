package report

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shhac/whoops/internal/domain"
)

func newTestCapturer() *Capturer {
	c := NewCapturer("whoops-test", "1.2.3")
	c.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	c.hostname = func() (string, error) { return "devbox", nil }
	c.build = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main:     debug.Module{Path: "github.com/shhac/whoops"},
			Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
		}, true
	}
	return c
}

func TestCapturer_FromPanic(t *testing.T) {
	c := newTestCapturer()
	stack := []byte("goroutine 7 [running]:\nmain.main()\n")

	r := c.FromPanic("something broke", stack)

	assert.Equal(t, domain.KindPanic, r.Kind)
	assert.Equal(t, "Panic", r.Title)
	assert.Equal(t, "string", r.Type)
	assert.Equal(t, "something broke", r.Message)
	assert.Equal(t, "goroutine 7 [running]", r.Goroutine)
	assert.Len(t, r.ID, 16)
	assert.Equal(t, time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC), r.Timestamp)

	assert.Equal(t, runtime.GOOS, r.Device.OS)
	assert.Equal(t, runtime.GOARCH, r.Device.Arch)
	assert.Equal(t, "devbox", r.Device.Hostname)
	assert.Equal(t, "whoops-test", r.Application.Name)
	assert.Equal(t, "1.2.3", r.Application.Version)
	assert.Equal(t, "github.com/shhac/whoops", r.Application.Module)
	assert.Equal(t, "abc123", r.Application.Settings["vcs.revision"])
	assert.Nil(t, r.Status)
}

func TestCapturer_FromPanicWithRuntimeError(t *testing.T) {
	c := newTestCapturer()

	var r domain.Report
	func() {
		defer func() {
			r = c.FromPanic(recover(), debug.Stack())
		}()
		var s []int
		_ = s[3]
	}()

	assert.Equal(t, "Runtime Error", r.Title)
	assert.Contains(t, r.Message, "index out of range")
	assert.Contains(t, r.Stack, "goroutine")
}

func TestCapturer_FromErrorWithStatus(t *testing.T) {
	c := newTestCapturer()
	err := fmt.Errorf("fetch profile: %w", status.Error(codes.Unavailable, "connection refused"))

	r := c.FromError(err)

	assert.Equal(t, domain.KindError, r.Kind)
	assert.Equal(t, "Service Unavailable", r.Title)
	require.NotNil(t, r.Status)
	assert.Equal(t, "Unavailable", r.Status.Code)
	assert.Contains(t, r.Status.Message, "connection refused")
	assert.Contains(t, r.Status.Proto, "connection refused")
}

func TestCapturer_FromPlainError(t *testing.T) {
	c := newTestCapturer()
	r := c.FromError(fmt.Errorf("outer: %w", errors.New("inner")))

	assert.Equal(t, "Unexpected Error", r.Title)
	assert.Equal(t, "*errors.errorString", r.Type)
	assert.Equal(t, "outer: inner", r.Message)
	assert.Nil(t, r.Status)
}

func TestNewID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestGoroutineHeader(t *testing.T) {
	assert.Equal(t, "goroutine 1 [running]", goroutineHeader("goroutine 1 [running]:\nmain.main()"))
	assert.Equal(t, "", goroutineHeader("not a stack"))
}
