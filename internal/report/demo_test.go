package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/whoops/internal/domain"
	"github.com/shhac/whoops/internal/logging"
)

func TestRecordDemo(t *testing.T) {
	saver := &fakeSaver{}
	rec := NewRecorder(newTestCapturer(), saver, logging.NewNopLogger())

	reports, err := RecordDemo(rec)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Len(t, saver.saved, 2)

	p := reports[0]
	assert.Equal(t, domain.KindPanic, p.Kind)
	assert.Equal(t, "Runtime Error", p.Title)
	assert.Contains(t, p.Message, "index out of range")
	assert.NotEmpty(t, p.Stack)

	e := reports[1]
	assert.Equal(t, domain.KindError, e.Kind)
	require.NotNil(t, e.Status)
	assert.Equal(t, "Unavailable", e.Status.Code)
	assert.Contains(t, e.Status.Details, "BACKEND_DOWN")
	assert.Contains(t, e.Status.Proto, "RetryInfo")
}
