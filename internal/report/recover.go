package report

import (
	"log/slog"
	"runtime/debug"

	"github.com/shhac/whoops/internal/domain"
)

// Saver persists reports. storage.Repository satisfies it.
type Saver interface {
	SaveReport(report domain.Report) error
}

// Recorder captures reports and saves them.
type Recorder struct {
	capturer *Capturer
	saver    Saver
	logger   *slog.Logger

	// Repanic re-raises a recovered panic after it is recorded.
	Repanic bool
}

// NewRecorder creates a Recorder.
func NewRecorder(capturer *Capturer, saver Saver, logger *slog.Logger) *Recorder {
	return &Recorder{capturer: capturer, saver: saver, logger: logger}
}

// Recover must be deferred directly. It records a panic in flight and
// swallows it unless Repanic is set.
//
//	defer recorder.Recover()
func (r *Recorder) Recover() {
	v := recover()
	if v == nil {
		return
	}
	r.recordPanic(v, debug.Stack())
	if r.Repanic {
		panic(v)
	}
}

// RecordError captures err and saves it. It returns the saved report.
func (r *Recorder) RecordError(err error) (domain.Report, error) {
	rep := r.capturer.FromError(err)
	return rep, r.save(rep)
}

// RecordPanic captures a panic value recovered by the caller.
func (r *Recorder) RecordPanic(value any, stack []byte) (domain.Report, error) {
	rep := r.capturer.FromPanic(value, stack)
	return rep, r.save(rep)
}

func (r *Recorder) recordPanic(value any, stack []byte) {
	if _, err := r.RecordPanic(value, stack); err != nil {
		r.logger.Error("failed to record panic", slog.Any("error", err))
	}
}

func (r *Recorder) save(rep domain.Report) error {
	if err := r.saver.SaveReport(rep); err != nil {
		return err
	}
	r.logger.Info("recorded report",
		slog.String("id", rep.ID),
		slog.String("kind", rep.Kind),
		slog.String("title", rep.Title))
	return nil
}
