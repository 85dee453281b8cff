package report

import (
	"fmt"
	"runtime/debug"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/shhac/whoops/internal/domain"
)

// RecordDemo records two sample reports: an index-out-of-range panic and a
// wrapped gRPC Unavailable error carrying retry and error-info details.
func RecordDemo(rec *Recorder) ([]domain.Report, error) {
	p, err := demoPanic(rec)
	if err != nil {
		return nil, fmt.Errorf("record demo panic: %w", err)
	}
	e, err := rec.RecordError(demoStatusError())
	if err != nil {
		return nil, fmt.Errorf("record demo error: %w", err)
	}
	return []domain.Report{p, e}, nil
}

func demoPanic(rec *Recorder) (rep domain.Report, err error) {
	defer func() {
		if v := recover(); v != nil {
			rep, err = rec.RecordPanic(v, debug.Stack())
		}
	}()

	items := []string{"a", "b"}
	i := len(items) + 1
	_ = items[i]
	return rep, nil
}

func demoStatusError() error {
	st := status.New(codes.Unavailable, "connection refused: dial tcp 127.0.0.1:50051")
	if detailed, err := st.WithDetails(
		&errdetails.RetryInfo{RetryDelay: durationpb.New(5 * time.Second)},
		&errdetails.ErrorInfo{
			Reason:   "BACKEND_DOWN",
			Domain:   "inventory.example.com",
			Metadata: map[string]string{"region": "eu-west-1"},
		},
	); err == nil {
		st = detailed
	}
	return fmt.Errorf("refresh inventory: %w", st.Err())
}
