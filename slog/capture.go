package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locprof"
)

// Ensure LoggingCaptureService implements locprof.CaptureService.
var _ locprof.CaptureService = (*LoggingCaptureService)(nil)

// LoggingCaptureService wraps a CaptureService with logging of writes.
// Reads are delegated without logging.
type LoggingCaptureService struct {
	next   locprof.CaptureService
	logger *slog.Logger
}

// NewLoggingCaptureService creates a new LoggingCaptureService.
func NewLoggingCaptureService(next locprof.CaptureService, logger *slog.Logger) *LoggingCaptureService {
	return &LoggingCaptureService{next: next, logger: logger}
}

// CreateCapture logs the stored capture's ID and source.
func (s *LoggingCaptureService) CreateCapture(ctx context.Context, capture *locprof.Capture) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create capture",
			"id", capture.ID,
			"url", capture.SourceURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateCapture(ctx, capture)
}

func (s *LoggingCaptureService) FindCaptureByID(ctx context.Context, id string) (*locprof.Capture, error) {
	return s.next.FindCaptureByID(ctx, id)
}

func (s *LoggingCaptureService) FindCaptures(ctx context.Context, filter locprof.CaptureFilter) ([]*locprof.Capture, error) {
	return s.next.FindCaptures(ctx, filter)
}

// DeleteCapture logs the deleted capture's ID.
func (s *LoggingCaptureService) DeleteCapture(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete capture",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteCapture(ctx, id)
}
