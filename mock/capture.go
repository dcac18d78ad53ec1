package mock

import (
	"context"

	"github.com/fwojciec/locprof"
)

var _ locprof.CaptureService = (*CaptureService)(nil)

// CaptureService is a mock implementation of locprof.CaptureService.
type CaptureService struct {
	CreateCaptureFn   func(ctx context.Context, capture *locprof.Capture) error
	FindCaptureByIDFn func(ctx context.Context, id string) (*locprof.Capture, error)
	FindCapturesFn    func(ctx context.Context, filter locprof.CaptureFilter) ([]*locprof.Capture, error)
	DeleteCaptureFn   func(ctx context.Context, id string) error
}

func (s *CaptureService) CreateCapture(ctx context.Context, capture *locprof.Capture) error {
	return s.CreateCaptureFn(ctx, capture)
}

func (s *CaptureService) FindCaptureByID(ctx context.Context, id string) (*locprof.Capture, error) {
	return s.FindCaptureByIDFn(ctx, id)
}

func (s *CaptureService) FindCaptures(ctx context.Context, filter locprof.CaptureFilter) ([]*locprof.Capture, error) {
	return s.FindCapturesFn(ctx, filter)
}

func (s *CaptureService) DeleteCapture(ctx context.Context, id string) error {
	return s.DeleteCaptureFn(ctx, id)
}

var _ locprof.CaptureWriter = (*CaptureWriter)(nil)

// CaptureWriter is a mock implementation of locprof.CaptureWriter.
type CaptureWriter struct {
	CreateCaptureFn func(ctx context.Context, capture *locprof.Capture) error
}

func (w *CaptureWriter) CreateCapture(ctx context.Context, capture *locprof.Capture) error {
	return w.CreateCaptureFn(ctx, capture)
}
