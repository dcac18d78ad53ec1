package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/locprof"
)

// Ensure LoggingExtractor implements locprof.ProfileExtractor.
var _ locprof.ProfileExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ProfileExtractor with logging. Sections that
// failed to extract are reported at warning level.
type LoggingExtractor struct {
	next   locprof.ProfileExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next locprof.ProfileExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the extracted profile name and duration.
func (e *LoggingExtractor) Extract(html, sourceURL string) (capture *locprof.Capture, err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Error("extract",
				"url", sourceURL,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		e.logger.Info("extract",
			"url", sourceURL,
			"name", capture.Name(),
			"duration", time.Since(begin),
		)
		if len(capture.FailedSections) > 0 {
			e.logger.Warn("extract sections failed",
				"url", sourceURL,
				"sections", capture.FailedSections,
			)
		}
	}(time.Now())
	return e.next.Extract(html, sourceURL)
}
