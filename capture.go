package locprof

import (
	"context"
	"time"
)

// Capture is one extraction run over a profile page: the assembled profile
// plus the metadata needed to transport or store it.
type Capture struct {
	ID          string    `json:"id,omitempty"`
	SourceURL   string    `json:"sourceUrl"`
	CapturedAt  time.Time `json:"capturedAt"`
	ContentHash string    `json:"contentHash,omitempty"`
	Profile     Profile   `json:"profile"`

	// FailedSections names the sections whose extractor faulted. Their
	// fields in Profile are nil.
	FailedSections []string `json:"failedSections,omitempty"`
}

// Validate returns an error if the capture contains invalid fields.
func (c *Capture) Validate() error {
	if c.SourceURL == "" {
		return Errorf(EINVALID, "capture source URL required")
	}
	if c.CapturedAt.IsZero() {
		return Errorf(EINVALID, "capture timestamp required")
	}
	return nil
}

// Name returns the extracted profile name or an empty string.
func (c *Capture) Name() string {
	if c.Profile.Header == nil || c.Profile.Header.Name == nil {
		return ""
	}
	return *c.Profile.Header.Name
}

// CaptureWriter writes captures to storage.
type CaptureWriter interface {
	CreateCapture(ctx context.Context, capture *Capture) error
}

// CaptureService represents a service for managing stored captures.
type CaptureService interface {
	// CreateCapture stores a new capture and assigns its ID.
	CreateCapture(ctx context.Context, capture *Capture) error

	// FindCaptureByID retrieves a capture by ID.
	// Returns ENOTFOUND if capture does not exist.
	FindCaptureByID(ctx context.Context, id string) (*Capture, error)

	// FindCaptures retrieves captures matching the filter, newest first.
	FindCaptures(ctx context.Context, filter CaptureFilter) ([]*Capture, error)

	// DeleteCapture permanently removes a capture.
	// Returns ENOTFOUND if capture does not exist.
	DeleteCapture(ctx context.Context, id string) error
}

// CaptureFilter represents a filter for FindCaptures.
type CaptureFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	Name      *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
