package goquery

import (
	"time"

	"github.com/fwojciec/locprof"
	"golang.org/x/sync/errgroup"
)

var _ locprof.ProfileExtractor = (*Extractor)(nil)

// section extracts one part of a profile. Each section writes only its own
// Profile field, and only after its extraction has completed.
type section struct {
	name    string
	extract func(d *Document, p *locprof.Profile)
}

var defaultSections = []section{
	{"header", func(d *Document, p *locprof.Profile) { p.Header = extractHeader(d) }},
	{"about", func(d *Document, p *locprof.Profile) { p.About = extractAbout(d) }},
	{"experience", func(d *Document, p *locprof.Profile) { p.Experience = extractExperience(d) }},
	{"education", func(d *Document, p *locprof.Profile) { p.Education = extractEducation(d) }},
	{"certifications", func(d *Document, p *locprof.Profile) { p.Certifications = extractCertifications(d) }},
	{"skills", func(d *Document, p *locprof.Profile) { p.Skills = extractSkills(d) }},
	{"recommendations", func(d *Document, p *locprof.Profile) { p.Recommendations = extractRecommendations(d) }},
	{"languages", func(d *Document, p *locprof.Profile) { p.Languages = extractLanguages(d) }},
	{"activity", func(d *Document, p *locprof.Profile) { p.Activity = extractActivity(d) }},
	{"featured", func(d *Document, p *locprof.Profile) { p.Featured = extractFeatured(d) }},
	{"interests", func(d *Document, p *locprof.Profile) { p.Interests = extractInterests(d) }},
}

// Extractor assembles a Profile from a rendered profile page.
// The zero value is ready to use.
type Extractor struct {
	// Concurrent runs the section extractors in parallel.
	Concurrent bool

	// Now returns the capture timestamp. Defaults to time.Now.
	Now func() time.Time

	sections []section
}

// NewExtractor returns an Extractor that runs sections sequentially.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and runs every section extractor. A section that
// fails is left nil and named in Capture.FailedSections; the others are
// unaffected. Only an unparsable document returns an error.
func (e *Extractor) Extract(html, sourceURL string) (*locprof.Capture, error) {
	doc, err := NewDocument(html, sourceURL)
	if err != nil {
		return nil, err
	}

	c := &locprof.Capture{
		SourceURL:  sourceURL,
		CapturedAt: e.now(),
	}

	sections := e.sections
	if sections == nil {
		sections = defaultSections
	}

	failed := make([]bool, len(sections))
	if e.Concurrent {
		var g errgroup.Group
		for i, s := range sections {
			g.Go(func() error {
				failed[i] = !runSection(s, doc, &c.Profile)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, s := range sections {
			failed[i] = !runSection(s, doc, &c.Profile)
		}
	}

	for i, s := range sections {
		if failed[i] {
			c.FailedSections = append(c.FailedSections, s.name)
		}
	}
	return c, nil
}

// runSection reports whether s completed without panicking.
func runSection(s section, d *Document, p *locprof.Profile) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	s.extract(d, p)
	return true
}

func (e *Extractor) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
