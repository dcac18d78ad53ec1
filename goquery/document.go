// Package goquery implements locprof.ProfileExtractor over the rendered
// page DOM using goquery. It locates sections by heading text and feeds
// their text and links to the segmentation algorithms in package locprof.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locprof"
)

// Document is a parsed profile page. It is read-only after construction and
// safe for concurrent use.
type Document struct {
	doc  *goquery.Document
	base *url.URL
}

// NewDocument parses html. sourceURL is used to resolve relative links; it
// may be empty or unparsable, in which case links keep their raw paths.
func NewDocument(html string, sourceURL string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, locprof.Errorf(locprof.EINVALID, "failed to parse HTML: %v", err)
	}

	d := &Document{doc: doc}
	if u, err := url.Parse(sourceURL); err == nil && sourceURL != "" {
		d.base = u
	}
	return d, nil
}

// Regions returns the top-level sections of the page in document order.
// A section nested inside another section is part of its parent's region.
func (d *Document) Regions() []*Region {
	var regions []*Region
	d.doc.Find("section").Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered("section").Length() > 0 {
			return
		}
		regions = append(regions, &Region{sel: s, doc: d})
	})
	return regions
}

// Locate returns the first region whose heading starts with label, or nil
// when the page has no such section.
func (d *Document) Locate(label string) *Region {
	for _, r := range d.Regions() {
		if locprof.HasLabel(r, label) {
			return r
		}
	}
	return nil
}

// First returns the first region of the page, or nil for a page without sections.
func (d *Document) First() *Region {
	regions := d.Regions()
	if len(regions) == 0 {
		return nil
	}
	return regions[0]
}

// resolvePath resolves href against the document URL and returns its path.
// Returns nil when href cannot be parsed or has no path.
func (d *Document) resolvePath(href string) *string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return nil
	}
	if d.base != nil {
		ref = d.base.ResolveReference(ref)
	}
	if ref.Path == "" {
		return nil
	}
	path := ref.Path
	return &path
}
