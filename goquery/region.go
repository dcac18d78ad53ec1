package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locprof"
)

var _ locprof.LabeledRegion = (*Region)(nil)

// logoSelector matches the elements that may carry an organization logo label.
const logoSelector = `figure[aria-label], svg[aria-label], li-icon[aria-label], [role="img"][aria-label], img[alt]`

// Region is a top-level section of a profile page.
type Region struct {
	sel *goquery.Selection
	doc *Document
}

// Heading returns the text of the first h1, h2 or h3 in the region, or ""
// when it has none.
func (r *Region) Heading() string {
	return innerText(r.sel.Find("h1, h2, h3").First())
}

// BodyText returns the region's normalized visible text with the heading
// removed once.
func (r *Region) BodyText() string {
	return locprof.StripHeading(innerText(r.sel), r.Heading())
}

// Anchors returns the region's links whose text is longer than minLen runes,
// skipping "Show all" and "Show more" controls.
func (r *Region) Anchors(minLen int) []locprof.AnchorEntry {
	entries := []locprof.AnchorEntry{}
	r.sel.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		text := innerText(a)
		if locprof.RuneLen(text) <= minLen || locprof.IsShowMore(text) {
			return
		}
		href, _ := a.Attr("href")
		entries = append(entries, locprof.AnchorEntry{Text: text, Path: r.doc.resolvePath(href)})
	})
	return entries
}

// Logos returns the distinct accessible labels of logo images in the region,
// in document order.
func (r *Region) Logos() []string {
	logos := []string{}
	seen := make(map[string]struct{})
	r.sel.Find(logoSelector).Each(func(_ int, s *goquery.Selection) {
		label := logoLabel(s)
		if label == "" {
			return
		}
		if _, ok := seen[label]; ok {
			return
		}
		seen[label] = struct{}{}
		logos = append(logos, label)
	})
	return logos
}

func logoLabel(s *goquery.Selection) string {
	if goquery.NodeName(s) == "img" {
		alt := strings.TrimSpace(s.AttrOr("alt", ""))
		if !strings.HasSuffix(strings.ToLower(alt), "logo") {
			return ""
		}
		return alt
	}
	return strings.TrimSpace(s.AttrOr("aria-label", ""))
}

// Item is a list item of a region: its text and its first link.
type Item struct {
	Text string
	Path *string
}

// Items returns the outermost list items of the region. Nested lists are
// folded into their parent item's text.
func (r *Region) Items() []Item {
	var items []Item
	r.sel.Find("li").Each(func(_ int, li *goquery.Selection) {
		if li.ParentsUntilSelection(r.sel).Filter("li").Length() > 0 {
			return
		}
		item := Item{Text: innerText(li)}
		if href, ok := li.Find("a[href]").First().Attr("href"); ok {
			item.Path = r.doc.resolvePath(href)
		}
		items = append(items, item)
	})
	return items
}
