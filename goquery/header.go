package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locprof"
)

// videoMarker is the class substring of the embedded video player. Headings
// inside the player are captions, not the profile name.
const videoMarker = "video"

// extractHeader reads the profile banner from the first region of the page.
// Returns nil when the page has no sections.
func extractHeader(d *Document) *locprof.Header {
	r := d.First()
	if r == nil {
		return nil
	}

	h := locprof.AssignHeaderFields(r.paragraphs(), r.linkTexts())
	h.Name = r.name()
	h.ProfilePhotoURL, h.CoverPhotoURL = r.photos()
	return &h
}

func (r *Region) name() *string {
	var name *string
	r.sel.Find("h1, h2").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if inVideoPlayer(s) {
			return true
		}
		if text := innerText(s); text != "" {
			name = &text
			return false
		}
		return true
	})
	return name
}

func inVideoPlayer(s *goquery.Selection) bool {
	if strings.Contains(s.AttrOr("class", ""), videoMarker) {
		return true
	}
	return s.ParentsFiltered(`[class*="` + videoMarker + `"]`).Length() > 0
}

// paragraphs returns the texts of p elements and of leaf div and span
// elements outside paragraphs and headings, in document order.
func (r *Region) paragraphs() []string {
	var texts []string
	r.sel.Find("p, div, span").Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) != "p" {
			if s.Children().Length() > 0 {
				return
			}
			if s.ParentsFiltered("p, h1, h2, h3, h4, h5, h6").Length() > 0 {
				return
			}
		}
		if text := innerText(s); text != "" {
			texts = append(texts, text)
		}
	})
	return texts
}

func (r *Region) linkTexts() []string {
	var texts []string
	r.sel.Find("a").Each(func(_ int, s *goquery.Selection) {
		if text := innerText(s); text != "" {
			texts = append(texts, text)
		}
	})
	return texts
}

// photos returns the profile photo and cover image sources of the banner.
func (r *Region) photos() (profile, cover *string) {
	r.sel.Find("img").Each(func(_ int, img *goquery.Selection) {
		alt := img.AttrOr("alt", "")
		src, ok := img.Attr("src")
		if !ok || src == "" {
			return
		}
		switch {
		case strings.Contains(alt, "Cover"):
			if cover == nil {
				cover = &src
			}
		case !strings.Contains(alt, "logo") && strings.Contains(src, "profile"):
			if profile == nil {
				profile = &src
			}
		}
	})
	return profile, cover
}
