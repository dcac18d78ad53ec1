package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locprof"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// inlineElements do not break text runs. Every other element is treated as
// a block and separated from its neighbours by a space, which approximates
// what a browser reports as the rendered text.
var inlineElements = map[atom.Atom]bool{
	atom.A:      true,
	atom.Abbr:   true,
	atom.B:      true,
	atom.Bdi:    true,
	atom.Bdo:    true,
	atom.Cite:   true,
	atom.Code:   true,
	atom.Data:   true,
	atom.Dfn:    true,
	atom.Em:     true,
	atom.I:      true,
	atom.Kbd:    true,
	atom.Mark:   true,
	atom.Q:      true,
	atom.S:      true,
	atom.Samp:   true,
	atom.Small:  true,
	atom.Span:   true,
	atom.Strong: true,
	atom.Sub:    true,
	atom.Sup:    true,
	atom.Time:   true,
	atom.U:      true,
	atom.Var:    true,
}

// skippedElements never contribute visible text.
var skippedElements = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
}

// innerText returns the whitespace-normalized visible text of the selection.
func innerText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeText(&b, n)
	}
	return locprof.NormalizeSpace(b.String())
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		if skippedElements[n.DataAtom] {
			return
		}
	}

	block := n.Type == html.ElementNode && !inlineElements[n.DataAtom]
	if block {
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
	if block {
		b.WriteByte(' ')
	}
}
