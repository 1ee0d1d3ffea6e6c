// Package goquery extracts lead details from website HTML using goquery.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/arcigy/coldlead"
)

// Ensure DescriptionExtractor implements coldlead.DescriptionExtractor at compile time.
var _ coldlead.DescriptionExtractor = (*DescriptionExtractor)(nil)

// DescriptionSource defines where a description may be found on a page.
type DescriptionSource struct {
	Selector string
	// Attr is the attribute holding the text. Empty means the element text.
	Attr string
}

// DefaultSources are tried in order; the first non-empty text wins.
var DefaultSources = []DescriptionSource{
	{Selector: `meta[name="description"]`, Attr: "content"},
	{Selector: `meta[property="og:description"]`, Attr: "content"},
	{Selector: `meta[name="twitter:description"]`, Attr: "content"},
}

// minParagraphLen is the rune count a paragraph needs to stand in for a
// missing meta description.
const minParagraphLen = 40

// maxDescriptionLen caps stored descriptions.
const maxDescriptionLen = 500

// DescriptionExtractor implements coldlead.DescriptionExtractor.
type DescriptionExtractor struct {
	sources []DescriptionSource
}

// NewDescriptionExtractor creates a DescriptionExtractor trying sources in
// order, or DefaultSources when none are given.
func NewDescriptionExtractor(sources ...DescriptionSource) *DescriptionExtractor {
	if len(sources) == 0 {
		sources = DefaultSources
	}
	return &DescriptionExtractor{sources: sources}
}

// ExtractDescription returns the page's meta description, falling back to
// the first substantial paragraph of the main content.
func (e *DescriptionExtractor) ExtractDescription(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", coldlead.Errorf(coldlead.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, src := range e.sources {
		var text string
		doc.Find(src.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if src.Attr != "" {
				text, _ = sel.Attr(src.Attr)
			} else {
				text = sel.Text()
			}
			text = normalizeSpace(text)
			return text == ""
		})
		if text != "" {
			return truncate(text), nil
		}
	}

	if text := firstParagraph(doc); text != "" {
		return truncate(text), nil
	}

	return "", coldlead.Errorf(coldlead.ENOTFOUND, "page has no description")
}

func firstParagraph(doc *goquery.Document) string {
	var text string
	doc.Find("main p, article p, body p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		t := normalizeSpace(sel.Text())
		if utf8.RuneCountInString(t) >= minParagraphLen {
			text = t
			return false
		}
		return true
	})
	return text
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to maxDescriptionLen runes at a word boundary.
func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxDescriptionLen {
		return s
	}
	runes := []rune(s)[:maxDescriptionLen]
	cut := string(runes)
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
