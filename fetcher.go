package coldlead

import "context"

// Fetcher retrieves the HTML of a lead's website.
type Fetcher interface {
	// Fetch returns the HTML served at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// DescriptionExtractor pulls a short self-description out of a web page,
// such as its meta description.
type DescriptionExtractor interface {
	// ExtractDescription returns the page's description.
	// Returns ENOTFOUND if the page carries none.
	ExtractDescription(html string) (string, error)
}
