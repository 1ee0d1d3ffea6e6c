package mock

import "github.com/arcigy/coldlead"

var _ coldlead.DescriptionExtractor = (*DescriptionExtractor)(nil)

// DescriptionExtractor is a mock implementation of coldlead.DescriptionExtractor.
type DescriptionExtractor struct {
	ExtractDescriptionFn func(html string) (string, error)
}

func (e *DescriptionExtractor) ExtractDescription(html string) (string, error) {
	return e.ExtractDescriptionFn(html)
}
