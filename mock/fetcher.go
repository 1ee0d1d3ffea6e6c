package mock

import (
	"context"

	"github.com/arcigy/coldlead"
)

var _ coldlead.Fetcher = (*Fetcher)(nil)

type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
