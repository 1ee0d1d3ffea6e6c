package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/arcigy/coldlead"
)

var _ coldlead.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs website fetches. Lead websites fail often, so
// failures are logged at Warn and successes at Debug.
type LoggingFetcher struct {
	next   coldlead.Fetcher
	logger *slog.Logger
}

func NewLoggingFetcher(next coldlead.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelWarn
		}
		f.logger.Log(ctx, level, "fetch website",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
