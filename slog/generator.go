package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/arcigy/coldlead"
)

var (
	_ coldlead.SentenceGenerator = (*LoggingSentenceGenerator)(nil)
	_ coldlead.NameGenerator     = (*LoggingNameGenerator)(nil)
)

// LoggingSentenceGenerator wraps a SentenceGenerator with logging.
type LoggingSentenceGenerator struct {
	next   coldlead.SentenceGenerator
	logger *slog.Logger
}

// NewLoggingSentenceGenerator creates a new LoggingSentenceGenerator.
func NewLoggingSentenceGenerator(next coldlead.SentenceGenerator, logger *slog.Logger) *LoggingSentenceGenerator {
	return &LoggingSentenceGenerator{next: next, logger: logger}
}

// GenerateSentence delegates to the wrapped generator and logs the operation.
func (g *LoggingSentenceGenerator) GenerateSentence(ctx context.Context, req *coldlead.SentenceRequest) (sentence string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate sentence",
			"name", req.Name,
			"category", req.Category,
			"chars", len([]rune(sentence)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateSentence(ctx, req)
}

// LoggingNameGenerator wraps a NameGenerator with logging.
type LoggingNameGenerator struct {
	next   coldlead.NameGenerator
	logger *slog.Logger
}

// NewLoggingNameGenerator creates a new LoggingNameGenerator.
func NewLoggingNameGenerator(next coldlead.NameGenerator, logger *slog.Logger) *LoggingNameGenerator {
	return &LoggingNameGenerator{next: next, logger: logger}
}

// GenerateName delegates to the wrapped generator and logs the operation.
func (g *LoggingNameGenerator) GenerateName(ctx context.Context, title, website string) (name string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate name",
			"title", title,
			"website", website,
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateName(ctx, title, website)
}
