package mock

import (
	"context"

	"github.com/arcigy/coldlead"
)

var (
	_ coldlead.SentenceGenerator = (*SentenceGenerator)(nil)
	_ coldlead.NameGenerator     = (*NameGenerator)(nil)
	_ coldlead.SentenceCache     = (*SentenceCache)(nil)
)

// SentenceGenerator is a mock implementation of coldlead.SentenceGenerator.
type SentenceGenerator struct {
	GenerateSentenceFn func(ctx context.Context, req *coldlead.SentenceRequest) (string, error)
}

func (g *SentenceGenerator) GenerateSentence(ctx context.Context, req *coldlead.SentenceRequest) (string, error) {
	return g.GenerateSentenceFn(ctx, req)
}

// NameGenerator is a mock implementation of coldlead.NameGenerator.
type NameGenerator struct {
	GenerateNameFn func(ctx context.Context, title, website string) (string, error)
}

func (g *NameGenerator) GenerateName(ctx context.Context, title, website string) (string, error) {
	return g.GenerateNameFn(ctx, title, website)
}

// SentenceCache is a mock implementation of coldlead.SentenceCache.
type SentenceCache struct {
	GetSentenceFn func(ctx context.Context, key string) (string, bool, error)
	PutSentenceFn func(ctx context.Context, key, sentence string) error
}

func (c *SentenceCache) GetSentence(ctx context.Context, key string) (string, bool, error) {
	return c.GetSentenceFn(ctx, key)
}

func (c *SentenceCache) PutSentence(ctx context.Context, key, sentence string) error {
	return c.PutSentenceFn(ctx, key, sentence)
}
