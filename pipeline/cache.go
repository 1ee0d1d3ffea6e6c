package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/arcigy/coldlead"
	"github.com/cespare/xxhash/v2"
)

var _ coldlead.SentenceGenerator = (*CachedGenerator)(nil)

// CachedGenerator serves sentences from a cache and asks Next only on a
// miss. Entries are keyed by the request and the model, so switching models
// never returns another model's sentences.
type CachedGenerator struct {
	Next  coldlead.SentenceGenerator
	Cache coldlead.SentenceCache
	Model string
}

// GenerateSentence implements coldlead.SentenceGenerator. Cache failures
// are ignored; the generator is called as if the entry were missing.
func (g *CachedGenerator) GenerateSentence(ctx context.Context, req *coldlead.SentenceRequest) (string, error) {
	key := CacheKey(req, g.Model)

	if sentence, ok, err := g.Cache.GetSentence(ctx, key); err == nil && ok {
		return sentence, nil
	}

	sentence, err := g.Next.GenerateSentence(ctx, req)
	if err != nil {
		return "", err
	}

	_ = g.Cache.PutSentence(ctx, key, sentence)
	return sentence, nil
}

// CacheKey fingerprints a sentence request for a model using xxhash.
func CacheKey(req *coldlead.SentenceRequest, model string) string {
	s := strings.Join([]string{model, req.Name, req.Description, req.City, req.Category}, "\x00")
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}
