package mock

import (
	"context"

	"github.com/arcigy/coldlead"
)

var _ coldlead.PromptEstimator = (*PromptEstimator)(nil)

type PromptEstimator struct {
	EstimateSentenceFn func(ctx context.Context, req *coldlead.SentenceRequest) (int, error)
}

func (e *PromptEstimator) EstimateSentence(ctx context.Context, req *coldlead.SentenceRequest) (int, error) {
	return e.EstimateSentenceFn(ctx, req)
}
