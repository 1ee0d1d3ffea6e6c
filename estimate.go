package coldlead

import "context"

// PromptEstimator sizes sentence requests before any of them are sent.
type PromptEstimator interface {
	// EstimateSentence returns the input tokens a single sentence request
	// costs, system instruction included.
	EstimateSentence(ctx context.Context, req *SentenceRequest) (int, error)
}
