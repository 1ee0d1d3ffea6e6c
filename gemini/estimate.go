package gemini

import (
	"context"

	"github.com/arcigy/coldlead"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ coldlead.PromptEstimator = (*Estimator)(nil)

// Estimator counts sentence prompts with the local Gemini tokenizer. It
// needs no API key and makes no generation requests.
type Estimator struct {
	tok *tokenizer.LocalTokenizer
}

// NewEstimator loads the tokenizer for model. Only some models ship a
// local vocabulary, so callers may retry with another one.
func NewEstimator(model string) (*Estimator, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &Estimator{tok: tok}, nil
}

// EstimateSentence counts the prompt GenerateSentence would send for req.
func (e *Estimator) EstimateSentence(ctx context.Context, req *coldlead.SentenceRequest) (int, error) {
	if req == nil {
		return 0, coldlead.Errorf(coldlead.EINVALID, "sentence request required")
	}

	contents := []*genai.Content{
		genai.NewContentFromText(BuildSentencePrompt(req), "user"),
	}
	config := &genai.CountTokensConfig{
		SystemInstruction: BuildSentenceConfig().SystemInstruction,
	}

	result, err := e.tok.CountTokens(contents, config)
	if err != nil {
		return 0, err
	}
	return int(result.TotalTokens), nil
}
