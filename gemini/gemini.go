// Package gemini implements coldlead's generative-text collaborators on top
// of the Google Gemini API.
package gemini

import (
	"context"
	"strings"

	"github.com/arcigy/coldlead"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// quoteReplacer drops the quote marks models like to wrap answers in.
var quoteReplacer = strings.NewReplacer(`"`, "", "„", "", "“", "", "”", "")

// generate sends a single-turn prompt and returns the trimmed response text.
func generate(ctx context.Context, client *genai.Client, model, prompt string, config *genai.GenerateContentConfig) (string, error) {
	result, err := client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", coldlead.Errorf(coldlead.EINTERNAL, "gemini returned nil result")
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", coldlead.Errorf(coldlead.EINVALID, "gemini returned empty response")
	}
	return text, nil
}

// cleanResponse removes quotes and keeps only the first line.
func cleanResponse(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	text = quoteReplacer.Replace(text)
	return strings.TrimSpace(strings.Trim(text, "'"))
}
