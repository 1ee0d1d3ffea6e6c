package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/arcigy/coldlead"
	"google.golang.org/genai"
)

// Ensure NameGenerator implements coldlead.NameGenerator at compile time.
var _ coldlead.NameGenerator = (*NameGenerator)(nil)

// maxNameLen bounds a plausible company name; longer answers are chatter.
const maxNameLen = 80

// NameGenerator implements coldlead.NameGenerator using Google Gemini.
type NameGenerator struct {
	client *genai.Client
	model  string
}

// NewNameGenerator creates a new NameGenerator. An empty model selects
// DefaultModel.
func NewNameGenerator(client *genai.Client, model string) *NameGenerator {
	if model == "" {
		model = DefaultModel
	}
	return &NameGenerator{client: client, model: model}
}

// GenerateName asks Gemini for the short company name behind a title and website.
func (g *NameGenerator) GenerateName(ctx context.Context, title, website string) (string, error) {
	if title == "" && website == "" {
		return "", coldlead.Errorf(coldlead.EINVALID, "title or website required")
	}

	text, err := generate(ctx, g.client, g.model, BuildNamePrompt(title, website), BuildNameConfig())
	if err != nil {
		return "", err
	}

	name := strings.TrimRight(cleanResponse(text), ".")
	if name == "" || len([]rune(name)) > maxNameLen {
		return "", coldlead.Errorf(coldlead.EINVALID, "unusable company name: %q", name)
	}
	return name, nil
}

// BuildNameConfig returns the GenerateContentConfig for name requests.
func BuildNameConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		MaxOutputTokens: 32,
	}
}

// BuildNamePrompt builds the user prompt for a name request.
func BuildNamePrompt(title, website string) string {
	var sb strings.Builder
	sb.WriteString("Task: Extract the Clean, Short Company Name from the Title and Website.\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("1. Prioritize the Website domain name if it looks like a brand name (e.g. 'parkety-vrable.sk' -> 'Parkety Vráble').\n")
	sb.WriteString("2. Remove 's.r.o.', 'a.s.', locations, slogans, and unnecessary words.\n")
	sb.WriteString("3. If the Website is generic (e.g. gmail, facebook), rely on the Title.\n")
	sb.WriteString("4. Return ONLY the Company Name. No quotes, no explanation.\n\n")
	sb.WriteString("Input:\n")
	fmt.Fprintf(&sb, "Title: %s\n", title)
	fmt.Fprintf(&sb, "Website: %s\n\n", website)
	sb.WriteString("Company Name:")
	return sb.String()
}
