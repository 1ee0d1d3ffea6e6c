package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/arcigy/coldlead"
	"google.golang.org/genai"
)

// Ensure SentenceGenerator implements coldlead.SentenceGenerator at compile time.
var _ coldlead.SentenceGenerator = (*SentenceGenerator)(nil)

// SentenceGenerator implements coldlead.SentenceGenerator using Google Gemini.
type SentenceGenerator struct {
	client *genai.Client
	model  string
}

// NewSentenceGenerator creates a new SentenceGenerator. An empty model
// selects DefaultModel.
func NewSentenceGenerator(client *genai.Client, model string) *SentenceGenerator {
	if model == "" {
		model = DefaultModel
	}
	return &SentenceGenerator{client: client, model: model}
}

// Model returns the model sentences are generated with.
func (g *SentenceGenerator) Model() string {
	return g.model
}

// GenerateSentence asks Gemini for a personalized opening sentence.
func (g *SentenceGenerator) GenerateSentence(ctx context.Context, req *coldlead.SentenceRequest) (string, error) {
	if req == nil || req.Name == "" {
		return "", coldlead.Errorf(coldlead.EINVALID, "company name required")
	}

	text, err := generate(ctx, g.client, g.model, BuildSentencePrompt(req), BuildSentenceConfig())
	if err != nil {
		return "", err
	}

	sentence := cleanResponse(text)
	if !strings.HasPrefix(sentence, coldlead.SentencePrefix(req.Name)) {
		return "", coldlead.Errorf(coldlead.EINVALID, "response does not start with the greeting: %q", sentence)
	}
	if !strings.HasSuffix(sentence, ".") && !strings.HasSuffix(sentence, "!") {
		sentence += "."
	}
	return sentence, nil
}

// BuildSentenceConfig returns the GenerateContentConfig for sentence requests.
func BuildSentenceConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "Píšeš krátke, vecné úvodné vety do obchodných e-mailov v slovenčine.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildSentencePrompt builds the user prompt for a sentence request.
func BuildSentencePrompt(req *coldlead.SentenceRequest) string {
	var sb strings.Builder
	sb.WriteString("Zadanie: Napíš jednu úvodnú vetu pre cold email v slovenčine.\n\n")
	sb.WriteString("Vstupné dáta:\n")
	fmt.Fprintf(&sb, "Názov firmy: %s\n", req.Name)
	fmt.Fprintf(&sb, "Popis činnosti: %s\n", req.Description)
	fmt.Fprintf(&sb, "Mesto: %s\n", req.City)
	fmt.Fprintf(&sb, "Kategória: %s\n\n", req.Category)
	sb.WriteString("Inštrukcie:\n")
	fmt.Fprintf(&sb, "1. Veta MUSÍ začínať presne takto: \"%s...\"\n", strings.TrimSpace(coldlead.SentencePrefix(req.Name)))
	sb.WriteString("2. Doplnok vety musí byť KONKRÉTNY podľa popisu činnosti (napr. \"sa venujete inštalácii tepelných čerpadiel\", \"vyrábate dubové parkety\", \"poskytujete účtovné poradenstvo\").\n")
	sb.WriteString("3. ZAKÁZANÉ VÁGNE FRÁZY: Nepoužívaj \"poskytujete kvalitné služby\", \"ponúkate produkty pre zákazníkov\", \"ste lídrom na trhu\" bez kontextu. Musí to byť o tom, ČO robia.\n")
	fmt.Fprintf(&sb, "4. Ak je popis nedostatočný, použi kategóriu alebo mesto: \"že v %s pôsobíte v meste %s v oblasti %s.\"\n", req.Name, req.City, req.Category)
	sb.WriteString("5. Maximálne 1 veta. Žiadne úvodzovky.\n\n")
	sb.WriteString("Výsledná veta:")
	return sb.String()
}
