package coldlead

import "context"

// Source records how a sentence was produced.
type Source string

// Source constants for Personalization.
const (
	// SourceTemplate marks sentences composed from the phrase tables.
	SourceTemplate Source = "template"
	// SourceGenerated marks sentences written by a SentenceGenerator.
	SourceGenerated Source = "generated"
	// SourceFallback marks sentences composed after a generator failed.
	SourceFallback Source = "fallback"
)

// Personalization is the outreach copy derived for a single lead.
type Personalization struct {
	LeadID   int    `json:"leadId"`
	Name     string `json:"name"`
	Sentence string `json:"sentence"`
	Source   Source `json:"source"`
}

// Personalize derives the display name and opening sentence for a lead
// without any external calls. The result depends only on the lead.
func Personalize(lead *Lead) *Personalization {
	name := ResolveName(lead)
	return &Personalization{
		LeadID:   lead.ID,
		Name:     name,
		Sentence: ComposeSentence(name, ComposeFragment(lead.Abstract, lead.Category)),
		Source:   SourceTemplate,
	}
}

// FallbackPersonalization is used for a lead whose generated sentence could
// not be obtained.
func FallbackPersonalization(lead *Lead, name string) *Personalization {
	return &Personalization{
		LeadID:   lead.ID,
		Name:     name,
		Sentence: ComposeSentence(name, GenericFragment(lead.Category)),
		Source:   SourceFallback,
	}
}

// SentenceRequest carries what a generator needs to write an opening sentence.
type SentenceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	City        string `json:"city"`
	Category    string `json:"category"`
}

// NewSentenceRequest builds the request for a lead addressed as name.
func NewSentenceRequest(lead *Lead, name string) *SentenceRequest {
	return &SentenceRequest{
		Name:        name,
		Description: lead.Description(),
		City:        lead.City,
		Category:    lead.Category,
	}
}

// SentenceGenerator writes an opening sentence with a generative-text service.
type SentenceGenerator interface {
	// GenerateSentence returns a single sentence starting with
	// SentencePrefix(req.Name). Returns EINVALID if the service answers
	// with anything else.
	GenerateSentence(ctx context.Context, req *SentenceRequest) (string, error)
}

// NameGenerator asks a generative-text service for a clean company name.
type NameGenerator interface {
	// GenerateName returns the short company name for a title and website.
	GenerateName(ctx context.Context, title, website string) (string, error)
}

// SentenceCache stores generated sentences under a request fingerprint.
type SentenceCache interface {
	// GetSentence returns the cached sentence and whether it was found.
	GetSentence(ctx context.Context, key string) (string, bool, error)

	// PutSentence stores a sentence, replacing any previous one.
	PutSentence(ctx context.Context, key, sentence string) error
}
