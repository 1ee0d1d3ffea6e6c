package coldlead

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// FallbackName is used when neither the website nor the title yields a name.
const FallbackName = "Firma"

// genericDomains are mail and social providers whose domain says nothing
// about the company behind a lead.
var genericDomains = []string{
	"gmail", "zoznam", "centrum", "azet", "yahoo",
	"outlook", "facebook", "instagram", "linkedin", "google",
}

var (
	reScheme = regexp.MustCompile(`^https?://`)

	// Legal-entity markers strip everything from the marker to the end.
	reLegalForms = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\s*s\.r\.o\.?.*$`),
		regexp.MustCompile(`(?i)\s*spol\. s r\.o\..*$`),
		regexp.MustCompile(`(?i)\s*a\.s\.?.*$`),
		regexp.MustCompile(`(?i)\s*k\.s\.?.*$`),
	}

	// A spaced separator starts a slogan or location tail.
	reSeparatorTail = regexp.MustCompile(`\s[|\-–—]\s.*$`)

	cityPatterns = compileCityPatterns(Cities)
)

type cityPattern struct {
	city string
	re   *regexp.Regexp
}

func compileCityPatterns(cities []string) []cityPattern {
	patterns := make([]cityPattern, 0, len(cities))
	for _, city := range cities {
		patterns = append(patterns, cityPattern{
			city: city,
			re:   regexp.MustCompile(`(?i)[\s\-,]+` + regexp.QuoteMeta(city) + `$`),
		})
	}
	return patterns
}

// ExtractDomainName derives a display name from the registrable label of a
// website, e.g. "https://www.parkety-vrable.sk/o-nas" → "Parkety Vrable".
// Returns "" when the website is empty or belongs to a generic provider.
//
// The label before the last dot is assumed to be the registrable one, so
// two-label suffixes such as .co.uk yield the wrong label.
func ExtractDomainName(website string) string {
	host := strings.ToLower(strings.TrimSpace(website))
	if host == "" {
		return ""
	}
	host = reScheme.ReplaceAllString(host, "")
	host = strings.TrimPrefix(host, "www.")
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}

	labels := strings.Split(host, ".")
	label := labels[0]
	if len(labels) >= 2 {
		label = labels[len(labels)-2]
	}
	if label == "" || slices.Contains(genericDomains, label) {
		return ""
	}

	name := strings.NewReplacer("-", " ", "_", " ").Replace(label)
	return StripCity(titleCase(name))
}

// CleanTitle derives a display name from a free-text company title by
// dropping legal forms, slogan tails and a trailing city.
// Always returns a non-empty name.
func CleanTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return FallbackName
	}

	name := norm.NFC.String(title)
	for _, re := range reLegalForms {
		name = re.ReplaceAllString(name, "")
	}
	name = reSeparatorTail.ReplaceAllString(name, "")
	name = strings.TrimSpace(StripCity(name))

	if name == "" {
		return FallbackName
	}
	return name
}

// StripCity removes at most one known city trailing a name, such as
// "Elektrikár Košice" → "Elektrikár". A name that is itself a city is kept,
// as is any name that would shrink to two characters or fewer.
func StripCity(name string) string {
	clean := strings.TrimSpace(norm.NFC.String(name))
	if slices.Contains(Cities, clean) {
		return clean
	}

	for _, p := range cityPatterns {
		if !p.re.MatchString(clean) {
			continue
		}
		candidate := strings.TrimSpace(p.re.ReplaceAllString(clean, ""))
		if utf8.RuneCountInString(candidate) > 2 {
			clean = candidate
		}
		break
	}

	return strings.TrimSpace(clean)
}

// ResolveName picks the display name for a lead: the website's name when it
// has a usable one, the cleaned title otherwise.
func ResolveName(lead *Lead) string {
	if name := ExtractDomainName(lead.Website); name != "" {
		return name
	}
	return CleanTitle(lead.Title)
}

// titleCase upper-cases the first letter of each word and lower-cases the
// rest. A Caser is stateful, so one is built per call.
func titleCase(s string) string {
	return cases.Title(language.Slovak).String(s)
}
