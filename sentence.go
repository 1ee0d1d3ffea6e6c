package coldlead

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Phrase pairs a lookup key with the fragment it produces.
type Phrase struct {
	Key      string
	Fragment string
}

// VerbRewrites maps third-person verbs found in a lead's abstract to their
// second-person plural form used when addressing the lead directly.
// The first verb found in the abstract wins.
var VerbRewrites = []Phrase{
	{"špecializuje", "sa špecializujete"},
	{"zameriava", "sa zameriavate"},
	{"venuje", "sa venujete"},
	{"zaoberá", "sa zaoberáte"},
	{"ponúka", "ponúkate"},
	{"poskytuje", "poskytujete"},
	{"vyrába", "vyrábate"},
	{"realizuje", "realizujete"},
	{"zabezpečuje", "zabezpečujete"},
	{"vykonáva", "vykonávate"},
	{"dodáva", "dodávate"},
	{"montuje", "montujete"},
	{"predáva", "predávate"},
	{"servisuje", "servisujete"},
	{"prevádzkuje", "prevádzkujete"},
	{"zaisťuje", "zaisťujete"},
}

// CategoryDefaults maps category substrings to canned fragments used when
// the abstract gives nothing to work with. The first key found wins.
var CategoryDefaults = []Phrase{
	{"Plynoinštalatér", "sa venujete inštaláciám a servisu plynových zariadení"},
	{"Kúrenárske práce", "sa venujete kúrenárskym prácam a inštaláciám"},
	{"Vodoinštalatér", "sa venujete vodoinštalatérskym prácam"},
	{"Stolárstvo", "sa venujete stolárskym prácam a výrobe nábytku"},
	{"Kamenárstvo", "sa venujete kamenárskym prácam"},
	{"Podlahy", "sa venujete pokládke a renovácii podláh"},
	{"Elektrikár", "poskytujete elektroinštalačné práce"},
	{"Zámočníctvo", "sa venujete zámočníckym prácam a kovovýrobe"},
	{"Klimatizácie", "sa venujete montáži a servisu klimatizácií"},
	{"Okná a dvere", "sa venujete predaju a montáži okien a dverí"},
	{"Veľkoobchod", "prevádzkujete veľkoobchodný predaj tovaru"},
	{"Maloobchod", "prevádzkujete predajňu s tovarom"},
	{"Servis", "poskytujete servisné služby"},
	{"Stavebná firma", "realizujete stavebné práce a rekonštrukcie"},
}

const (
	sentenceGreeting = "Dobrý deň. Páči sa mi, že v "

	// genericSector fills the generic fragment when the category is empty.
	genericSector = "oblasti služieb"

	// minAbstractLen is the rune count an abstract must exceed to be searched.
	minAbstractLen = 10

	// maxContextWords caps the words carried over from the abstract.
	maxContextWords = 8
)

// verbPatterns match a verb bounded by non-letters; group 1 is the verb.
// Go's \b only knows ASCII, so the boundaries are spelled out.
var verbPatterns = compileVerbPatterns(VerbRewrites)

func compileVerbPatterns(verbs []Phrase) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(verbs))
	for _, v := range verbs {
		patterns = append(patterns, regexp.MustCompile(
			`(?i)(?:^|[^\p{L}\p{N}_])(`+regexp.QuoteMeta(v.Key)+`)(?:[^\p{L}\p{N}_]|$)`,
		))
	}
	return patterns
}

// fragmentStrategy produces a sentence fragment or reports that it has none.
type fragmentStrategy func(abstract, category string) (string, bool)

var fragmentStrategies = []fragmentStrategy{
	verbFragment,
	categoryFragment,
}

// ComposeFragment returns the part of the opening sentence that says what
// the lead does. It tries a verb phrase lifted from the abstract, then a
// canned phrase for the category, then GenericFragment.
func ComposeFragment(abstract, category string) string {
	for _, strategy := range fragmentStrategies {
		if fragment, ok := strategy(abstract, category); ok {
			return fragment
		}
	}
	return GenericFragment(category)
}

// GenericFragment is the fragment of last resort.
func GenericFragment(category string) string {
	if category == "" {
		category = genericSector
	}
	return "pôsobíte v sektore " + category
}

// ComposeSentence wraps a fragment into the fixed greeting addressed to name.
func ComposeSentence(name, fragment string) string {
	return fmt.Sprintf("%s%s %s.", sentenceGreeting, name, strings.Trim(fragment, " .,"))
}

// SentencePrefix returns the text every opening sentence for name starts with.
func SentencePrefix(name string) string {
	return sentenceGreeting + name + " "
}

// verbFragment rewrites the first table verb found in the abstract together
// with the words that follow it up to the end of the clause.
func verbFragment(abstract, _ string) (string, bool) {
	if utf8.RuneCountInString(abstract) <= minAbstractLen {
		return "", false
	}

	for i, re := range verbPatterns {
		loc := re.FindStringSubmatchIndex(abstract)
		if loc == nil {
			continue
		}

		rest := abstract[loc[3]:]
		if end := strings.IndexAny(rest, ".,;"); end >= 0 {
			rest = rest[:end]
		}
		words := strings.Fields(rest)
		if len(words) == 0 {
			continue
		}
		if len(words) > maxContextWords {
			words = words[:maxContextWords]
		}

		return VerbRewrites[i].Fragment + " " + strings.Join(words, " "), true
	}

	return "", false
}

// categoryFragment looks the category up in CategoryDefaults.
func categoryFragment(_, category string) (string, bool) {
	if category == "" {
		return "", false
	}

	lower := strings.ToLower(category)
	for _, d := range CategoryDefaults {
		if strings.Contains(lower, strings.ToLower(d.Key)) {
			return d.Fragment, true
		}
	}
	return "", false
}
