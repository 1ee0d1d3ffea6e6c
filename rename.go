package coldlead

import "strings"

// DefaultFragment is written for a renamed lead that has no sentence yet.
const DefaultFragment = "sa venujete poskytovaniu kvalitných služieb"

// RenameSentence carries an existing opening sentence over to a new company
// name. Every occurrence of oldName is replaced; an empty sentence becomes
// the default sentence for newName. A sentence that does not mention
// oldName is returned unchanged.
func RenameSentence(sentence, oldName, newName string) string {
	switch {
	case oldName != "" && strings.Contains(sentence, oldName):
		return strings.ReplaceAll(sentence, oldName, newName)
	case sentence == "":
		return ComposeSentence(newName, DefaultFragment)
	default:
		return sentence
	}
}
