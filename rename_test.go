package coldlead_test

import (
	"testing"

	"github.com/arcigy/coldlead"
	"github.com/stretchr/testify/assert"
)

func TestRenameSentence(t *testing.T) {
	t.Parallel()

	t.Run("replaces old name", func(t *testing.T) {
		t.Parallel()

		sentence := coldlead.RenameSentence(
			"Dobrý deň. Páči sa mi, že v Parkety Vrable sa venujete pokládke a renovácii podláh.",
			"Parkety Vrable",
			"Parkety Vráble",
		)

		assert.Equal(t, "Dobrý deň. Páči sa mi, že v Parkety Vráble sa venujete pokládke a renovácii podláh.", sentence)
	})

	t.Run("writes default sentence when empty", func(t *testing.T) {
		t.Parallel()

		sentence := coldlead.RenameSentence("", "Old", "Okná Novák")

		assert.Equal(t, "Dobrý deň. Páči sa mi, že v Okná Novák sa venujete poskytovaniu kvalitných služieb.", sentence)
	})

	t.Run("keeps sentence without old name", func(t *testing.T) {
		t.Parallel()

		sentence := coldlead.RenameSentence("Dobrý deň. Páči sa mi, že v Firma ponúkate okná.", "Novák", "Okná Novák")

		assert.Equal(t, "Dobrý deň. Páči sa mi, že v Firma ponúkate okná.", sentence)
	})

	t.Run("keeps sentence when old name is empty", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Ahoj.", coldlead.RenameSentence("Ahoj.", "", "Nové"))
	})
}
