package goquery_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/arcigy/coldlead"
	"github.com/arcigy/coldlead/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptionExtractor_ExtractDescription(t *testing.T) {
	t.Parallel()

	t.Run("returns meta description", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="og:description" content="Open graph text">
<meta name="description" content="  Výroba a montáž
	plastových okien  ">
</head><body></body></html>`

		desc, err := goquery.NewDescriptionExtractor().ExtractDescription(html)

		require.NoError(t, err)
		assert.Equal(t, "Výroba a montáž plastových okien", desc)
	})

	t.Run("falls back to open graph description", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta name="description" content="   ">
<meta property="og:description" content="Kúrenárske práce a servis kotlov.">
</head></html>`

		desc, err := goquery.NewDescriptionExtractor().ExtractDescription(html)

		require.NoError(t, err)
		assert.Equal(t, "Kúrenárske práce a servis kotlov.", desc)
	})

	t.Run("falls back to first substantial paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
<p>Vitajte!</p>
<p>Sme rodinná firma, ktorá sa venuje stolárskym prácam a výrobe nábytku na mieru.</p>
</main></body></html>`

		desc, err := goquery.NewDescriptionExtractor().ExtractDescription(html)

		require.NoError(t, err)
		assert.Equal(t, "Sme rodinná firma, ktorá sa venuje stolárskym prácam a výrobe nábytku na mieru.", desc)
	})

	t.Run("uses custom sources", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="description" content="meta"></head>
<body><div class="about">O nás text</div></body></html>`

		desc, err := goquery.NewDescriptionExtractor(goquery.DescriptionSource{Selector: ".about"}).ExtractDescription(html)

		require.NoError(t, err)
		assert.Equal(t, "O nás text", desc)
	})

	t.Run("truncates long description at word boundary", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("okná ", 200)
		html := `<html><head><meta name="description" content="` + long + `"></head></html>`

		desc, err := goquery.NewDescriptionExtractor().ExtractDescription(html)

		require.NoError(t, err)
		assert.LessOrEqual(t, utf8.RuneCountInString(desc), 501)
		assert.True(t, strings.HasSuffix(desc, "okná…"))
	})

	t.Run("returns ENOTFOUND without description", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewDescriptionExtractor().ExtractDescription(`<html><body><p>Krátke.</p></body></html>`)

		require.Error(t, err)
		assert.Equal(t, coldlead.ENOTFOUND, coldlead.ErrorCode(err))
	})
}
