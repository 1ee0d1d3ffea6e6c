package pipeline_test

import (
	"testing"

	"github.com/arcigy/coldlead/pipeline"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("returns text unchanged when short enough", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Dobrý deň.", pipeline.Truncate("Dobrý deň.", 10))
	})

	t.Run("cuts runes and adds ellipsis", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Dobrý…", pipeline.Truncate("Dobrý deň.", 6))
	})

	t.Run("handles tiny limits", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, pipeline.Truncate("Dobrý", 0))
		assert.Equal(t, "D", pipeline.Truncate("Dobrý", 1))
	})
}

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	t.Run("returns URL unchanged when shorter than max", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "https://x.sk", pipeline.TruncateURL("https://x.sk", 50))
	})

	t.Run("truncates with ellipsis when longer than max", func(t *testing.T) {
		t.Parallel()
		result := pipeline.TruncateURL("https://www.parkety-vrable.sk/o-nas", 12)
		assert.Equal(t, "....sk/o-nas", result)
		assert.Len(t, result, 12)
	})

	t.Run("returns empty string when maxLen is not positive", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, pipeline.TruncateURL("https://x.sk", 0))
		assert.Empty(t, pipeline.TruncateURL("https://x.sk", -1))
	})

	t.Run("returns prefix when maxLen is very small", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "htt", pipeline.TruncateURL("https://x.sk", 3))
	})
}

func TestFormatTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "~500 tokens", pipeline.FormatTokens(500))
	assert.Equal(t, "~2k tokens", pipeline.FormatTokens(1500))
	assert.Equal(t, "~12k tokens", pipeline.FormatTokens(12345))
}
